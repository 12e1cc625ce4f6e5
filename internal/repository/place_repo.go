package repository

import (
	"context"
	"time"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

type placeModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       string    `gorm:"column:user_id;index"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description"`
	City         string    `gorm:"column:city"`
	Latitude     float64   `gorm:"column:latitude"`
	Longitude    float64   `gorm:"column:longitude"`
	PriceByNight int       `gorm:"column:price_by_night"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (placeModel) TableName() string { return "places" }

func (m *placeModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func toDomainPlace(m placeModel) *domain.Place {
	return &domain.Place{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Description:  m.Description,
		City:         m.City,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		PriceByNight: m.PriceByNight,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPlaceModel(p *domain.Place) placeModel {
	return placeModel{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Description:  p.Description,
		City:         p.City,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		PriceByNight: p.PriceByNight,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PlaceRepository) Create(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPlace(m)
	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	var m placeModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPlace(m), nil
}

func (r *PlaceRepository) GetAll(ctx context.Context) ([]domain.Place, error) {
	var models []placeModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Place, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainPlace(m))
	}
	return out, nil
}

func (r *PlaceRepository) Save(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPlace(m)
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&placeModel{}).Error
}

func (r *PlaceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&placeModel{}).Count(&n)
	return n, tx.Error
}
