package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	PlaceID   string    `gorm:"column:place_id;index"`
	UserID    string    `gorm:"column:user_id;index"`
	Text      string    `gorm:"column:text"`
	Extra     string    `gorm:"column:extra"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func (m *reviewModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func toDomainReview(m reviewModel) (*domain.Review, error) {
	var extra map[string]any
	if m.Extra != "" {
		if err := json.Unmarshal([]byte(m.Extra), &extra); err != nil {
			return nil, err
		}
	}

	return &domain.Review{
		ID:        m.ID,
		PlaceID:   m.PlaceID,
		UserID:    m.UserID,
		Text:      m.Text,
		Extra:     extra,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func toReviewModel(r *domain.Review) (reviewModel, error) {
	var extra string
	if len(r.Extra) > 0 {
		raw, err := json.Marshal(r.Extra)
		if err != nil {
			return reviewModel{}, err
		}
		extra = string(raw)
	}

	return reviewModel{
		ID:        r.ID,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		Text:      r.Text,
		Extra:     extra,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m, err := toReviewModel(rv)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainReview(m)
	if err != nil {
		return err
	}
	*rv = *out
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m)
}

// GetByPlace returns the reviews belonging to a place, oldest first.
func (r *ReviewRepository) GetByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	var models []reviewModel
	tx := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(models))
	for _, m := range models {
		rv, err := toDomainReview(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, nil
}

func (r *ReviewRepository) Save(ctx context.Context, rv *domain.Review) error {
	m, err := toReviewModel(rv)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainReview(m)
	if err != nil {
		return err
	}
	*rv = *out
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&reviewModel{}).Error
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).Count(&n)
	return n, tx.Error
}
