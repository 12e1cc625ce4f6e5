package place

import (
	"context"
	"errors"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"gorm.io/gorm"
)

type Store interface {
	Create(ctx context.Context, p *domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	GetAll(ctx context.Context) ([]domain.Place, error)
	Save(ctx context.Context, p *domain.Place) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	places Store
}

func NewService(places Store) *Service {
	return &Service{places: places}
}

func (s *Service) List(ctx context.Context) ([]domain.Place, error) {
	return s.places.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, attrs map[string]any) (*domain.Place, error) {
	if _, ok := attrs["name"]; !ok {
		return nil, ErrMissingName
	}

	p := &domain.Place{}
	applyAttrs(p, attrs, false)

	if err := s.places.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, attrs map[string]any) (*domain.Place, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyAttrs(p, attrs, true)

	if err := s.places.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.places.Delete(ctx, id)
}

// applyAttrs copies known attributes onto the place. On update the owner
// reference is protected alongside id and the timestamps; unknown keys are
// ignored.
func applyAttrs(p *domain.Place, attrs map[string]any, update bool) {
	for k, v := range attrs {
		switch k {
		case "name":
			p.Name, _ = v.(string)
		case "description":
			p.Description, _ = v.(string)
		case "city":
			p.City, _ = v.(string)
		case "latitude":
			if f, ok := v.(float64); ok {
				p.Latitude = f
			}
		case "longitude":
			if f, ok := v.(float64); ok {
				p.Longitude = f
			}
		case "price_by_night":
			if f, ok := v.(float64); ok {
				p.PriceByNight = int(f)
			}
		case "user_id":
			if !update {
				p.UserID, _ = v.(string)
			}
		}
	}
}
