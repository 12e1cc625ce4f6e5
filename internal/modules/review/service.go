package review

import (
	"context"
	"errors"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"gorm.io/gorm"
)

// protectedKeys are review attributes the update operation must never
// overwrite; matching body keys are silently dropped.
var protectedKeys = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"user_id":    true,
	"place_id":   true,
}

type Store interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByPlace(ctx context.Context, placeID string) ([]domain.Review, error)
	Save(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id string) error
}

type PlaceGate interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Publisher receives review lifecycle events. A nil Publisher disables
// publishing.
type Publisher interface {
	ReviewCreated(rv *domain.Review)
	ReviewUpdated(rv *domain.Review)
	ReviewDeleted(id string)
}

type Service struct {
	reviews Store
	places  PlaceGate
	users   UserGate
	events  Publisher
}

func NewService(reviews Store, places PlaceGate, users UserGate, events Publisher) *Service {
	return &Service{reviews: reviews, places: places, users: users, events: events}
}

func (s *Service) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return s.reviews.GetByPlace(ctx, placeID)
}

// Create builds a review from the request attributes. Check order: place
// exists, user_id present, user exists, text present. The place id always
// comes from the path, never from the body.
func (s *Service) Create(ctx context.Context, placeID string, attrs map[string]any) (*domain.Review, error) {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	rawUserID, ok := attrs["user_id"]
	if !ok {
		return nil, ErrMissingUserID
	}
	userID, _ := rawUserID.(string)
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rawText, ok := attrs["text"]
	if !ok {
		return nil, ErrMissingText
	}
	text, _ := rawText.(string)

	rv := &domain.Review{
		PlaceID: placeID,
		UserID:  userID,
		Text:    text,
	}
	for k, v := range attrs {
		switch k {
		case "id", "place_id", "user_id", "text", "created_at", "updated_at":
		default:
			rv.SetExtra(k, v)
		}
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.ReviewCreated(rv)
	}
	return rv, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// Update merges the request attributes into an existing review. Protected
// keys are dropped; anything else lands on the text field or in the extra
// attribute bag. No type validation is applied.
func (s *Service) Update(ctx context.Context, id string, attrs map[string]any) (*domain.Review, error) {
	rv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for k, v := range attrs {
		if protectedKeys[k] {
			continue
		}
		if k == "text" {
			// No type validation, but the text column is a string: a
			// non-string value leaves the prior text in place.
			if s, ok := v.(string); ok {
				rv.Text = s
			}
			continue
		}
		rv.SetExtra(k, v)
	}

	if err := s.reviews.Save(ctx, rv); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.ReviewUpdated(rv)
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	if s.events != nil {
		s.events.ReviewDeleted(id)
	}
	return nil
}
