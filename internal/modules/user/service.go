package user

import (
	"context"
	"errors"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Store interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	users Store
}

func NewService(users Store) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, attrs map[string]any) (*domain.User, error) {
	if _, ok := attrs["email"]; !ok {
		return nil, ErrMissingEmail
	}
	rawPassword, ok := attrs["password"]
	if !ok {
		return nil, ErrMissingPassword
	}

	password, _ := rawPassword.(string)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{PasswordHash: string(hash)}
	u.Email, _ = attrs["email"].(string)
	u.FirstName, _ = attrs["first_name"].(string)
	u.LastName, _ = attrs["last_name"].(string)

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update merges attributes into a user. The id, email and timestamps are
// protected; a supplied password is re-hashed.
func (s *Service) Update(ctx context.Context, id string, attrs map[string]any) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for k, v := range attrs {
		switch k {
		case "first_name":
			u.FirstName, _ = v.(string)
		case "last_name":
			u.LastName, _ = v.(string)
		case "password":
			password, _ := v.(string)
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			u.PasswordHash = string(hash)
		}
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
