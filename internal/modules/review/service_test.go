package review

import (
	"context"
	"testing"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock collaborators

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = "rv-1" // simulate storage-assigned id
	}
	return args.Error(0)
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockStore) GetByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaceGate struct {
	mock.Mock
}

func (m *MockPlaceGate) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) ReviewCreated(rv *domain.Review) { m.Called(rv) }
func (m *MockPublisher) ReviewUpdated(rv *domain.Review) { m.Called(rv) }
func (m *MockPublisher) ReviewDeleted(id string)         { m.Called(id) }

func TestService_Create_Success(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "place-1").Return(&domain.Place{ID: "place-1"}, nil)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, places, users, nil)
	rv, err := svc.Create(context.Background(), "place-1", map[string]any{
		"user_id": "user-1",
		"text":    "great",
		"mood":    "sunny",
	})

	assert.NoError(t, err)
	assert.Equal(t, "rv-1", rv.ID)
	assert.Equal(t, "place-1", rv.PlaceID)
	assert.Equal(t, "user-1", rv.UserID)
	assert.Equal(t, "great", rv.Text)
	assert.Equal(t, "sunny", rv.Extra["mood"])
	store.AssertExpectations(t)
}

func TestService_Create_PlaceIDComesFromPath(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "place-1").Return(&domain.Place{ID: "place-1"}, nil)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, places, users, nil)
	rv, err := svc.Create(context.Background(), "place-1", map[string]any{
		"user_id":  "user-1",
		"text":     "great",
		"place_id": "spoofed",
	})

	assert.NoError(t, err)
	assert.Equal(t, "place-1", rv.PlaceID)
	assert.NotContains(t, rv.Extra, "place_id")
}

func TestService_Create_PlaceNotFound(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, places, users, nil)
	_, err := svc.Create(context.Background(), "nope", map[string]any{
		"user_id": "user-1",
		"text":    "great",
	})

	assert.ErrorIs(t, err, ErrPlaceNotFound)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_MissingUserID(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "place-1").Return(&domain.Place{ID: "place-1"}, nil)

	svc := NewService(store, places, users, nil)
	_, err := svc.Create(context.Background(), "place-1", map[string]any{"text": "great"})

	assert.ErrorIs(t, err, ErrMissingUserID)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Create_UserNotFound(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "place-1").Return(&domain.Place{ID: "place-1"}, nil)
	users.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, places, users, nil)
	_, err := svc.Create(context.Background(), "place-1", map[string]any{
		"user_id": "ghost",
		"text":    "great",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Create_MissingText(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "place-1").Return(&domain.Place{ID: "place-1"}, nil)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)

	svc := NewService(store, places, users, nil)
	_, err := svc.Create(context.Background(), "place-1", map[string]any{"user_id": "user-1"})

	assert.ErrorIs(t, err, ErrMissingText)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_ProtectedKeysIgnored(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	existing := &domain.Review{
		ID:      "rv-1",
		PlaceID: "place-1",
		UserID:  "user-1",
		Text:    "old",
	}
	store.On("GetByID", mock.Anything, "rv-1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, places, users, nil)
	rv, err := svc.Update(context.Background(), "rv-1", map[string]any{
		"text":     "updated",
		"id":       "ignored",
		"place_id": "ignored",
		"user_id":  "ignored",
		"mood":     "sunny",
	})

	assert.NoError(t, err)
	assert.Equal(t, "rv-1", rv.ID)
	assert.Equal(t, "place-1", rv.PlaceID)
	assert.Equal(t, "user-1", rv.UserID)
	assert.Equal(t, "updated", rv.Text)
	assert.Equal(t, "sunny", rv.Extra["mood"])
	store.AssertExpectations(t)
}

func TestService_Update_NonStringTextKeepsPrior(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	existing := &domain.Review{ID: "rv-1", PlaceID: "place-1", UserID: "user-1", Text: "old"}
	store.On("GetByID", mock.Anything, "rv-1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, places, users, nil)
	rv, err := svc.Update(context.Background(), "rv-1", map[string]any{"text": float64(42)})

	assert.NoError(t, err)
	assert.Equal(t, "old", rv.Text)
}

func TestService_Update_NotFound(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	store.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, places, users, nil)
	_, err := svc.Update(context.Background(), "ghost", map[string]any{"text": "updated"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_PublishesEvent(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)
	events := new(MockPublisher)

	store.On("GetByID", mock.Anything, "rv-1").Return(&domain.Review{ID: "rv-1"}, nil)
	store.On("Delete", mock.Anything, "rv-1").Return(nil)
	events.On("ReviewDeleted", "rv-1").Return()

	svc := NewService(store, places, users, events)
	err := svc.Delete(context.Background(), "rv-1")

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	store.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, places, users, nil)
	err := svc.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_ListByPlace_PlaceNotFound(t *testing.T) {
	store := new(MockStore)
	places := new(MockPlaceGate)
	users := new(MockUserGate)

	places.On("GetByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, places, users, nil)
	_, err := svc.ListByPlace(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrPlaceNotFound)
}
