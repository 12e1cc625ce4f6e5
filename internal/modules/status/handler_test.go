package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aellun/AirBnB-clone-v3/internal/database"
	"github.com/Aellun/AirBnB-clone-v3/internal/domain"
	"github.com/Aellun/AirBnB-clone-v3/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	u := &domain.User{Email: "alice@hbnb.io", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(ctx, u))
	p := &domain.Place{UserID: u.ID, Name: "Sunny Loft"}
	require.NoError(t, placeRepo.Create(ctx, p))
	require.NoError(t, reviewRepo.Create(ctx, &domain.Review{PlaceID: p.ID, UserID: u.ID, Text: "great"}))
	require.NoError(t, reviewRepo.Create(ctx, &domain.Review{PlaceID: p.ID, UserID: u.ID, Text: "still great"}))

	handler := NewHandler(placeRepo, reviewRepo, userRepo)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	return router
}

func TestStatus(t *testing.T) {
	router := setupRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, "OK", out["status"])
}

func TestStats(t *testing.T) {
	router := setupRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var out map[string]int64
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, int64(1), out["places"])
	require.Equal(t, int64(2), out["reviews"])
	require.Equal(t, int64(1), out["users"])
}
