package status

import (
	"context"
	"net/http"

	"github.com/Aellun/AirBnB-clone-v3/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	places  Counter
	reviews Counter
	users   Counter
}

func NewHandler(places, reviews, users Counter) *Handler {
	return &Handler{places: places, reviews: reviews, users: users}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.Status)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Stats reports row counts per entity type.
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	out := gin.H{}
	for name, counter := range map[string]Counter{
		"places":  h.places,
		"reviews": h.reviews,
		"users":   h.users,
	} {
		n, err := counter.Count(ctx)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal error")
			return
		}
		out[name] = n
	}

	c.JSON(http.StatusOK, out)
}
