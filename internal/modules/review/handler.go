package review

import (
	"net/http"

	"github.com/Aellun/AirBnB-clone-v3/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/places/:place_id/reviews", h.ListByPlace)
	rg.POST("/places/:place_id/reviews", h.Create)
	rg.GET("/reviews/:review_id", h.GetByID)
	rg.PUT("/reviews/:review_id", h.Update)
	rg.DELETE("/reviews/:review_id", h.Delete)
}

// ListByPlace returns every review of a place as a JSON array.
//
// @Summary List reviews for a place
// @Tags Reviews
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/reviews [get]
func (h *Handler) ListByPlace(c *gin.Context) {
	reviews, err := h.svc.ListByPlace(c.Request.Context(), c.Param("place_id"))
	if err != nil {
		if err == ErrPlaceNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	out := make([]map[string]any, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviews[i].ToJSON())
	}
	c.JSON(http.StatusOK, out)
}

// Create stores a new review under a place.
//
// @Summary Create a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param place_id path string true "Place ID"
// @Param request body map[string]interface{} true "Review attributes (user_id and text required)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/reviews [post]
func (h *Handler) Create(c *gin.Context) {
	attrs, ok := bindAttrs(c)
	if !ok {
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), c.Param("place_id"), attrs)
	if err != nil {
		switch err {
		case ErrPlaceNotFound, ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "Not found")
		case ErrMissingUserID:
			response.Error(c, http.StatusBadRequest, "Missing user_id")
		case ErrMissingText:
			response.Error(c, http.StatusBadRequest, "Missing text")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	c.JSON(http.StatusCreated, rv.ToJSON())
}

// GetByID returns a single review.
//
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param review_id path string true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /reviews/{review_id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	rv, err := h.svc.Get(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, rv.ToJSON())
}

// Update merges request attributes into a review, ignoring protected keys.
//
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review_id path string true "Review ID"
// @Param request body map[string]interface{} true "Attributes to merge"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{review_id} [put]
func (h *Handler) Update(c *gin.Context) {
	attrs, ok := bindAttrs(c)
	if !ok {
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), c.Param("review_id"), attrs)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, rv.ToJSON())
}

// Delete removes a review and persists the removal immediately.
//
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param review_id path string true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /reviews/{review_id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("review_id")); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// bindAttrs parses the request body as a JSON object. A body that is not a
// JSON object (including "null") answers 400 "Not a JSON".
func bindAttrs(c *gin.Context) (map[string]any, bool) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil || attrs == nil {
		response.Error(c, http.StatusBadRequest, "Not a JSON")
		return nil, false
	}
	return attrs, true
}
