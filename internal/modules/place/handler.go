package place

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
	rg.GET("/places", h.List)
	rg.POST("/places", h.Create)
	rg.GET("/places/:place_id", h.GetByID)
	rg.PUT("/places/:place_id", h.Update)
	rg.DELETE("/places/:place_id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	places, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *Handler) Create(c *gin.Context) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil || attrs == nil {
		response.Error(c, http.StatusBadRequest, "Not a JSON")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), attrs)
	if err != nil {
		if err == ErrMissingName {
			response.Error(c, http.StatusBadRequest, "Missing name")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("place_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil || attrs == nil {
		response.Error(c, http.StatusBadRequest, "Not a JSON")
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("place_id"), attrs)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("place_id")); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
