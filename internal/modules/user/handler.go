package user

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
	rg.GET("/users", h.List)
	rg.POST("/users", h.Create)
	rg.GET("/users/:user_id", h.GetByID)
	rg.PUT("/users/:user_id", h.Update)
	rg.DELETE("/users/:user_id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) Create(c *gin.Context) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil || attrs == nil {
		response.Error(c, http.StatusBadRequest, "Not a JSON")
		return
	}

	u, err := h.svc.Create(c.Request.Context(), attrs)
	if err != nil {
		switch err {
		case ErrMissingEmail:
			response.Error(c, http.StatusBadRequest, "Missing email")
		case ErrMissingPassword:
			response.Error(c, http.StatusBadRequest, "Missing password")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (h *Handler) GetByID(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) Update(c *gin.Context) {
	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil || attrs == nil {
		response.Error(c, http.StatusBadRequest, "Not a JSON")
		return
	}

	u, err := h.svc.Update(c.Request.Context(), c.Param("user_id"), attrs)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
