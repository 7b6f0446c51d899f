package plugin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/pkg/response"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/plugins", h.List)
	rg.GET("/plugins/:name", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/plugins/:name", h.SetEnabled)
}

func (h *Handler) List(c *gin.Context) {
	plugins, err := h.registry.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, plugins)
}

func (h *Handler) Get(c *gin.Context) {
	d, err := h.registry.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrUnknownPlugin) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, d)
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *Handler) SetEnabled(c *gin.Context) {
	var req setEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.registry.SetEnabled(c.Request.Context(), c.Param("name"), *req.Enabled); err != nil {
		if errors.Is(err, ErrUnknownPlugin) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Accepted(c)
}
