package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/domain"
	"staykedarnath/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/:pageKey", h.Page)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/content", h.Save)
	rg.DELETE("/content/:pageKey/:fieldKey", h.Remove)
}

func (h *Handler) Page(c *gin.Context) {
	overrides, err := h.service.Page(c.Request.Context(), c.Param("pageKey"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, overrides)
}

func (h *Handler) Save(c *gin.Context) {
	var o domain.ContentOverride
	if err := c.ShouldBindJSON(&o); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	o.UpdatedBy = c.GetString("email")
	if err := h.service.Save(c.Request.Context(), &o); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("pageKey"), c.Param("fieldKey")); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Accepted(c)
}
