package wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wishlist", h.List)
	rg.POST("/wishlist", h.Add)
	rg.DELETE("/wishlist/:packageId", h.Remove)
}

type addRequest struct {
	PackageID    int64    `json:"package_id" binding:"required"`
	AlertEnabled bool     `json:"alert_enabled"`
	TargetPrice  *float64 `json:"target_price"`
}

func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req.PackageID, req.AlertEnabled, req.TargetPrice)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Remove(c *gin.Context) {
	packageID, err := strconv.ParseInt(c.Param("packageId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID")
		return
	}
	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), packageID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, items)
}
