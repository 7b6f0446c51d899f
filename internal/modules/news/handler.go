package news

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/news", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	feed, err := h.service.Aggregate(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Error(c, http.StatusBadRequest, "NOT_CONFIGURED", err.Error())
			return
		}
		response.Error(c, http.StatusBadGateway, "NEWS_UNAVAILABLE", err.Error())
		return
	}
	c.JSON(http.StatusOK, feed)
}
