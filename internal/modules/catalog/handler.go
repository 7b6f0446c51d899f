package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/domain"
	"staykedarnath/internal/pkg/images"
	"staykedarnath/internal/pkg/response"
	"staykedarnath/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/packages", h.ListPackages)
	rg.GET("/packages/:id", h.GetPackage)
	rg.POST("/itinerary/estimate", h.Estimate)
	rg.GET("/help/search", h.SearchHelp)
	rg.GET("/images/optimize", h.OptimizeImage)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/packages", h.UpsertPackage)
	rg.POST("/help/articles", h.CreateHelpArticle)
}

func (h *Handler) ListPackages(c *gin.Context) {
	pkgs, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, pkgs)
}

func (h *Handler) GetPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid package id")
		return
	}
	p, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) UpsertPackage(c *gin.Context) {
	var p domain.TripPackage
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if p.Slug == "" || p.Title == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "slug and title are required")
		return
	}
	if err := h.service.UpsertPackage(c.Request.Context(), &p); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	est, err := EstimateRoute(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, est)
}

func (h *Handler) SearchHelp(c *gin.Context) {
	hits, err := h.service.SearchHelp(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, hits)
}

func (h *Handler) CreateHelpArticle(c *gin.Context) {
	var a domain.HelpArticle
	if err := c.ShouldBindJSON(&a); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if a.Title == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title is required")
		return
	}
	a.Published = true
	if err := h.service.CreateHelpArticle(c.Request.Context(), &a); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) OptimizeImage(c *gin.Context) {
	src := c.Query("src")
	if src == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "src is required")
		return
	}
	width, _ := strconv.Atoi(c.DefaultQuery("width", "800"))
	quality, _ := strconv.Atoi(c.DefaultQuery("quality", "75"))
	response.Success(c, http.StatusOK, gin.H{"url": images.Optimize(src, width, quality)})
}
