package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staykedarnath/internal/pkg/response"
	"staykedarnath/internal/repository"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

// RegisterRoutes expects a group that already carries OptionalAuth, so order
// creation can attribute the booking to a signed-in user when one is present.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/orders", h.CreateOrder)
	rg.POST("/payments/verify", h.Verify)
}

// CreateOrder godoc
// @Summary      Create payment order
// @Description  Creates a Razorpay order and a pending booking row
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body CreateOrderRequest true "Order payload"
// @Success      200 {object} CreateOrderResponse
// @Failure      400 {object} map[string]any
// @Router       /payments/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var userID *int64
	if id := c.GetInt64("user_id"); id != 0 {
		userID = &id
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		h.loggerf("level=error msg=order creation failed package_id=%d err=%v", req.PackageID, err)
		var perr *ProviderError
		if errors.As(err, &perr) {
			response.ProviderError(c, "PROVIDER_ERROR", "payment provider rejected the order", perr.Payload)
			return
		}
		response.Error(c, http.StatusBadRequest, "ORDER_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify godoc
// @Summary      Verify payment signature
// @Description  Validates the HMAC proof and marks the booking paid
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body VerifyRequest true "Signature proof"
// @Success      200 {object} VerifyResponse
// @Failure      400 {object} map[string]any
// @Router       /payments/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, err := h.service.Verify(c.Request.Context(), req)
	if err != nil {
		h.loggerf("level=error msg=payment verification failed order_id=%s err=%v", req.OrderID, err)
		switch {
		case errors.Is(err, ErrInvalidSignature):
			response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", err.Error())
		case errors.Is(err, repository.ErrBookingNotFound):
			response.Error(c, http.StatusBadRequest, "BOOKING_NOT_FOUND", ErrBookingNotFound.Error())
		default:
			response.Error(c, http.StatusBadRequest, "VERIFY_FAILED", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{Success: true, Booking: booking})
}
