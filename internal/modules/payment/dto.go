package payment

import "staykedarnath/internal/domain"

type CustomerDetails struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	TravelDate string `json:"travel_date,omitempty"`
}

type CreateOrderRequest struct {
	PackageID       int64           `json:"packageId" binding:"required"`
	Amount          float64         `json:"amount" binding:"required,gt=0"`
	CustomerDetails CustomerDetails `json:"customerDetails" binding:"required"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type VerifyResponse struct {
	Success bool            `json:"success"`
	Booking *domain.Booking `json:"booking"`
}
