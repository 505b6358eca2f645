package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnoldagaba/11th-President/internal/config"
	"github.com/arnoldagaba/11th-President/internal/format"
	"github.com/arnoldagaba/11th-President/internal/gateway"
	"github.com/arnoldagaba/11th-President/internal/models"
	"github.com/arnoldagaba/11th-President/internal/payment"
	ws "github.com/arnoldagaba/11th-President/internal/websocket"
)

// DonationHandler owns the donate endpoint and the payment status endpoint.
type DonationHandler struct {
	Processor *payment.Processor
	Hub       *ws.Hub
	Config    config.Config
}

// NewDonationHandler creates a new handler around the payment processor.
func NewDonationHandler(processor *payment.Processor, hub *ws.Hub, cfg config.Config) *DonationHandler {
	return &DonationHandler{Processor: processor, Hub: hub, Config: cfg}
}

// DonateRequest defines the JSON struct we expect from the donation form.
type DonateRequest struct {
	Amount        int                  `json:"amount" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Name          string               `json:"name" binding:"required"`
	Email         string               `json:"email" binding:"omitempty,email"`
	Phone         string               `json:"phone" binding:"omitempty,ugphone"`
	Message       string               `json:"message"`
}

// Donate validates the submission and hands it to the payment workflow.
// Validation lives here at the boundary; nothing invalid reaches the
// processor or a provider.
func (h *DonationHandler) Donate(c *gin.Context) {
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Amount < h.Config.MinimumDonation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid amount (minimum 1,000 UGX)"})
		return
	}

	if req.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a payment method"})
		return
	}
	if !req.PaymentMethod.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	if req.PaymentMethod.IsMobileMoney() && !format.ValidatePhoneNumber(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid Ugandan phone number"})
		return
	}
	if req.PaymentMethod == models.MethodFlutterwave && req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required for card payments"})
		return
	}

	donor := models.DonorInfo{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	resp, err := h.Processor.ProcessPayment(c.Request.Context(), req.Amount, req.PaymentMethod, donor)
	if err != nil {
		h.renderPaymentError(c, err)
		return
	}

	h.Hub.BroadcastAlert <- ws.DonationAlert{
		DonorName:     donor.Name,
		Amount:        req.Amount,
		AmountDisplay: format.FormatCurrency(req.Amount),
		PaymentMethod: string(req.PaymentMethod),
		Message:       donor.Message,
		Timestamp:     format.FormatDate(time.Now()),
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Payment initiated successfully!",
		"reference":    resp.Reference,
		"redirect_url": resp.RedirectURL,
	})
}

func (h *DonationHandler) renderPaymentError(c *gin.Context, err error) {
	var rejected *gateway.RejectedError

	switch {
	case errors.Is(err, payment.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "A payment is already being processed. Please wait."})
	case errors.Is(err, payment.ErrUnknownMethod):
		log.Println("Unknown payment method reached the processor:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
	case errors.As(err, &rejected):
		// Provider-side rejection, show the provider's own message.
		c.JSON(http.StatusPaymentRequired, gin.H{"error": rejected.Message})
	default:
		log.Println("Payment failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment failed. Please try again."})
	}
}

// PaymentStatus exposes the readable error channel: whether an attempt is in
// flight and the last failure message.
func (h *DonationHandler) PaymentStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.Processor.Status())
}
