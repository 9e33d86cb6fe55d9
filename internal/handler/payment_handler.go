package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sportszone/internal/model"
	"sportszone/internal/service"
)

// PaymentHandler handles payment intents, enrollment and payment listings.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentIntentRequest asks for a card payment of price. When ClassID is
// set the class price must match.
type PaymentIntentRequest struct {
	Price   decimal.Decimal `json:"price" swaggertype:"number"`
	ClassID string          `json:"classId"`
}

// PaymentIntentResponse carries the secret the client confirms the card payment with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// EnrollRequest records a confirmed payment for a class.
type EnrollRequest struct {
	ClassID         string          `json:"classId" validate:"required"`
	TransactionID   string          `json:"transactionId" validate:"required"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"number"`
	ClassName       string          `json:"className"`
	InstructorEmail string          `json:"instructorEmail" validate:"omitempty,email"`
}

// EnrollmentResult reports the stored payment and the seat change it caused.
type EnrollmentResult struct {
	PostResult     InsertResult `json:"postResult"`
	UpdateResult   UpdateResult `json:"updateResult"`
	AvailableSeats int64        `json:"availableSeats"`
	TotalEnrolled  int64        `json:"totalEnrolled"`
}

// CreatePaymentIntent godoc
// @Summary Start a card payment
// @Description Creates a payment intent for price, converted to minor units.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Price"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	intent, err := h.paymentService.CreatePaymentIntent(c.Request().Context(), req.Price, req.ClassID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// Enroll godoc
// @Summary Record a payment and take a seat
// @Description Atomically takes one seat of the class and stores the payment for the caller.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EnrollRequest true "Payment"
// @Success 200 {object} EnrollmentResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 402 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Enroll(c echo.Context) error {
	var req EnrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	caller, err := callerEmail(c)
	if err != nil {
		return err
	}

	payment := &model.Payment{
		StudentEmail:    caller,
		ClassID:         req.ClassID,
		ClassName:       req.ClassName,
		InstructorEmail: req.InstructorEmail,
		Amount:          req.Amount,
		TransactionID:   req.TransactionID,
	}
	class, err := h.paymentService.Enroll(c.Request().Context(), payment)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, EnrollmentResult{
		PostResult:     inserted(payment.ID),
		UpdateResult:   UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
		AvailableSeats: class.AvailableSeats,
		TotalEnrolled:  class.TotalEnrolled,
	})
}

// History godoc
// @Summary List every payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments/history [get]
func (h *PaymentHandler) History(c echo.Context) error {
	payments, err := h.paymentService.History(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, payments)
}

// EnrolledStudent godoc
// @Summary List the caller's payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string false "Student email, must be the caller"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments/enrolled/student [get]
func (h *PaymentHandler) EnrolledStudent(c echo.Context) error {
	email, err := scopedEmail(c)
	if err != nil {
		return err
	}
	payments, err := h.paymentService.EnrolledByStudent(c.Request().Context(), email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, payments)
}
