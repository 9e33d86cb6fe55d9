package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"sportszone/internal/errors"
	"sportszone/internal/gateway"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// PaymentOptions tunes the payment flow.
type PaymentOptions struct {
	// Currency is the ISO code payment intents are created in.
	Currency string
	// VerifyPayments requires the gateway to report the transaction as
	// succeeded before a seat is taken.
	VerifyPayments bool
	// ClearSelectionOnEnroll removes the student's selection of the class
	// once the enrollment is recorded.
	ClearSelectionOnEnroll bool
}

// PaymentService handles payment intents and the enrollment transition.
type PaymentService interface {
	// CreatePaymentIntent starts a card payment for price. When classID is
	// set the class price must equal price.
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal, classID string) (*gateway.Intent, error)
	// Enroll takes a seat in payment.ClassID for payment.StudentEmail and
	// records the payment, returning the class after the change.
	Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error)
	History(ctx context.Context) ([]model.Payment, error)
	EnrolledByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error)
}

type paymentService struct {
	payments   repository.PaymentRepository
	classes    repository.ClassRepository
	selections repository.SelectionRepository
	gateway    gateway.Gateway
	opts       PaymentOptions
	log        *zap.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	payments repository.PaymentRepository,
	classes repository.ClassRepository,
	selections repository.SelectionRepository,
	gw gateway.Gateway,
	opts PaymentOptions,
	log *zap.Logger,
) PaymentService {
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	return &paymentService{
		payments:   payments,
		classes:    classes,
		selections: selections,
		gateway:    gw,
		opts:       opts,
		log:        orNop(log),
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal, classID string) (*gateway.Intent, error) {
	amount, err := gateway.MinorUnits(price)
	if err != nil {
		return nil, err
	}

	if classID = strings.TrimSpace(classID); classID != "" {
		class, err := s.classes.FindByID(ctx, model.ID(classID))
		if err != nil {
			return nil, err
		}
		if !class.Price.Equal(price) {
			return nil, errors.ErrPriceMismatch
		}
	}

	return s.gateway.CreatePaymentIntent(ctx, amount, s.opts.Currency)
}

func (s *paymentService) Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error) {
	if strings.TrimSpace(payment.StudentEmail) == "" {
		return nil, errors.ErrUnauthorized
	}
	if payment.Amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	// rejects malformed and unknown class ids before the gateway is involved
	target, err := s.classes.FindByID(ctx, model.ID(payment.ClassID))
	if err != nil {
		return nil, err
	}

	if s.opts.VerifyPayments {
		if err := s.verify(ctx, payment.TransactionID, target); err != nil {
			return nil, err
		}
	}

	payment.ID = ""
	class, err := s.payments.Enroll(ctx, payment)
	if err != nil {
		if stderrors.Is(err, errors.ErrNoSeatsAvailable) || stderrors.Is(err, errors.ErrAlreadyEnrolled) ||
			stderrors.Is(err, errors.ErrPaymentReused) {
			s.log.Warn("enrollment rejected",
				zap.String("student", payment.StudentEmail),
				zap.String("class_id", payment.ClassID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	s.log.Info("enrollment recorded",
		zap.String("student", payment.StudentEmail),
		zap.String("class_id", payment.ClassID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Int64("available_seats", class.AvailableSeats),
		zap.Int64("total_enrolled", class.TotalEnrolled),
	)

	if s.opts.ClearSelectionOnEnroll {
		if _, err := s.selections.DeleteByClass(ctx, payment.ClassID, payment.StudentEmail); err != nil {
			s.log.Warn("clear selection failed", zap.String("class_id", payment.ClassID), zap.Error(err))
		}
	}
	return class, nil
}

// verify requires the intent to be settled for exactly the class price in
// the configured currency.
func (s *paymentService) verify(ctx context.Context, transactionID string, class *model.Class) error {
	if strings.TrimSpace(transactionID) == "" {
		return errors.ErrPaymentNotConfirmed
	}
	intent, err := s.gateway.GetPaymentIntent(ctx, transactionID)
	if err != nil {
		return err
	}
	if !intent.Succeeded() {
		s.log.Warn("payment not settled", zap.String("transaction_id", transactionID), zap.String("status", intent.Status))
		return errors.ErrPaymentNotConfirmed
	}

	want, err := gateway.MinorUnits(class.Price)
	if err != nil || intent.Amount != want || !strings.EqualFold(intent.Currency, s.opts.Currency) {
		s.log.Warn("payment does not cover class",
			zap.String("transaction_id", transactionID),
			zap.String("class_id", class.ID.String()),
			zap.Int64("paid", intent.Amount),
			zap.String("paid_currency", intent.Currency),
			zap.Int64("price", want),
		)
		return fmt.Errorf("%w: paid %d %s, class costs %d %s",
			errors.ErrPaymentNotConfirmed, intent.Amount, intent.Currency, want, s.opts.Currency)
	}
	return nil
}

func (s *paymentService) History(ctx context.Context) ([]model.Payment, error) {
	return s.payments.List(ctx)
}

func (s *paymentService) EnrolledByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error) {
	return s.payments.ListByStudent(ctx, studentEmail)
}
