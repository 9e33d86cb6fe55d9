package handler_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportszone/internal/errors"
	"sportszone/internal/gateway"
	"sportszone/internal/handler"
	"sportszone/internal/model"
)

func TestPaymentHandler_Enroll(t *testing.T) {
	const body = `{"classId":"c1","transactionId":"pi_123","amount":60,"className":"Archery"}`

	t.Run("seat change reported", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("Enroll", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
			return p.StudentEmail == "s@example.com" && p.ClassID == "c1" && p.Amount.Equal(decimal.NewFromInt(60))
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Payment).ID = "p1"
		}).Return(&model.Class{ID: "c1", AvailableSeats: 2, TotalEnrolled: 6}, nil)

		rec := call(t, handler.NewPaymentHandler(svc).Enroll, http.MethodPost, "/payments", body, "s@example.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var res handler.EnrollmentResult
		decode(t, rec, &res)
		assert.Equal(t, handler.InsertResult{Acknowledged: true, InsertedID: "p1"}, res.PostResult)
		assert.Equal(t, int64(1), res.UpdateResult.ModifiedCount)
		assert.Equal(t, int64(2), res.AvailableSeats)
		assert.Equal(t, int64(6), res.TotalEnrolled)
	})

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"no seats", errors.ErrNoSeatsAvailable, http.StatusConflict, "NO_SEATS_AVAILABLE"},
		{"already enrolled", errors.ErrAlreadyEnrolled, http.StatusConflict, "ALREADY_ENROLLED"},
		{"unknown class", errors.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"malformed class id", errors.ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
		{"unsettled payment", errors.ErrPaymentNotConfirmed, http.StatusPaymentRequired, "PAYMENT_NOT_CONFIRMED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPaymentService)
			svc.On("Enroll", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := call(t, handler.NewPaymentHandler(svc).Enroll, http.MethodPost, "/payments", body, "s@example.com")
			assert.Equal(t, tt.wantCode, rec.Code)

			var res errors.ErrorResponse
			decode(t, rec, &res)
			assert.True(t, res.Error)
			assert.Equal(t, tt.wantBody, res.Code)
		})
	}

	t.Run("missing transaction id", func(t *testing.T) {
		svc := new(MockPaymentService)

		rec := call(t, handler.NewPaymentHandler(svc).Enroll, http.MethodPost, "/payments", `{"classId":"c1"}`, "s@example.com")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
	})
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(p decimal.Decimal) bool {
		return p.Equal(decimal.RequireFromString("49.99"))
	}), "").Return(&gateway.Intent{ID: "pi_1", ClientSecret: "pi_1_secret_x"}, nil)

	rec := call(t, handler.NewPaymentHandler(svc).CreatePaymentIntent, http.MethodPost, "/create-payment-intent", `{"price":49.99}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_1_secret_x"}`, rec.Body.String())
}

func TestPaymentHandler_EnrolledStudent(t *testing.T) {
	t.Run("own payments", func(t *testing.T) {
		svc := new(MockPaymentService)
		svc.On("EnrolledByStudent", mock.Anything, "s@example.com").Return([]model.Payment{{ClassID: "c1"}}, nil)

		rec := call(t, handler.NewPaymentHandler(svc).EnrolledStudent, http.MethodGet, "/payments/enrolled/student?email=s@example.com", "", "s@example.com")
		require.Equal(t, http.StatusOK, rec.Code)

		var payments []model.Payment
		decode(t, rec, &payments)
		assert.Len(t, payments, 1)
	})

	t.Run("someone else's payments", func(t *testing.T) {
		svc := new(MockPaymentService)

		rec := call(t, handler.NewPaymentHandler(svc).EnrolledStudent, http.MethodGet, "/payments/enrolled/student?email=other@example.com", "", "s@example.com")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		svc.AssertNotCalled(t, "EnrolledByStudent", mock.Anything, mock.Anything)
	})
}
