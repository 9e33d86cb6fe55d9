package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportszone/internal/errors"
	"sportszone/internal/gateway"
	"sportszone/internal/model"
)

type paymentMocks struct {
	payments   *MockPaymentRepository
	classes    *MockClassRepository
	selections *MockSelectionRepository
	gateway    *MockGateway
}

func newTestPaymentService(opts PaymentOptions) (PaymentService, paymentMocks) {
	m := paymentMocks{
		payments:   new(MockPaymentRepository),
		classes:    new(MockClassRepository),
		selections: new(MockSelectionRepository),
		gateway:    new(MockGateway),
	}
	return NewPaymentService(m.payments, m.classes, m.selections, m.gateway, opts, nil), m
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name          string
		price         string
		classID       string
		setupMock     func(paymentMocks)
		expectedError error
	}{
		{
			name:  "price converted to cents",
			price: "49.99",
			setupMock: func(m paymentMocks) {
				m.gateway.On("CreatePaymentIntent", mock.Anything, int64(4999), "usd").
					Return(&gateway.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)
			},
		},
		{
			name:    "matching class price",
			price:   "60",
			classID: "c1",
			setupMock: func(m paymentMocks) {
				m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{Price: decimal.RequireFromString("60.00")}, nil)
				m.gateway.On("CreatePaymentIntent", mock.Anything, int64(6000), "usd").
					Return(&gateway.Intent{ID: "pi_2", ClientSecret: "pi_2_secret"}, nil)
			},
		},
		{
			name:    "client price differs from class",
			price:   "1",
			classID: "c1",
			setupMock: func(m paymentMocks) {
				m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{Price: decimal.NewFromInt(60)}, nil)
			},
			expectedError: errors.ErrPriceMismatch,
		},
		{
			name:          "zero price",
			price:         "0",
			setupMock:     func(m paymentMocks) {},
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:  "gateway failure",
			price: "10",
			setupMock: func(m paymentMocks) {
				m.gateway.On("CreatePaymentIntent", mock.Anything, int64(1000), "usd").Return(nil, errors.ErrPaymentGateway)
			},
			expectedError: errors.ErrPaymentGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestPaymentService(PaymentOptions{})
			tt.setupMock(m)

			intent, err := service.CreatePaymentIntent(context.Background(), decimal.RequireFromString(tt.price), tt.classID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, intent)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, intent.ClientSecret)
			}
			m.gateway.AssertExpectations(t)
			m.classes.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Enroll(t *testing.T) {
	newPayment := func() *model.Payment {
		return &model.Payment{
			StudentEmail:  "s@example.com",
			ClassID:       "c1",
			TransactionID: "pi_123",
			Amount:        decimal.NewFromInt(60),
		}
	}

	t.Run("seat taken and payment recorded", func(t *testing.T) {
		service, m := newTestPaymentService(PaymentOptions{})
		m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{ID: "c1", AvailableSeats: 3, TotalEnrolled: 5}, nil)
		m.payments.On("Enroll", mock.Anything, mock.AnythingOfType("*model.Payment")).
			Return(&model.Class{ID: "c1", AvailableSeats: 2, TotalEnrolled: 6}, nil)

		class, err := service.Enroll(context.Background(), newPayment())
		require.NoError(t, err)
		assert.Equal(t, int64(2), class.AvailableSeats)
		assert.Equal(t, int64(6), class.TotalEnrolled)
		m.gateway.AssertNotCalled(t, "GetPaymentIntent", mock.Anything, mock.Anything)
		m.selections.AssertNotCalled(t, "DeleteByClass", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store rejections pass through", func(t *testing.T) {
		for _, want := range []error{errors.ErrNoSeatsAvailable, errors.ErrAlreadyEnrolled, errors.ErrPaymentReused} {
			service, m := newTestPaymentService(PaymentOptions{})
			m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{ID: "c1"}, nil)
			m.payments.On("Enroll", mock.Anything, mock.Anything).Return(nil, want)

			class, err := service.Enroll(context.Background(), newPayment())
			assert.ErrorIs(t, err, want)
			assert.Nil(t, class)
		}
	})

	t.Run("malformed class id stops before the store", func(t *testing.T) {
		service, m := newTestPaymentService(PaymentOptions{})
		m.classes.On("FindByID", mock.Anything, model.ID("nope")).Return(nil, errors.ErrInvalidID)

		p := newPayment()
		p.ClassID = "nope"
		_, err := service.Enroll(context.Background(), p)
		assert.ErrorIs(t, err, errors.ErrInvalidID)
		m.payments.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
	})

	t.Run("unverified payment rejected", func(t *testing.T) {
		service, m := newTestPaymentService(PaymentOptions{VerifyPayments: true})
		m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{ID: "c1"}, nil)
		m.gateway.On("GetPaymentIntent", mock.Anything, "pi_123").
			Return(&gateway.Intent{ID: "pi_123", Status: "requires_payment_method"}, nil)

		_, err := service.Enroll(context.Background(), newPayment())
		assert.ErrorIs(t, err, errors.ErrPaymentNotConfirmed)
		m.payments.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
	})

	t.Run("verified payment clears the selection", func(t *testing.T) {
		service, m := newTestPaymentService(PaymentOptions{VerifyPayments: true, ClearSelectionOnEnroll: true})
		m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{ID: "c1", Price: decimal.NewFromInt(60)}, nil)
		m.gateway.On("GetPaymentIntent", mock.Anything, "pi_123").
			Return(&gateway.Intent{ID: "pi_123", Amount: 6000, Currency: "usd", Status: gateway.IntentStatusSucceeded}, nil)
		m.payments.On("Enroll", mock.Anything, mock.Anything).Return(&model.Class{ID: "c1", AvailableSeats: 0, TotalEnrolled: 1}, nil)
		m.selections.On("DeleteByClass", mock.Anything, "c1", "s@example.com").Return(int64(1), nil)

		_, err := service.Enroll(context.Background(), newPayment())
		require.NoError(t, err)
		m.selections.AssertExpectations(t)
	})

	t.Run("settled intent must cover the class", func(t *testing.T) {
		tests := []struct {
			name   string
			intent gateway.Intent
		}{
			{name: "cheaper intent", intent: gateway.Intent{ID: "pi_123", Amount: 50, Currency: "usd", Status: gateway.IntentStatusSucceeded}},
			{name: "other currency", intent: gateway.Intent{ID: "pi_123", Amount: 4000, Currency: "eur", Status: gateway.IntentStatusSucceeded}},
			{name: "overpaid intent", intent: gateway.Intent{ID: "pi_123", Amount: 9000, Currency: "usd", Status: gateway.IntentStatusSucceeded}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, m := newTestPaymentService(PaymentOptions{VerifyPayments: true})
				m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{ID: "c1", Price: decimal.NewFromInt(40)}, nil)
				intent := tt.intent
				m.gateway.On("GetPaymentIntent", mock.Anything, "pi_123").Return(&intent, nil)

				_, err := service.Enroll(context.Background(), newPayment())
				assert.ErrorIs(t, err, errors.ErrPaymentNotConfirmed)
				m.payments.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("transaction replayed for another class", func(t *testing.T) {
		service, m := newTestPaymentService(PaymentOptions{VerifyPayments: true})
		for _, id := range []string{"c1", "c2"} {
			m.classes.On("FindByID", mock.Anything, model.ID(id)).Return(&model.Class{ID: model.ID(id), Price: decimal.NewFromInt(40)}, nil)
		}
		m.gateway.On("GetPaymentIntent", mock.Anything, "pi_123").
			Return(&gateway.Intent{ID: "pi_123", Amount: 4000, Currency: "usd", Status: gateway.IntentStatusSucceeded}, nil)
		m.payments.On("Enroll", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool { return p.ClassID == "c1" })).
			Return(&model.Class{ID: "c1", AvailableSeats: 4, TotalEnrolled: 1}, nil).Once()
		m.payments.On("Enroll", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool { return p.ClassID == "c2" })).
			Return(nil, errors.ErrPaymentReused).Once()

		_, err := service.Enroll(context.Background(), newPayment())
		require.NoError(t, err)

		replay := newPayment()
		replay.ClassID = "c2"
		_, err = service.Enroll(context.Background(), replay)
		assert.ErrorIs(t, err, errors.ErrPaymentReused)
		m.payments.AssertExpectations(t)
	})

	t.Run("missing transaction id with verification", func(t *testing.T) {
		service, m := newTestPaymentService(PaymentOptions{VerifyPayments: true})
		m.classes.On("FindByID", mock.Anything, model.ID("c1")).Return(&model.Class{ID: "c1"}, nil)

		p := newPayment()
		p.TransactionID = ""
		_, err := service.Enroll(context.Background(), p)
		assert.ErrorIs(t, err, errors.ErrPaymentNotConfirmed)
	})

	t.Run("negative amount", func(t *testing.T) {
		service, _ := newTestPaymentService(PaymentOptions{})

		p := newPayment()
		p.Amount = decimal.NewFromInt(-1)
		_, err := service.Enroll(context.Background(), p)
		assert.ErrorIs(t, err, errors.ErrInvalidAmount)
	})
}

func TestPaymentService_Listings(t *testing.T) {
	service, m := newTestPaymentService(PaymentOptions{})
	m.payments.On("List", mock.Anything).Return([]model.Payment{{ClassID: "c1"}, {ClassID: "c2"}}, nil)
	m.payments.On("ListByStudent", mock.Anything, "s@example.com").Return([]model.Payment{{ClassID: "c1"}}, nil)

	history, err := service.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 2)

	enrolled, err := service.EnrolledByStudent(context.Background(), "s@example.com")
	require.NoError(t, err)
	assert.Len(t, enrolled, 1)
}
