package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sportszone/internal/gateway"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id model.ID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id model.ID, role model.Role) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id model.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockClassRepository is a mock implementation of ClassRepository.
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(ctx context.Context, class *model.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) FindByID(ctx context.Context, id model.ID) (*model.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockClassRepository) List(ctx context.Context, q repository.ClassQuery) ([]model.Class, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassRepository) UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, instructorEmail, details)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockClassRepository) UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockClassRepository) UpdateFeedback(ctx context.Context, id model.ID, feedback string) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockClassRepository) EnrollmentByInstructor(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockSelectionRepository is a mock implementation of SelectionRepository.
type MockSelectionRepository struct {
	mock.Mock
}

func (m *MockSelectionRepository) Create(ctx context.Context, selection *model.SelectedClass) error {
	args := m.Called(ctx, selection)
	return args.Error(0)
}

func (m *MockSelectionRepository) Exists(ctx context.Context, studentEmail, classID string) (bool, error) {
	args := m.Called(ctx, studentEmail, classID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSelectionRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.SelectedClass, error) {
	args := m.Called(ctx, studentEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SelectedClass), args.Error(1)
}

func (m *MockSelectionRepository) DeleteByClass(ctx context.Context, classID, studentEmail string) (int64, error) {
	args := m.Called(ctx, classID, studentEmail)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error) {
	args := m.Called(ctx, studentEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

// MockRoleCache is a mock implementation of RoleCacheInterface.
type MockRoleCache struct {
	mock.Mock
}

func (m *MockRoleCache) GetRole(ctx context.Context, email string) (model.Role, bool) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Role), args.Bool(1)
}

func (m *MockRoleCache) StoreRole(ctx context.Context, email string, role model.Role) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *MockRoleCache) InvalidateRole(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockGateway is a mock implementation of gateway.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*gateway.Intent, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}

func (m *MockGateway) GetPaymentIntent(ctx context.Context, id string) (*gateway.Intent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}
