package handler_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"sportszone/internal/gateway"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, user *model.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) ListInstructors(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) PopularInstructors(ctx context.Context) ([]model.InstructorStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.InstructorStats), args.Error(1)
}

func (m *MockUserService) HasRole(ctx context.Context, callerEmail, email string, role model.Role) (bool, error) {
	args := m.Called(ctx, callerEmail, email, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) RoleOf(ctx context.Context, email string) (model.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Role), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, id model.ID, role model.Role) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id model.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockClassService is a mock implementation of service.ClassService.
type MockClassService struct {
	mock.Mock
}

func (m *MockClassService) classes(args mock.Arguments) ([]model.Class, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassService) ListClasses(ctx context.Context) ([]model.Class, error) {
	return m.classes(m.Called(ctx))
}

func (m *MockClassService) PopularClasses(ctx context.Context) ([]model.Class, error) {
	return m.classes(m.Called(ctx))
}

func (m *MockClassService) ApprovedClasses(ctx context.Context) ([]model.Class, error) {
	return m.classes(m.Called(ctx))
}

func (m *MockClassService) DeniedClasses(ctx context.Context) ([]model.Class, error) {
	return m.classes(m.Called(ctx))
}

func (m *MockClassService) InstructorClasses(ctx context.Context, instructorEmail string) ([]model.Class, error) {
	return m.classes(m.Called(ctx, instructorEmail))
}

func (m *MockClassService) CreateClass(ctx context.Context, class *model.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassService) UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, instructorEmail, details)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockClassService) UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

func (m *MockClassService) UpdateFeedback(ctx context.Context, id model.ID, feedback string) (repository.UpdateResult, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(repository.UpdateResult), args.Error(1)
}

// MockSelectionService is a mock implementation of service.SelectionService.
type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) ListSelected(ctx context.Context, studentEmail string) ([]model.SelectedClass, error) {
	args := m.Called(ctx, studentEmail)
	return args.Get(0).([]model.SelectedClass), args.Error(1)
}

func (m *MockSelectionService) SelectClass(ctx context.Context, selection *model.SelectedClass) error {
	args := m.Called(ctx, selection)
	return args.Error(0)
}

func (m *MockSelectionService) RemoveSelected(ctx context.Context, classID, studentEmail string) (int64, error) {
	args := m.Called(ctx, classID, studentEmail)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentService is a mock implementation of service.PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal, classID string) (*gateway.Intent, error) {
	args := m.Called(ctx, price, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}

func (m *MockPaymentService) Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockPaymentService) History(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentService) EnrolledByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error) {
	args := m.Called(ctx, studentEmail)
	return args.Get(0).([]model.Payment), args.Error(1)
}
