// Package repository defines the persistence contracts of the API and their
// GORM (MySQL) implementation. The MongoDB implementation lives in
// repository/mongorepo; both return errors from internal/errors so services
// stay backend agnostic:
//
//   - ErrInvalidID when an id is not well formed for the backend
//   - ErrNotFound when a single-document lookup matches nothing
//   - ErrDuplicate when a unique key is violated
package repository

import (
	"context"

	"sportszone/internal/model"
)

// ClassSort selects the ordering of a class listing.
type ClassSort int

const (
	// SortNewest orders by creation time, newest first.
	SortNewest ClassSort = iota
	// SortMostEnrolled orders by total enrollment, highest first.
	SortMostEnrolled
)

// ClassQuery filters and orders a class listing. Zero values mean "any".
type ClassQuery struct {
	Status          model.ClassStatus
	InstructorEmail string
	Sort            ClassSort
	Limit           int64
}

// UpdateResult reports how many documents an update matched and changed.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id model.ID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// List returns users newest first, restricted to role when it is set.
	List(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateRole(ctx context.Context, id model.ID, role model.Role) (UpdateResult, error)
	Delete(ctx context.Context, id model.ID) (int64, error)
}

// ClassRepository defines class persistence operations.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id model.ID) (*model.Class, error)
	List(ctx context.Context, q ClassQuery) ([]model.Class, error)
	// UpdateDetails only touches classes owned by instructorEmail.
	UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (UpdateResult, error)
	UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (UpdateResult, error)
	UpdateFeedback(ctx context.Context, id model.ID, feedback string) (UpdateResult, error)
	// EnrollmentByInstructor sums totalEnrolled of approved classes per instructor email.
	EnrollmentByInstructor(ctx context.Context) (map[string]int64, error)
}

// SelectionRepository defines selected-class persistence operations.
type SelectionRepository interface {
	Create(ctx context.Context, selection *model.SelectedClass) error
	Exists(ctx context.Context, studentEmail, classID string) (bool, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]model.SelectedClass, error)
	// DeleteByClass removes one selection of classID, scoped to studentEmail when it is set.
	DeleteByClass(ctx context.Context, classID, studentEmail string) (int64, error)
}

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	List(ctx context.Context) ([]model.Payment, error)
	ListByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error)
	// Enroll takes one seat of payment.ClassID and records payment as a single
	// unit: either both happen or neither does. It fails with
	// ErrAlreadyEnrolled, ErrPaymentReused (a non-empty TransactionID that is
	// already recorded), ErrNotFound or ErrNoSeatsAvailable and returns the
	// class as it is after the seat was taken.
	Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error)
}

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, review model.Review) error
}

// Set bundles one implementation of every repository.
type Set struct {
	Users      UserRepository
	Classes    ClassRepository
	Selections SelectionRepository
	Payments   PaymentRepository
	Reviews    ReviewRepository
}
