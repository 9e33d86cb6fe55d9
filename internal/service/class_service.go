package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// ClassService exposes class listing and moderation operations.
type ClassService interface {
	ListClasses(ctx context.Context) ([]model.Class, error)
	PopularClasses(ctx context.Context) ([]model.Class, error)
	ApprovedClasses(ctx context.Context) ([]model.Class, error)
	DeniedClasses(ctx context.Context) ([]model.Class, error)
	InstructorClasses(ctx context.Context, instructorEmail string) ([]model.Class, error)
	CreateClass(ctx context.Context, class *model.Class) error
	UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (repository.UpdateResult, error)
	UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (repository.UpdateResult, error)
	UpdateFeedback(ctx context.Context, id model.ID, feedback string) (repository.UpdateResult, error)
}

type classService struct {
	repo repository.ClassRepository
	log  *zap.Logger
}

// NewClassService builds a ClassService over repo.
func NewClassService(repo repository.ClassRepository, log *zap.Logger) ClassService {
	return &classService{repo: repo, log: orNop(log)}
}

func (s *classService) ListClasses(ctx context.Context) ([]model.Class, error) {
	return s.repo.List(ctx, repository.ClassQuery{})
}

func (s *classService) PopularClasses(ctx context.Context) ([]model.Class, error) {
	return s.repo.List(ctx, repository.ClassQuery{
		Status: model.ClassStatusApproved,
		Sort:   repository.SortMostEnrolled,
		Limit:  popularLimit,
	})
}

func (s *classService) ApprovedClasses(ctx context.Context) ([]model.Class, error) {
	return s.repo.List(ctx, repository.ClassQuery{Status: model.ClassStatusApproved})
}

func (s *classService) DeniedClasses(ctx context.Context) ([]model.Class, error) {
	return s.repo.List(ctx, repository.ClassQuery{Status: model.ClassStatusDenied})
}

func (s *classService) InstructorClasses(ctx context.Context, instructorEmail string) ([]model.Class, error) {
	if strings.TrimSpace(instructorEmail) == "" {
		return []model.Class{}, nil
	}
	return s.repo.List(ctx, repository.ClassQuery{InstructorEmail: instructorEmail})
}

// CreateClass stores a new listing awaiting moderation. Status and
// enrollment count always start from their initial values.
func (s *classService) CreateClass(ctx context.Context, class *model.Class) error {
	if strings.TrimSpace(class.ClassName) == "" {
		return fmt.Errorf("%w: className is required", errors.ErrValidation)
	}
	if err := validateSeatsAndPrice(class.AvailableSeats, class.Price); err != nil {
		return err
	}

	class.ID = ""
	class.Status = model.ClassStatusPending
	class.TotalEnrolled = 0
	class.Feedback = ""
	class.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	s.log.Info("class created",
		zap.String("class_id", class.ID.String()),
		zap.String("instructor", class.InstructorEmail),
	)
	return nil
}

func (s *classService) UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (repository.UpdateResult, error) {
	if err := validateSeatsAndPrice(details.AvailableSeats, details.Price); err != nil {
		return repository.UpdateResult{}, err
	}
	return s.repo.UpdateDetails(ctx, id, instructorEmail, details)
}

func (s *classService) UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (repository.UpdateResult, error) {
	if !status.Valid() {
		return repository.UpdateResult{}, fmt.Errorf("%w: unknown status %q", errors.ErrValidation, status)
	}
	res, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	s.log.Info("class status changed", zap.String("class_id", id.String()), zap.String("status", string(status)))
	return res, nil
}

func (s *classService) UpdateFeedback(ctx context.Context, id model.ID, feedback string) (repository.UpdateResult, error) {
	return s.repo.UpdateFeedback(ctx, id, feedback)
}

func validateSeatsAndPrice(seats int64, price decimal.Decimal) error {
	if seats < 0 {
		return fmt.Errorf("%w: availableSeats must not be negative", errors.ErrValidation)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", errors.ErrValidation)
	}
	return nil
}
