package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// SelectionService manages the classes a student intends to buy.
type SelectionService interface {
	ListSelected(ctx context.Context, studentEmail string) ([]model.SelectedClass, error)
	SelectClass(ctx context.Context, selection *model.SelectedClass) error
	// RemoveSelected deletes one selection of classID, limited to
	// studentEmail when it is not empty.
	RemoveSelected(ctx context.Context, classID, studentEmail string) (int64, error)
}

type selectionService struct {
	repo    repository.SelectionRepository
	classes repository.ClassRepository
	log     *zap.Logger
}

// NewSelectionService builds a SelectionService.
func NewSelectionService(repo repository.SelectionRepository, classes repository.ClassRepository, log *zap.Logger) SelectionService {
	return &selectionService{repo: repo, classes: classes, log: orNop(log)}
}

func (s *selectionService) ListSelected(ctx context.Context, studentEmail string) ([]model.SelectedClass, error) {
	return s.repo.ListByStudent(ctx, studentEmail)
}

// SelectClass records a selection, copying display fields the client left
// empty from the class itself. Selecting the same class twice is rejected.
func (s *selectionService) SelectClass(ctx context.Context, selection *model.SelectedClass) error {
	if strings.TrimSpace(selection.ClassID) == "" {
		return fmt.Errorf("%w: classId is required", errors.ErrValidation)
	}

	class, err := s.classes.FindByID(ctx, model.ID(selection.ClassID))
	if err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, selection.StudentEmail, selection.ClassID)
	if err != nil {
		return fmt.Errorf("check selection: %w", err)
	}
	if exists {
		return errors.ErrDuplicate
	}

	if selection.ClassName == "" {
		selection.ClassName = class.ClassName
	}
	if selection.ClassImage == "" {
		selection.ClassImage = class.ClassImage
	}
	if selection.InstructorEmail == "" {
		selection.InstructorEmail = class.InstructorEmail
	}
	if selection.Price.IsZero() {
		selection.Price = class.Price
	}
	selection.ID = ""
	selection.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, selection); err != nil {
		return fmt.Errorf("create selection: %w", err)
	}
	return nil
}

func (s *selectionService) RemoveSelected(ctx context.Context, classID, studentEmail string) (int64, error) {
	if strings.TrimSpace(classID) == "" {
		return 0, fmt.Errorf("%w: id is required", errors.ErrValidation)
	}
	deleted, err := s.repo.DeleteByClass(ctx, classID, studentEmail)
	if err != nil {
		return 0, fmt.Errorf("delete selection: %w", err)
	}
	if deleted > 0 {
		s.log.Debug("selection removed", zap.String("class_id", classID), zap.String("student", studentEmail))
	}
	return deleted, nil
}
