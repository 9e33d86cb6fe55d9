package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"sportszone/internal/auth"
	"sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// popularLimit caps the "popular" listings of classes and instructors.
const popularLimit = 6

// UserService exposes user and role operations.
type UserService interface {
	// CreateUser stores user unless its email is taken. created is false when
	// a user with that email already exists; no error is returned in that case.
	CreateUser(ctx context.Context, user *model.User) (created bool, err error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListInstructors(ctx context.Context) ([]model.User, error)
	PopularInstructors(ctx context.Context) ([]model.InstructorStats, error)
	// HasRole reports whether email holds role. Callers may only ask about
	// themselves; asking about someone else yields false.
	HasRole(ctx context.Context, callerEmail, email string, role model.Role) (bool, error)
	RoleOf(ctx context.Context, email string) (model.Role, error)
	UpdateRole(ctx context.Context, id model.ID, role model.Role) (repository.UpdateResult, error)
	DeleteUser(ctx context.Context, id model.ID) (int64, error)
}

type userService struct {
	repo    repository.UserRepository
	classes repository.ClassRepository
	roles   auth.RoleCacheInterface
	log     *zap.Logger
}

// Ensure userService can back the role gate
var _ auth.RoleLookup = (*userService)(nil)

// NewUserService builds a UserService with repositories and the role cache.
func NewUserService(repo repository.UserRepository, classes repository.ClassRepository, roles auth.RoleCacheInterface, log *zap.Logger) UserService {
	return &userService{repo: repo, classes: classes, roles: roles, log: orNop(log)}
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (bool, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return false, fmt.Errorf("%w: email is required", errors.ErrValidation)
	}
	if user.Role == "" {
		user.Role = model.RoleStudent
	}
	if !user.Role.Valid() {
		return false, fmt.Errorf("%w: unknown role %q", errors.ErrValidation, user.Role)
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return false, nil
	}
	if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return false, fmt.Errorf("check user existence: %w", err)
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// lost a race against a concurrent registration of the same email
		if stderrors.Is(err, errors.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return true, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx, "")
}

func (s *userService) ListInstructors(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx, model.RoleInstructor)
}

// PopularInstructors ranks instructors by the enrollments of their approved
// classes. Instructors without enrollments fill the remaining slots.
func (s *userService) PopularInstructors(ctx context.Context) ([]model.InstructorStats, error) {
	instructors, err := s.repo.List(ctx, model.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	totals, err := s.classes.EnrollmentByInstructor(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum enrollments: %w", err)
	}

	stats := make([]model.InstructorStats, 0, len(instructors))
	for _, u := range instructors {
		stats = append(stats, model.InstructorStats{
			Name:          u.Name,
			Email:         u.Email,
			Image:         u.PhotoURL,
			TotalEnrolled: totals[u.Email],
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalEnrolled > stats[j].TotalEnrolled
	})

	if len(stats) > popularLimit {
		stats = stats[:popularLimit]
	}
	return stats, nil
}

func (s *userService) HasRole(ctx context.Context, callerEmail, email string, role model.Role) (bool, error) {
	// emails are matched exactly, as the stores match them
	email = strings.TrimSpace(email)
	if strings.TrimSpace(callerEmail) != email {
		return false, nil
	}
	actual, err := s.RoleOf(ctx, email)
	if stderrors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return actual == role, nil
}

// RoleOf returns the persisted role of email, consulting the role cache first.
func (s *userService) RoleOf(ctx context.Context, email string) (model.Role, error) {
	if role, ok := s.roles.GetRole(ctx, email); ok {
		return role, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := s.roles.StoreRole(ctx, email, user.Role); err != nil {
		s.log.Warn("cache role failed", zap.String("email", email), zap.Error(err))
	}
	return user.Role, nil
}

func (s *userService) UpdateRole(ctx context.Context, id model.ID, role model.Role) (repository.UpdateResult, error) {
	if !role.Valid() {
		return repository.UpdateResult{}, fmt.Errorf("%w: unknown role %q", errors.ErrValidation, role)
	}

	user, err := s.repo.FindByID(ctx, id)
	if stderrors.Is(err, errors.ErrNotFound) {
		return repository.UpdateResult{}, nil
	}
	if err != nil {
		return repository.UpdateResult{}, err
	}

	res, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("update role: %w", err)
	}
	s.invalidateRole(ctx, user.Email)

	s.log.Info("user role changed", zap.String("email", user.Email), zap.String("role", string(role)))
	return res, nil
}

func (s *userService) DeleteUser(ctx context.Context, id model.ID) (int64, error) {
	user, err := s.repo.FindByID(ctx, id)
	if stderrors.Is(err, errors.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	s.invalidateRole(ctx, user.Email)

	s.log.Info("user deleted", zap.String("email", user.Email))
	return deleted, nil
}

func (s *userService) invalidateRole(ctx context.Context, email string) {
	if err := s.roles.InvalidateRole(ctx, email); err != nil {
		s.log.Warn("invalidate cached role failed", zap.String("email", email), zap.Error(err))
	}
}
