// Package seed loads demo users, classes and reviews into a store.
package seed

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// Fixture is the on-disk seed document.
type Fixture struct {
	Users   []model.User   `json:"users"`
	Classes []model.Class  `json:"classes"`
	Reviews []model.Review `json:"reviews"`
}

// Report counts what a seed run changed.
type Report struct {
	UsersCreated   int
	UsersUpdated   int
	ClassesCreated int
	ClassesSkipped int
	ReviewsCreated int
}

// Load reads a fixture from a local path or an http(s) URL.
func Load(ctx context.Context, source string) (*Fixture, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch fixture: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch fixture: status %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open fixture: %w", err)
		}
		r = f
	}
	defer r.Close()

	var fixture Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// Seeder writes fixtures through the repositories. Runs are idempotent:
// existing users are updated in place, classes are matched by instructor and
// name, and reviews are only written into an empty collection.
type Seeder struct {
	repos *repository.Set
	log   *zap.Logger
	now   func() time.Time
}

// New creates a Seeder over repos.
func New(repos *repository.Set, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{repos: repos, log: log.Named("seed"), now: time.Now}
}

// Run applies fixture and reports the changes.
func (s *Seeder) Run(ctx context.Context, fixture *Fixture) (Report, error) {
	var report Report

	for i := range fixture.Users {
		created, err := s.upsertUser(ctx, fixture.Users[i])
		if err != nil {
			return report, err
		}
		if created {
			report.UsersCreated++
		} else {
			report.UsersUpdated++
		}
	}

	for i := range fixture.Classes {
		created, err := s.createClass(ctx, fixture.Classes[i])
		if err != nil {
			return report, err
		}
		if created {
			report.ClassesCreated++
		} else {
			report.ClassesSkipped++
		}
	}

	if len(fixture.Reviews) > 0 {
		existing, err := s.repos.Reviews.List(ctx)
		if err != nil {
			return report, fmt.Errorf("list reviews: %w", err)
		}
		if len(existing) == 0 {
			for _, review := range fixture.Reviews {
				if err := s.repos.Reviews.Create(ctx, review); err != nil {
					return report, fmt.Errorf("create review: %w", err)
				}
				report.ReviewsCreated++
			}
		} else {
			s.log.Info("reviews already present, skipping", zap.Int("existing", len(existing)))
		}
	}

	return report, nil
}

// PromoteAdmin makes email an admin, creating the account if needed.
func (s *Seeder) PromoteAdmin(ctx context.Context, email, name string) error {
	_, err := s.upsertUser(ctx, model.User{Email: email, Name: name, Role: model.RoleAdmin})
	return err
}

func (s *Seeder) upsertUser(ctx context.Context, user model.User) (created bool, err error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return false, fmt.Errorf("%w: user email is required", errors.ErrValidation)
	}
	if user.Role == "" {
		user.Role = model.RoleStudent
	}
	if !user.Role.Valid() {
		return false, fmt.Errorf("%w: user %s has unknown role %q", errors.ErrValidation, user.Email, user.Role)
	}

	existing, err := s.repos.Users.FindByEmail(ctx, user.Email)
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		user.ID = ""
		if user.CreatedAt.IsZero() {
			user.CreatedAt = s.now().UTC()
		}
		if err := s.repos.Users.Create(ctx, &user); err != nil {
			return false, fmt.Errorf("create user %s: %w", user.Email, err)
		}
		s.log.Debug("user created", zap.String("email", user.Email), zap.String("role", string(user.Role)))
		return true, nil
	case err != nil:
		return false, fmt.Errorf("find user %s: %w", user.Email, err)
	}

	if existing.Role != user.Role {
		if _, err := s.repos.Users.UpdateRole(ctx, existing.ID, user.Role); err != nil {
			return false, fmt.Errorf("update role of %s: %w", user.Email, err)
		}
		s.log.Debug("user role updated", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	}
	return false, nil
}

func (s *Seeder) createClass(ctx context.Context, class model.Class) (bool, error) {
	if strings.TrimSpace(class.ClassName) == "" || class.InstructorEmail == "" {
		return false, fmt.Errorf("%w: class needs a name and an instructor email", errors.ErrValidation)
	}

	owned, err := s.repos.Classes.List(ctx, repository.ClassQuery{InstructorEmail: class.InstructorEmail})
	if err != nil {
		return false, fmt.Errorf("list classes of %s: %w", class.InstructorEmail, err)
	}
	for _, c := range owned {
		if strings.EqualFold(c.ClassName, class.ClassName) {
			return false, nil
		}
	}

	class.ID = ""
	if class.Status == "" {
		class.Status = model.ClassStatusPending
	}
	if !class.Status.Valid() {
		return false, fmt.Errorf("%w: class %q has unknown status %q", errors.ErrValidation, class.ClassName, class.Status)
	}
	if class.CreatedAt.IsZero() {
		class.CreatedAt = s.now().UTC()
	}
	if err := s.repos.Classes.Create(ctx, &class); err != nil {
		return false, fmt.Errorf("create class %q: %w", class.ClassName, err)
	}
	return true, nil
}
