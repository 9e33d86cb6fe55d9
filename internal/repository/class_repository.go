package repository

import (
	"context"

	"gorm.io/gorm"

	"sportszone/internal/model"
)

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

// Create creates a new class.
func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return translate(r.db.WithContext(ctx).Create(class).Error)
}

// FindByID finds a class by ID.
func (r *classRepository) FindByID(ctx context.Context, id model.ID) (*model.Class, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var class model.Class
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		return nil, translate(err)
	}
	return &class, nil
}

// List lists classes matching q.
func (r *classRepository) List(ctx context.Context, q ClassQuery) ([]model.Class, error) {
	classes := []model.Class{}
	tx := r.db.WithContext(ctx)
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.InstructorEmail != "" {
		tx = tx.Where("instructor_email = ?", q.InstructorEmail)
	}
	switch q.Sort {
	case SortMostEnrolled:
		tx = tx.Order("total_enrolled DESC").Order("created_at DESC")
	default:
		tx = tx.Order("created_at DESC")
	}
	if q.Limit > 0 {
		tx = tx.Limit(int(q.Limit))
	}
	if err := tx.Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// UpdateDetails replaces the instructor-editable fields of an owned class.
func (r *classRepository) UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (UpdateResult, error) {
	if err := checkID(id); err != nil {
		return UpdateResult{}, err
	}
	return updateResult(r.db.WithContext(ctx).Model(&model.Class{}).
		Where("id = ? AND instructor_email = ?", id, instructorEmail).
		Updates(map[string]interface{}{
			"class_name":      details.ClassName,
			"class_image":     details.ClassImage,
			"available_seats": details.AvailableSeats,
			"price":           details.Price,
		}))
}

// UpdateStatus sets the review status of a class.
func (r *classRepository) UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (UpdateResult, error) {
	if err := checkID(id); err != nil {
		return UpdateResult{}, err
	}
	return updateResult(r.db.WithContext(ctx).Model(&model.Class{}).
		Where("id = ?", id).
		Update("status", status))
}

// UpdateFeedback sets the admin feedback of a class.
func (r *classRepository) UpdateFeedback(ctx context.Context, id model.ID, feedback string) (UpdateResult, error) {
	if err := checkID(id); err != nil {
		return UpdateResult{}, err
	}
	return updateResult(r.db.WithContext(ctx).Model(&model.Class{}).
		Where("id = ?", id).
		Update("feedback", feedback))
}

// EnrollmentByInstructor sums enrollments of approved classes per instructor.
func (r *classRepository) EnrollmentByInstructor(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		InstructorEmail string
		Total           int64
	}
	err := r.db.WithContext(ctx).Model(&model.Class{}).
		Select("instructor_email, SUM(total_enrolled) AS total").
		Where("status = ?", model.ClassStatusApproved).
		Group("instructor_email").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.InstructorEmail] = row.Total
	}
	return totals, nil
}
