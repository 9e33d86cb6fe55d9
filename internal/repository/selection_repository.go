package repository

import (
	"context"

	"gorm.io/gorm"

	"sportszone/internal/model"
)

type selectionRepository struct {
	db *gorm.DB
}

// NewSelectionRepository creates a new selected-class repository.
func NewSelectionRepository(db *gorm.DB) SelectionRepository {
	return &selectionRepository{db: db}
}

// Create stores a new selection.
func (r *selectionRepository) Create(ctx context.Context, selection *model.SelectedClass) error {
	return translate(r.db.WithContext(ctx).Create(selection).Error)
}

// Exists reports whether the student already selected the class.
func (r *selectionRepository) Exists(ctx context.Context, studentEmail, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SelectedClass{}).
		Where("student_email = ? AND class_id = ?", studentEmail, classID).
		Count(&count).Error
	return count > 0, err
}

// ListByStudent lists the selections of a student, newest first.
func (r *selectionRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.SelectedClass, error) {
	selections := []model.SelectedClass{}
	if err := r.db.WithContext(ctx).
		Where("student_email = ?", studentEmail).
		Order("created_at DESC").
		Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

// DeleteByClass removes a single selection of the class.
func (r *selectionRepository) DeleteByClass(ctx context.Context, classID, studentEmail string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.SelectedClass{}).Where("class_id = ?", classID)
	if studentEmail != "" {
		tx = tx.Where("student_email = ?", studentEmail)
	}

	var selection model.SelectedClass
	if err := tx.Order("created_at").First(&selection).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}

	res := r.db.WithContext(ctx).Where("id = ?", selection.ID).Delete(&model.SelectedClass{})
	return res.RowsAffected, res.Error
}
