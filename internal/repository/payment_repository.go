package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "sportszone/internal/errors"
	"sportszone/internal/model"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// List lists every payment, newest first.
func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	payments := []model.Payment{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByStudent lists the payments of a student, newest first.
func (r *paymentRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error) {
	payments := []model.Payment{}
	if err := r.db.WithContext(ctx).
		Where("student_email = ?", studentEmail).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Enroll decrements the class seats and inserts the payment in one transaction.
// The seat update is conditioned on available_seats > 0, so the row lock taken
// by the UPDATE serialises concurrent enrollments of the same class.
func (r *paymentRepository) Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error) {
	classID := model.ID(payment.ClassID)
	if err := checkID(classID); err != nil {
		return nil, err
	}

	var class model.Class
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paid int64
		if err := tx.Model(&model.Payment{}).
			Where("student_email = ? AND class_id = ?", payment.StudentEmail, payment.ClassID).
			Count(&paid).Error; err != nil {
			return err
		}
		if paid > 0 {
			return apperrors.ErrAlreadyEnrolled
		}
		if payment.TransactionID != "" {
			// the locking read serialises enrollments replaying one transaction
			var used int64
			if err := tx.Model(&model.Payment{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("transaction_id = ?", payment.TransactionID).
				Count(&used).Error; err != nil {
				return err
			}
			if used > 0 {
				return apperrors.ErrPaymentReused
			}
		}

		res := tx.Model(&model.Class{}).
			Where("id = ? AND available_seats > 0", classID).
			Updates(map[string]interface{}{
				"available_seats": gorm.Expr("available_seats - 1"),
				"total_enrolled":  gorm.Expr("total_enrolled + 1"),
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.Where("id = ?", classID).First(&class).Error; err != nil {
			return translate(err)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNoSeatsAvailable
		}

		if payment.InstructorEmail == "" {
			payment.InstructorEmail = class.InstructorEmail
		}
		if payment.ClassName == "" {
			payment.ClassName = class.ClassName
		}
		if payment.CreatedAt.IsZero() {
			payment.CreatedAt = time.Now().UTC()
		}

		if err := tx.Create(payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyEnrolled
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &class, nil
}
