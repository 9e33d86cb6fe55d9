package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "sportszone/internal/errors"
	"sportszone/internal/model"
)

// Models lists every GORM model for AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Class{},
		&model.SelectedClass{},
		&model.Payment{},
		&model.ReviewRecord{},
	}
}

// NewGormSet builds all repositories over a GORM connection.
func NewGormSet(db *gorm.DB) *Set {
	return &Set{
		Users:      NewUserRepository(db),
		Classes:    NewClassRepository(db),
		Selections: NewSelectionRepository(db),
		Payments:   NewPaymentRepository(db),
		Reviews:    NewReviewRepository(db),
	}
}

// checkID rejects ids that are not UUIDs, the SQL backend's id format.
func checkID(id model.ID) error {
	if _, err := id.UUID(); err != nil {
		return apperrors.ErrInvalidID
	}
	return nil
}

// translate maps GORM sentinel errors onto the backend-neutral ones. The DB
// must be opened with TranslateError so driver duplicate-key errors surface
// as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicate
	default:
		return err
	}
}

func updateResult(tx *gorm.DB) (UpdateResult, error) {
	if tx.Error != nil {
		return UpdateResult{}, tx.Error
	}
	// db.NewMySQL turns on clientFoundRows, so this counts matched rows.
	return UpdateResult{Matched: tx.RowsAffected, Modified: tx.RowsAffected}, nil
}
