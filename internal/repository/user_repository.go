package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"sportszone/internal/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id model.ID) (*model.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, role model.Role) ([]model.User, error) {
	users := []model.User{}
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id model.ID, role model.Role) (UpdateResult, error) {
	if err := checkID(id); err != nil {
		return UpdateResult{}, err
	}
	return updateResult(r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("role", role))
}

func (r *userRepository) Delete(ctx context.Context, id model.ID) (int64, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	return res.RowsAffected, res.Error
}
