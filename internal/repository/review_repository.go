package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sportszone/internal/model"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository over a JSON column table.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	var records []model.ReviewRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0, len(records))
	for _, rec := range records {
		reviews = append(reviews, rec.Review())
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review model.Review) error {
	body := make(datatypes.JSONMap, len(review))
	for k, v := range review {
		if k == "_id" {
			continue
		}
		body[k] = v
	}
	return translate(r.db.WithContext(ctx).Create(&model.ReviewRecord{Body: body}).Error)
}
