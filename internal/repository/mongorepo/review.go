package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sportszone/internal/model"
	"sportszone/internal/repository"
)

type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository builds a Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(ReviewsCollection)}
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0, len(docs))
	for _, doc := range docs {
		review := make(model.Review, len(doc))
		for k, v := range doc {
			if oid, ok := v.(primitive.ObjectID); ok {
				v = oid.Hex()
			}
			review[k] = v
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review model.Review) error {
	doc := bson.M{}
	for k, v := range review {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return translate(err)
}
