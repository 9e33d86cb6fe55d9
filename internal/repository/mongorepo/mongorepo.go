// Package mongorepo implements the repository contracts on MongoDB.
package mongorepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// Collection names, shared with existing deployments of the platform.
const (
	UsersCollection    = "users"
	ClassesCollection  = "classes"
	SelectedCollection = "selectedClasses"
	PaymentsCollection = "payments"
	ReviewsCollection  = "reviews"
)

// EnsureIndexes creates the unique and sort indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		ClassesCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "totalEnrolled", Value: -1}}},
			{Keys: bson.D{{Key: "instructorEmail", Value: 1}}},
		},
		SelectedCollection: {
			{Keys: bson.D{{Key: "studentEmail", Value: 1}, {Key: "classId", Value: 1}}},
		},
		PaymentsCollection: {
			{Keys: bson.D{{Key: "studentEmail", Value: 1}, {Key: "classId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "instructorEmail", Value: 1}}},
			{
				Keys:    bson.D{{Key: "transactionId", Value: 1}},
				Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"transactionId": bson.M{"$gt": ""}}),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// NormalizeLegacy rewrites class counters stored as strings into longs so
// that seat filters and enrollment sorts see them as numbers. Values that do
// not parse are left as they are. It returns the number of classes changed.
func NormalizeLegacy(ctx context.Context, db *mongo.Database) (int64, error) {
	toLong := func(field string) bson.M {
		return bson.M{"$convert": bson.M{"input": "$" + field, "to": "long", "onError": "$" + field, "onNull": 0}}
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"availableSeats": bson.M{"$type": "string"}},
		bson.M{"totalEnrolled": bson.M{"$type": "string"}},
	}}
	update := mongo.Pipeline{{{Key: "$set", Value: bson.M{
		"availableSeats": toLong("availableSeats"),
		"totalEnrolled":  toLong("totalEnrolled"),
	}}}}

	res, err := db.Collection(ClassesCollection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("normalize class counters: %w", err)
	}
	return res.ModifiedCount, nil
}

// New builds all repositories over db.
func New(db *mongo.Database) *repository.Set {
	return &repository.Set{
		Users:      NewUserRepository(db),
		Classes:    NewClassRepository(db),
		Selections: NewSelectionRepository(db),
		Payments:   NewPaymentRepository(db),
		Reviews:    NewReviewRepository(db),
	}
}

func objectID(id model.ID) (primitive.ObjectID, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return oid, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return apperrors.ErrDuplicate
	default:
		return err
	}
}

func updateResult(res *mongo.UpdateResult, err error) (repository.UpdateResult, error) {
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
