package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"sportszone/internal/model"
	"sportszone/internal/repository"
)

type selectionRepository struct {
	coll *mongo.Collection
}

// NewSelectionRepository builds a Mongo-backed selected-class repository.
func NewSelectionRepository(db *mongo.Database) repository.SelectionRepository {
	return &selectionRepository{coll: db.Collection(SelectedCollection)}
}

func (r *selectionRepository) Create(ctx context.Context, selection *model.SelectedClass) error {
	if selection.ID.IsZero() {
		selection.ID = model.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, selection)
	return translate(err)
}

func (r *selectionRepository) Exists(ctx context.Context, studentEmail, classID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"studentEmail": studentEmail, "classId": classID})
	return n > 0, err
}

func (r *selectionRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.SelectedClass, error) {
	cur, err := r.coll.Find(ctx, bson.M{"studentEmail": studentEmail}, newestFirst())
	if err != nil {
		return nil, err
	}
	selections := []model.SelectedClass{}
	if err := cur.All(ctx, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *selectionRepository) DeleteByClass(ctx context.Context, classID, studentEmail string) (int64, error) {
	filter := bson.M{"classId": classID}
	if studentEmail != "" {
		filter["studentEmail"] = studentEmail
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
