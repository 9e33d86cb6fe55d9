package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sportszone/internal/model"
	"sportszone/internal/repository"
)

type classRepository struct {
	coll *mongo.Collection
}

// NewClassRepository builds a Mongo-backed class repository.
func NewClassRepository(db *mongo.Database) repository.ClassRepository {
	return &classRepository{coll: db.Collection(ClassesCollection)}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	if class.ID.IsZero() {
		class.ID = model.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, class)
	return translate(err)
}

func (r *classRepository) FindByID(ctx context.Context, id model.ID) (*model.Class, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var class model.Class
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&class); err != nil {
		return nil, translate(err)
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context, q repository.ClassQuery) ([]model.Class, error) {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.InstructorEmail != "" {
		filter["instructorEmail"] = q.InstructorEmail
	}

	opts := options.Find()
	switch q.Sort {
	case repository.SortMostEnrolled:
		opts.SetSort(bson.D{{Key: "totalEnrolled", Value: -1}, {Key: "createdAt", Value: -1}})
	default:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	classes := []model.Class{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) UpdateDetails(ctx context.Context, id model.ID, instructorEmail string, details model.ClassDetails) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return updateResult(r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "instructorEmail": instructorEmail},
		bson.M{"$set": bson.M{
			"className":      details.ClassName,
			"classImage":     details.ClassImage,
			"availableSeats": details.AvailableSeats,
			"price":          details.Price,
		}},
	))
}

func (r *classRepository) UpdateStatus(ctx context.Context, id model.ID, status model.ClassStatus) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return updateResult(r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}}))
}

func (r *classRepository) UpdateFeedback(ctx context.Context, id model.ID, feedback string) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return updateResult(r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"feedback": feedback}}))
}

func (r *classRepository) EnrollmentByInstructor(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": model.ClassStatusApproved}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$instructorEmail",
			"total": bson.M{"$sum": "$totalEnrolled"},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Email string `bson:"_id"`
		Total int64  `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.Email] = row.Total
	}
	return totals, nil
}
