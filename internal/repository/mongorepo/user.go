package mongorepo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"sportszone/internal/model"
	"sportszone/internal/repository"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed user repository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = model.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, user)
	return translate(err)
}

func (r *userRepository) FindByID(ctx context.Context, id model.ID) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.TrimSpace(email)}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, role model.Role) ([]model.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	cur, err := r.coll.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id model.ID, role model.Role) (repository.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return updateResult(r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}}))
}

func (r *userRepository) Delete(ctx context.Context, id model.ID) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
