package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

type paymentRepository struct {
	payments *mongo.Collection
	classes  *mongo.Collection
}

// NewPaymentRepository builds a Mongo-backed payment repository.
func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{
		payments: db.Collection(PaymentsCollection),
		classes:  db.Collection(ClassesCollection),
	}
}

func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *paymentRepository) ListByStudent(ctx context.Context, studentEmail string) ([]model.Payment, error) {
	return r.find(ctx, bson.M{"studentEmail": studentEmail})
}

func (r *paymentRepository) find(ctx context.Context, filter bson.M) ([]model.Payment, error) {
	cur, err := r.payments.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	payments := []model.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Enroll takes a seat with a single conditional $inc, which Mongo applies
// atomically per document, then inserts the payment. If the insert fails the
// seat is handed back with a compensating $inc. The unique index on
// (studentEmail, classId) catches duplicate payments that race past the
// pre-check, and the partial unique index on transactionId catches a
// transaction replayed for another class.
func (r *paymentRepository) Enroll(ctx context.Context, payment *model.Payment) (*model.Class, error) {
	oid, err := objectID(model.ID(payment.ClassID))
	if err != nil {
		return nil, err
	}

	paid, err := r.payments.CountDocuments(ctx, bson.M{
		"studentEmail": payment.StudentEmail,
		"classId":      payment.ClassID,
	})
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}
	if paid > 0 {
		return nil, apperrors.ErrAlreadyEnrolled
	}
	if payment.TransactionID != "" {
		used, err := r.payments.CountDocuments(ctx, bson.M{"transactionId": payment.TransactionID})
		if err != nil {
			return nil, fmt.Errorf("count transactions: %w", err)
		}
		if used > 0 {
			return nil, apperrors.ErrPaymentReused
		}
	}

	var class model.Class
	err = r.classes.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "availableSeats": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"availableSeats": -1, "totalEnrolled": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		exists, countErr := r.classes.CountDocuments(ctx, bson.M{"_id": oid})
		if countErr != nil {
			return nil, fmt.Errorf("count classes: %w", countErr)
		}
		if exists == 0 {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.ErrNoSeatsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("take seat: %w", err)
	}

	if payment.ID.IsZero() {
		payment.ID = model.NewObjectID()
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

	if _, err := r.payments.InsertOne(ctx, payment); err != nil {
		// the request context may already be done; release the seat regardless
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if _, relErr := r.classes.UpdateOne(releaseCtx,
			bson.M{"_id": oid},
			bson.M{"$inc": bson.M{"availableSeats": 1, "totalEnrolled": -1}},
		); relErr != nil {
			return nil, fmt.Errorf("insert payment: %w (seat release failed: %v)", err, relErr)
		}
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "transactionId") {
				return nil, apperrors.ErrPaymentReused
			}
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	return &class, nil
}
