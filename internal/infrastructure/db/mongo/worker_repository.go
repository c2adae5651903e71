package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

const workerCollection = "workers"

// MongoWorkerRepository is the employee credential store. Workers are
// provisioned by back-office tooling; this service only reads them.
type MongoWorkerRepository struct {
	coll *mongo.Collection
}

func NewWorkerRepository(db *mongo.Database) *MongoWorkerRepository {
	return &MongoWorkerRepository{coll: db.Collection(workerCollection)}
}

type mongoWorker struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoWorkerRepository) FindByEmail(ctx context.Context, email string) (*domain.Worker, error) {
	var mw mongoWorker
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("find worker: %w", err)
	}

	return &domain.Worker{
		ID:           mw.ID.Hex(),
		Email:        mw.Email,
		FirstName:    mw.FirstName,
		LastName:     mw.LastName,
		PasswordHash: mw.PasswordHash,
		Role:         mw.Role,
		CreatedAt:    unixToTime(mw.CreatedAt),
		UpdatedAt:    unixToTime(mw.UpdatedAt),
	}, nil
}
