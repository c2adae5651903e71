package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

const customerCollection = "customers"

// MongoCustomerRepository is the customer credential store. The address is
// embedded in the customer document, so registration persists both in a
// single atomic insert.
type MongoCustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *MongoCustomerRepository {
	return &MongoCustomerRepository{coll: db.Collection(customerCollection)}
}

type mongoAddress struct {
	Address1 string `bson:"street_addr_1"`
	Address2 string `bson:"street_addr_2,omitempty"`
	City     string `bson:"city"`
	State    string `bson:"state"`
	Zip      string `bson:"zip_code"`
}

type mongoCustomer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	PhoneNumber  string             `bson:"phone_number,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Address      *mongoAddress      `bson:"address,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// EnsureIndexes creates the unique email index. Duplicate registrations that
// race past the service-level pre-check fail here with a duplicate-key error.
func (r *MongoCustomerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create customer email index: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	doc := mongoCustomer{
		Email:        customer.Email,
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		PhoneNumber:  customer.PhoneNumber,
		PasswordHash: customer.PasswordHash,
		CreatedAt:    customer.CreatedAt.Unix(),
		UpdatedAt:    customer.UpdatedAt.Unix(),
	}
	if customer.Address != nil {
		doc.Address = &mongoAddress{
			Address1: customer.Address.Address1,
			Address2: customer.Address.Address2,
			City:     customer.Address.City,
			State:    customer.Address.State,
			Zip:      customer.Address.Zip,
		}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert customer: unexpected inserted id type %T", res.InsertedID)
	}

	created := *customer
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var mc mongoCustomer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	customer := &domain.Customer{
		ID:           mc.ID.Hex(),
		Email:        mc.Email,
		FirstName:    mc.FirstName,
		LastName:     mc.LastName,
		PhoneNumber:  mc.PhoneNumber,
		PasswordHash: mc.PasswordHash,
		CreatedAt:    unixToTime(mc.CreatedAt),
		UpdatedAt:    unixToTime(mc.UpdatedAt),
	}
	if mc.Address != nil {
		customer.Address = &domain.Address{
			Address1: mc.Address.Address1,
			Address2: mc.Address.Address2,
			City:     mc.Address.City,
			State:    mc.Address.State,
			Zip:      mc.Address.Zip,
		}
	}
	return customer, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
