package ports

import (
	"context"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

// CustomerStore is the credential store for customer accounts. Email is the
// sole lookup key and is unique per store.
type CustomerStore interface {
	// FindByEmail returns domain.ErrCustomerNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	// Create persists the customer together with its address as one unit and
	// returns the stored record with its assigned ID. Returns
	// domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// WorkerStore is the credential store for employee accounts. Workers are
// provisioned out of band; this core only reads them.
type WorkerStore interface {
	// FindByEmail returns domain.ErrWorkerNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Worker, error)
}
