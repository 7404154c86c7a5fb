package repository

import (
	"context"

	"sales-tracker/internal/domain"
)

// Every query against the four tenant entity kinds takes the owner id as a
// mandatory parameter. A row outside the owner filter is reported as
// domain.ErrNotFound, indistinguishable from a row that never existed.

// CustomerRepository exposes persistence operations for Customer rows.
type CustomerRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, customer *domain.Customer) (int64, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Customer, error)
	List(ctx context.Context, ownerID int64) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// ContactRepository exposes persistence operations for Contact rows.
// List optionally restricts to one customer reference.
type ContactRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, contact *domain.Contact) (int64, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Contact, error)
	List(ctx context.Context, ownerID int64, customerID *int64) ([]domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// DealRepository exposes persistence operations for Deal rows.
type DealRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, deal *domain.Deal) (int64, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Deal, error)
	List(ctx context.Context, ownerID int64) ([]domain.Deal, error)
	Update(ctx context.Context, deal *domain.Deal) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// ActivityRepository exposes persistence operations for Activity rows.
// List optionally restricts to one customer and/or deal reference.
type ActivityRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, activity *domain.Activity) (int64, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Activity, error)
	List(ctx context.Context, ownerID int64, customerID, dealID *int64) ([]domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id, ownerID int64) error
}
