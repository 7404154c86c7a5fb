package domain

import "time"

// DefaultCustomerStatus is applied when a customer is created without an
// explicit status. Status is free text, not an enumeration.
const DefaultCustomerStatus = "active"

// Customer is a company or person tracked in the pipeline. Every customer
// belongs to exactly one owner; callers outside that owner never see it.
type Customer struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Company   *string
	Industry  *string
	Status    string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerCreate carries the fields accepted when creating a customer.
type CustomerCreate struct {
	Name     string
	Email    *string
	Phone    *string
	Company  *string
	Industry *string
	Status   *string
}

// CustomerUpdate carries a partial update; nil fields are left unchanged.
type CustomerUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Company  *string
	Industry *string
	Status   *string
}
