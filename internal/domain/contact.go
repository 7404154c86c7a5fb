package domain

import "time"

// Contact is a person attached to exactly one customer of the same owner.
type Contact struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      *string
	Phone      *string
	Position   *string
	CustomerID int64
	OwnerID    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContactCreate carries the fields accepted when creating a contact.
type ContactCreate struct {
	FirstName  string
	LastName   string
	Email      *string
	Phone      *string
	Position   *string
	CustomerID int64
}

// ContactUpdate carries a partial update; nil fields are left unchanged.
// A contact cannot be rebound to another customer.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Position  *string
}
