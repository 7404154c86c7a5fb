package domain

import "time"

// Activity records an interaction (call, email, meeting, note — free text,
// not enforced) optionally linked to a customer and/or a deal of the same
// owner.
type Activity struct {
	ID          int64
	Type        string
	Subject     string
	Description *string
	DueDate     *time.Time
	Completed   bool
	CustomerID  *int64
	DealID      *int64
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityCreate carries the fields accepted when creating an activity.
// DueDate arrives as a wire string and is parsed by the service.
type ActivityCreate struct {
	Type        string
	Subject     string
	Description *string
	DueDate     *string
	Completed   *bool
	CustomerID  *int64
	DealID      *int64
}

// ActivityUpdate carries a partial update; nil fields are left unchanged.
// The customer/deal links cannot be rebound.
type ActivityUpdate struct {
	Type        *string
	Subject     *string
	Description *string
	DueDate     *string
	Completed   *bool
}
