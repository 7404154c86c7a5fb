package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDealStage is applied when a deal is created without an explicit
// stage. Stage is free text, not an enumeration.
const DefaultDealStage = "prospecting"

// DateLayout is the wire format for calendar dates (expected close dates).
// No time component, no timezone; round-trips byte for byte.
const DateLayout = "2006-01-02"

// Deal is a sales opportunity against one customer of the same owner.
// Value is a decimal so monetary sums never pick up binary-float drift.
type Deal struct {
	ID                int64
	Title             string
	Value             decimal.Decimal
	Stage             string
	Probability       int
	ExpectedCloseDate *time.Time
	CustomerID        int64
	OwnerID           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DealCreate carries the fields accepted when creating a deal. Dates arrive
// as wire strings and are parsed against DateLayout by the service.
type DealCreate struct {
	Title             string
	Value             decimal.Decimal
	Stage             *string
	Probability       *int
	ExpectedCloseDate *string
	CustomerID        int64
}

// DealUpdate carries a partial update; nil fields are left unchanged.
// A deal cannot be rebound to another customer.
type DealUpdate struct {
	Title             *string
	Value             *decimal.Decimal
	Stage             *string
	Probability       *int
	ExpectedCloseDate *string
}
