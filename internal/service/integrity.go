package service

import (
	"context"
	"errors"
	"fmt"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// IntegrityChecker verifies that foreign references written by one owner
// resolve to records of that same owner. A reference to a record owned by
// another user fails the same way a nonexistent one does. With enforce off
// it reproduces the legacy unchecked behavior.
type IntegrityChecker struct {
	customers repository.CustomerRepository
	deals     repository.DealRepository
	enforce   bool
}

func NewIntegrityChecker(customers repository.CustomerRepository, deals repository.DealRepository, enforce bool) *IntegrityChecker {
	return &IntegrityChecker{
		customers: customers,
		deals:     deals,
		enforce:   enforce,
	}
}

// CheckCustomer fails unless customerID resolves under (id, owner).
func (c *IntegrityChecker) CheckCustomer(ctx context.Context, ownerID, customerID int64) error {
	if !c.enforce {
		return nil
	}
	if _, err := c.customers.Get(ctx, customerID, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: referenced customer not found", domain.ErrValidation)
		}
		return err
	}
	return nil
}

// CheckDeal fails unless dealID resolves under (id, owner).
func (c *IntegrityChecker) CheckDeal(ctx context.Context, ownerID, dealID int64) error {
	if !c.enforce {
		return nil
	}
	if _, err := c.deals.Get(ctx, dealID, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: referenced deal not found", domain.ErrValidation)
		}
		return err
	}
	return nil
}
