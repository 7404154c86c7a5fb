package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// CustomerService coordinates customer operations for one owner at a time.
type CustomerService interface {
	Create(ctx context.Context, ownerID int64, in domain.CustomerCreate) (*domain.Customer, error)
	List(ctx context.Context, ownerID int64) ([]domain.Customer, error)
	Update(ctx context.Context, ownerID, id int64, in domain.CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(ctx context.Context, ownerID int64, in domain.CustomerCreate) (*domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	status := domain.DefaultCustomerStatus
	if in.Status != nil {
		status = *in.Status
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Industry:  in.Industry,
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context, ownerID int64) ([]domain.Customer, error) {
	return s.customers.List(ctx, ownerID)
}

func (s *customerService) Update(ctx context.Context, ownerID, id int64, in domain.CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.customers.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = in.Email
	}
	if in.Phone != nil {
		customer.Phone = in.Phone
	}
	if in.Company != nil {
		customer.Company = in.Company
	}
	if in.Industry != nil {
		customer.Industry = in.Industry
	}
	if in.Status != nil {
		customer.Status = *in.Status
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes the customer but never cascades: contacts, deals and
// activities referencing it keep their reference values.
func (s *customerService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.customers.Delete(ctx, id, ownerID)
}
