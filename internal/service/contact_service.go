package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// ContactService coordinates contact operations for one owner at a time.
type ContactService interface {
	Create(ctx context.Context, ownerID int64, in domain.ContactCreate) (*domain.Contact, error)
	List(ctx context.Context, ownerID int64, customerID *int64) ([]domain.Contact, error)
	Update(ctx context.Context, ownerID, id int64, in domain.ContactUpdate) (*domain.Contact, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type contactService struct {
	contacts  repository.ContactRepository
	customers repository.CustomerRepository
	integrity *IntegrityChecker
}

func NewContactService(contacts repository.ContactRepository, customers repository.CustomerRepository, integrity *IntegrityChecker) ContactService {
	return &contactService{
		contacts:  contacts,
		customers: customers,
		integrity: integrity,
	}
}

func (s *contactService) Create(ctx context.Context, ownerID int64, in domain.ContactCreate) (*domain.Contact, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, fmt.Errorf("%w: first_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, fmt.Errorf("%w: last_name is required", domain.ErrValidation)
	}
	if in.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}

	if err := s.integrity.CheckCustomer(ctx, ownerID, in.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contact := &domain.Contact{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Position:   in.Position,
		CustomerID: in.CustomerID,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context, ownerID int64, customerID *int64) ([]domain.Contact, error) {
	return s.contacts.List(ctx, ownerID, customerID)
}

func (s *contactService) Update(ctx context.Context, ownerID, id int64, in domain.ContactUpdate) (*domain.Contact, error) {
	contact, err := s.contacts.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		contact.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		contact.LastName = *in.LastName
	}
	if in.Email != nil {
		contact.Email = in.Email
	}
	if in.Phone != nil {
		contact.Phone = in.Phone
	}
	if in.Position != nil {
		contact.Position = in.Position
	}
	contact.UpdatedAt = time.Now().UTC()

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.contacts.Delete(ctx, id, ownerID)
}
