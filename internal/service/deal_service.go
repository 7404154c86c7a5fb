package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// DealService coordinates deal operations for one owner at a time.
type DealService interface {
	Create(ctx context.Context, ownerID int64, in domain.DealCreate) (*domain.Deal, error)
	List(ctx context.Context, ownerID int64) ([]domain.Deal, error)
	Update(ctx context.Context, ownerID, id int64, in domain.DealUpdate) (*domain.Deal, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type dealService struct {
	deals     repository.DealRepository
	integrity *IntegrityChecker
}

func NewDealService(deals repository.DealRepository, integrity *IntegrityChecker) DealService {
	return &dealService{
		deals:     deals,
		integrity: integrity,
	}
}

func (s *dealService) Create(ctx context.Context, ownerID int64, in domain.DealCreate) (*domain.Deal, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}

	if err := s.integrity.CheckCustomer(ctx, ownerID, in.CustomerID); err != nil {
		return nil, err
	}

	stage := domain.DefaultDealStage
	if in.Stage != nil {
		stage = *in.Stage
	}
	probability := 0
	if in.Probability != nil {
		probability = *in.Probability
	}

	var closeDate *time.Time
	if in.ExpectedCloseDate != nil && *in.ExpectedCloseDate != "" {
		t, err := parseCloseDate(*in.ExpectedCloseDate)
		if err != nil {
			return nil, err
		}
		closeDate = &t
	}

	now := time.Now().UTC()
	deal := &domain.Deal{
		Title:             in.Title,
		Value:             in.Value,
		Stage:             stage,
		Probability:       probability,
		ExpectedCloseDate: closeDate,
		CustomerID:        in.CustomerID,
		OwnerID:           ownerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := s.deals.Create(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) List(ctx context.Context, ownerID int64) ([]domain.Deal, error) {
	return s.deals.List(ctx, ownerID)
}

func (s *dealService) Update(ctx context.Context, ownerID, id int64, in domain.DealUpdate) (*domain.Deal, error) {
	deal, err := s.deals.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		deal.Title = *in.Title
	}
	if in.Value != nil {
		deal.Value = *in.Value
	}
	if in.Stage != nil {
		deal.Stage = *in.Stage
	}
	if in.Probability != nil {
		deal.Probability = *in.Probability
	}
	if in.ExpectedCloseDate != nil && *in.ExpectedCloseDate != "" {
		t, err := parseCloseDate(*in.ExpectedCloseDate)
		if err != nil {
			return nil, err
		}
		deal.ExpectedCloseDate = &t
	}
	deal.UpdatedAt = time.Now().UTC()

	if err := s.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.deals.Delete(ctx, id, ownerID)
}
