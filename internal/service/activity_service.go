package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// ActivityService coordinates activity operations for one owner at a time.
type ActivityService interface {
	Create(ctx context.Context, ownerID int64, in domain.ActivityCreate) (*domain.Activity, error)
	List(ctx context.Context, ownerID int64, customerID, dealID *int64) ([]domain.Activity, error)
	Update(ctx context.Context, ownerID, id int64, in domain.ActivityUpdate) (*domain.Activity, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type activityService struct {
	activities repository.ActivityRepository
	integrity  *IntegrityChecker
}

func NewActivityService(activities repository.ActivityRepository, integrity *IntegrityChecker) ActivityService {
	return &activityService{
		activities: activities,
		integrity:  integrity,
	}
}

func (s *activityService) Create(ctx context.Context, ownerID int64, in domain.ActivityCreate) (*domain.Activity, error) {
	if strings.TrimSpace(in.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}

	if in.CustomerID != nil {
		if err := s.integrity.CheckCustomer(ctx, ownerID, *in.CustomerID); err != nil {
			return nil, err
		}
	}
	if in.DealID != nil {
		if err := s.integrity.CheckDeal(ctx, ownerID, *in.DealID); err != nil {
			return nil, err
		}
	}

	var dueDate *time.Time
	if in.DueDate != nil && *in.DueDate != "" {
		t, err := parseDueDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &t
	}

	completed := false
	if in.Completed != nil {
		completed = *in.Completed
	}

	now := time.Now().UTC()
	activity := &domain.Activity{
		Type:        in.Type,
		Subject:     in.Subject,
		Description: in.Description,
		DueDate:     dueDate,
		Completed:   completed,
		CustomerID:  in.CustomerID,
		DealID:      in.DealID,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) List(ctx context.Context, ownerID int64, customerID, dealID *int64) ([]domain.Activity, error) {
	return s.activities.List(ctx, ownerID, customerID, dealID)
}

func (s *activityService) Update(ctx context.Context, ownerID, id int64, in domain.ActivityUpdate) (*domain.Activity, error) {
	activity, err := s.activities.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Type != nil {
		activity.Type = *in.Type
	}
	if in.Subject != nil {
		activity.Subject = *in.Subject
	}
	if in.Description != nil {
		activity.Description = in.Description
	}
	if in.DueDate != nil && *in.DueDate != "" {
		t, err := parseDueDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		activity.DueDate = &t
	}
	if in.Completed != nil {
		activity.Completed = *in.Completed
	}
	activity.UpdatedAt = time.Now().UTC()

	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.activities.Delete(ctx, id, ownerID)
}
