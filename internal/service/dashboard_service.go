package service

import (
	"context"

	"github.com/shopspring/decimal"

	"sales-tracker/internal/domain"
	"sales-tracker/internal/repository"
)

// DashboardService computes aggregate statistics over one owner's
// customers and deals. Snapshots are always computed fresh; nothing is
// cached.
type DashboardService interface {
	Stats(ctx context.Context, ownerID int64) (*domain.DashboardStats, error)
}

type dashboardService struct {
	customers repository.CustomerRepository
	deals     repository.DealRepository
}

func NewDashboardService(customers repository.CustomerRepository, deals repository.DealRepository) DashboardService {
	return &dashboardService{
		customers: customers,
		deals:     deals,
	}
}

func (s *dashboardService) Stats(ctx context.Context, ownerID int64) (*domain.DashboardStats, error) {
	customers, err := s.customers.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	deals, err := s.deals.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalCustomers: len(customers),
		TotalDeals:     len(deals),
		TotalDealValue: decimal.Zero,
		DealsByStage:   []domain.StageStats{},
	}
	for _, customer := range customers {
		if customer.Status == domain.DefaultCustomerStatus {
			stats.ActiveCustomers++
		}
	}

	// one pass over the deals; stages appear in first-seen order
	stageIndex := make(map[string]int)
	for _, deal := range deals {
		stats.TotalDealValue = stats.TotalDealValue.Add(deal.Value)
		idx, ok := stageIndex[deal.Stage]
		if !ok {
			idx = len(stats.DealsByStage)
			stageIndex[deal.Stage] = idx
			stats.DealsByStage = append(stats.DealsByStage, domain.StageStats{
				Stage: deal.Stage,
				Value: decimal.Zero,
			})
		}
		stats.DealsByStage[idx].Count++
		stats.DealsByStage[idx].Value = stats.DealsByStage[idx].Value.Add(deal.Value)
	}

	return stats, nil
}
