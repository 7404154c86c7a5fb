package domain

import "github.com/shopspring/decimal"

// StageStats aggregates the deals sharing one stage value.
type StageStats struct {
	Stage string
	Count int
	Value decimal.Decimal
}

// DashboardStats is a fresh snapshot over one owner's customers and deals.
type DashboardStats struct {
	TotalCustomers  int
	ActiveCustomers int
	TotalDeals      int
	TotalDealValue  decimal.Decimal
	DealsByStage    []StageStats
}
