package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sales-tracker/internal/domain"
)

type StageStatsResponse struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type DashboardStatsResponse struct {
	TotalCustomers  int                  `json:"total_customers"`
	ActiveCustomers int                  `json:"active_customers"`
	TotalDeals      int                  `json:"total_deals"`
	TotalDealValue  decimal.Decimal      `json:"total_deal_value"`
	DealsByStage    []StageStatsResponse `json:"deals_by_stage"`
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statsToResponse(stats))
}

func statsToResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	resp := DashboardStatsResponse{
		TotalCustomers:  stats.TotalCustomers,
		ActiveCustomers: stats.ActiveCustomers,
		TotalDeals:      stats.TotalDeals,
		TotalDealValue:  stats.TotalDealValue,
		DealsByStage:    make([]StageStatsResponse, len(stats.DealsByStage)),
	}
	for i := range stats.DealsByStage {
		resp.DealsByStage[i] = StageStatsResponse{
			Stage: stats.DealsByStage[i].Stage,
			Count: stats.DealsByStage[i].Count,
			Value: stats.DealsByStage[i].Value,
		}
	}
	return resp
}
