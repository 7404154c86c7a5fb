package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sales-tracker/internal/domain"
)

type createDealRequest struct {
	Title             string           `json:"title" binding:"required"`
	Value             *decimal.Decimal `json:"value" binding:"required"`
	Stage             *string          `json:"stage"`
	Probability       *int             `json:"probability"`
	ExpectedCloseDate *string          `json:"expected_close_date"`
	CustomerID        int64            `json:"customer_id" binding:"required"`
}

type updateDealRequest struct {
	Title             *string          `json:"title"`
	Value             *decimal.Decimal `json:"value"`
	Stage             *string          `json:"stage"`
	Probability       *int             `json:"probability"`
	ExpectedCloseDate *string          `json:"expected_close_date"`
}

type DealResponse struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Stage             string          `json:"stage"`
	Probability       int             `json:"probability"`
	ExpectedCloseDate *string         `json:"expected_close_date"`
	CustomerID        int64           `json:"customer_id"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

func (h *Handler) listDeals(c *gin.Context) {
	deals, err := h.deals.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]DealResponse, len(deals))
	for i := range deals {
		resp[i] = dealToResponse(deals[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createDeal(c *gin.Context) {
	var req createDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.deals.Create(c.Request.Context(), ownerID(c), domain.DealCreate{
		Title:             req.Title,
		Value:             *req.Value,
		Stage:             req.Stage,
		Probability:       req.Probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
		CustomerID:        req.CustomerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dealToResponse(*deal))
}

func (h *Handler) updateDeal(c *gin.Context) {
	id, ok := pathID(c, "deal")
	if !ok {
		return
	}

	var req updateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.deals.Update(c.Request.Context(), ownerID(c), id, domain.DealUpdate{
		Title:             req.Title,
		Value:             req.Value,
		Stage:             req.Stage,
		Probability:       req.Probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dealToResponse(*deal))
}

func (h *Handler) deleteDeal(c *gin.Context) {
	id, ok := pathID(c, "deal")
	if !ok {
		return
	}

	if err := h.deals.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func dealToResponse(deal domain.Deal) DealResponse {
	resp := DealResponse{
		ID:          deal.ID,
		Title:       deal.Title,
		Value:       deal.Value,
		Stage:       deal.Stage,
		Probability: deal.Probability,
		CustomerID:  deal.CustomerID,
		CreatedAt:   formatTime(deal.CreatedAt),
		UpdatedAt:   formatTime(deal.UpdatedAt),
	}
	if deal.ExpectedCloseDate != nil {
		v := deal.ExpectedCloseDate.Format(domain.DateLayout)
		resp.ExpectedCloseDate = &v
	}
	return resp
}
