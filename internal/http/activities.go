package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales-tracker/internal/domain"
)

type createActivityRequest struct {
	Type        string  `json:"type" binding:"required"`
	Subject     string  `json:"subject" binding:"required"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   *bool   `json:"completed"`
	CustomerID  *int64  `json:"customer_id"`
	DealID      *int64  `json:"deal_id"`
}

type updateActivityRequest struct {
	Type        *string `json:"type"`
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   *bool   `json:"completed"`
}

type ActivityResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Subject     string  `json:"subject"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
	CustomerID  *int64  `json:"customer_id"`
	DealID      *int64  `json:"deal_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (h *Handler) listActivities(c *gin.Context) {
	customerID, ok := queryID(c, "customer_id")
	if !ok {
		return
	}
	dealID, ok := queryID(c, "deal_id")
	if !ok {
		return
	}

	activities, err := h.activities.List(c.Request.Context(), ownerID(c), customerID, dealID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ActivityResponse, len(activities))
	for i := range activities {
		resp[i] = activityToResponse(activities[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activities.Create(c.Request.Context(), ownerID(c), domain.ActivityCreate{
		Type:        req.Type,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		CustomerID:  req.CustomerID,
		DealID:      req.DealID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activityToResponse(*activity))
}

func (h *Handler) updateActivity(c *gin.Context) {
	id, ok := pathID(c, "activity")
	if !ok {
		return
	}

	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activities.Update(c.Request.Context(), ownerID(c), id, domain.ActivityUpdate{
		Type:        req.Type,
		Subject:     req.Subject,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activityToResponse(*activity))
}

func (h *Handler) deleteActivity(c *gin.Context) {
	id, ok := pathID(c, "activity")
	if !ok {
		return
	}

	if err := h.activities.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func activityToResponse(activity domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID,
		Type:        activity.Type,
		Subject:     activity.Subject,
		Description: activity.Description,
		DueDate:     formatTimePtr(activity.DueDate),
		Completed:   activity.Completed,
		CustomerID:  activity.CustomerID,
		DealID:      activity.DealID,
		CreatedAt:   formatTime(activity.CreatedAt),
		UpdatedAt:   formatTime(activity.UpdatedAt),
	}
}
