package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales-tracker/internal/domain"
)

type createCustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Industry *string `json:"industry"`
	Status   *string `json:"status"`
}

type updateCustomerRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Industry *string `json:"industry"`
	Status   *string `json:"status"`
}

// Optional fields are serialized as explicit null, never omitted.
type CustomerResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Industry  *string `json:"industry"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = customerToResponse(customers[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), ownerID(c), domain.CustomerCreate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Industry: req.Industry,
		Status:   req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customerToResponse(*customer))
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), ownerID(c), id, domain.CustomerUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Industry: req.Industry,
		Status:   req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customerToResponse(*customer))
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func customerToResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Company:   customer.Company,
		Industry:  customer.Industry,
		Status:    customer.Status,
		CreatedAt: formatTime(customer.CreatedAt),
		UpdatedAt: formatTime(customer.UpdatedAt),
	}
}
