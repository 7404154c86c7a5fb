package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales-tracker/internal/domain"
)

type createContactRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	CustomerID int64   `json:"customer_id" binding:"required"`
}

type updateContactRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Position  *string `json:"position"`
}

type ContactResponse struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	CustomerID int64   `json:"customer_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func (h *Handler) listContacts(c *gin.Context) {
	customerID, ok := queryID(c, "customer_id")
	if !ok {
		return
	}

	contacts, err := h.contacts.List(c.Request.Context(), ownerID(c), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ContactResponse, len(contacts))
	for i := range contacts {
		resp[i] = contactToResponse(contacts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contacts.Create(c.Request.Context(), ownerID(c), domain.ContactCreate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contactToResponse(*contact))
}

func (h *Handler) updateContact(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}

	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contacts.Update(c.Request.Context(), ownerID(c), id, domain.ContactUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contactToResponse(*contact))
}

func (h *Handler) deleteContact(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}

	if err := h.contacts.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func contactToResponse(contact domain.Contact) ContactResponse {
	return ContactResponse{
		ID:         contact.ID,
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Email:      contact.Email,
		Phone:      contact.Phone,
		Position:   contact.Position,
		CustomerID: contact.CustomerID,
		CreatedAt:  formatTime(contact.CreatedAt),
		UpdatedAt:  formatTime(contact.UpdatedAt),
	}
}
