package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sales-tracker/internal/auth"
	"sales-tracker/internal/domain"
	"sales-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	customers  service.CustomerService
	contacts   service.ContactService
	deals      service.DealService
	activities service.ActivityService
	dashboard  service.DashboardService
	tokens     *auth.TokenManager
}

func NewHandler(
	users service.UserService,
	customers service.CustomerService,
	contacts service.ContactService,
	deals service.DealService,
	activities service.ActivityService,
	dashboard service.DashboardService,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		users:      users,
		customers:  customers,
		contacts:   contacts,
		deals:      deals,
		activities: activities,
		dashboard:  dashboard,
		tokens:     tokens,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)

		protected := api.Group("", h.requireAuth())
		{
			protected.GET("/customers", h.listCustomers)
			protected.POST("/customers", h.createCustomer)
			protected.PUT("/customers/:id", h.updateCustomer)
			protected.DELETE("/customers/:id", h.deleteCustomer)

			protected.GET("/contacts", h.listContacts)
			protected.POST("/contacts", h.createContact)
			protected.PUT("/contacts/:id", h.updateContact)
			protected.DELETE("/contacts/:id", h.deleteContact)

			protected.GET("/deals", h.listDeals)
			protected.POST("/deals", h.createDeal)
			protected.PUT("/deals/:id", h.updateDeal)
			protected.DELETE("/deals/:id", h.deleteDeal)

			protected.GET("/activities", h.listActivities)
			protected.POST("/activities", h.createActivity)
			protected.PUT("/activities/:id", h.updateActivity)
			protected.DELETE("/activities/:id", h.deleteActivity)

			protected.GET("/dashboard/stats", h.dashboardStats)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// respondError maps the domain error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " id"})
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter " + name})
		return nil, false
	}
	return &id, true
}
