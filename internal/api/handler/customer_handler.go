package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/banco-aurora-ledger/internal/api/service"
	"github.com/banco-aurora-ledger/internal/domain/customer"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(logger *slog.Logger, customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Create handles registration of a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cust, err := h.customerService.CreateCustomer(c.Request.Context(), req.Name, req.DocumentID, req.Email)
	if err != nil {
		h.logger.Error("Failed to create customer", "error", err)
		RespondBadRequest(c, err.Error())
		return
	}

	RespondCreated(c, mapCustomerToResponse(cust))
}

// mapCustomerToResponse maps a customer record to its response DTO
func mapCustomerToResponse(cust customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         cust.ID,
		Name:       cust.Name,
		DocumentID: cust.DocumentID,
		Email:      cust.Email,
	}
}
