package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banco-aurora-ledger/internal/api/service"
	"github.com/banco-aurora-ledger/internal/export"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Create handles opening a new account for a customer
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	snap, err := h.accountService.OpenAccount(c.Request.Context(), req.OwnerID, req.Kind, req.Currency, req.Balance, req.Options()...)
	if err != nil {
		h.logger.Error("Failed to open account", "owner_id", req.OwnerID, "kind", req.Kind, "error", err)
		RespondDomainError(c, err)
		return
	}

	RespondCreated(c, snap)
}

// GetByID retrieves an account snapshot by its ID, returning 404 if not found
func (h *AccountHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	snap, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("Failed to get account", "id", id, "error", err)
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, snap)
}

// Deposit credits an account and returns the updated snapshot
func (h *AccountHandler) Deposit(c *gin.Context) {
	id := c.Param("id")

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	snap, err := h.accountService.Deposit(c.Request.Context(), id, req.Amount, req.Note)
	if err != nil {
		h.logger.Warn("Failed to deposit", "id", id, "error", err)
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, snap)
}

// Withdraw debits an account and returns the updated snapshot
func (h *AccountHandler) Withdraw(c *gin.Context) {
	id := c.Param("id")

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	snap, err := h.accountService.Withdraw(c.Request.Context(), id, req.Amount, req.Note)
	if err != nil {
		h.logger.Warn("Failed to withdraw", "id", id, "error", err)
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, snap)
}

// ExportLedger streams an account's ledger as a CSV attachment
func (h *AccountHandler) ExportLedger(c *gin.Context) {
	id := c.Param("id")

	snap, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("Failed to get account for export", "id", id, "error", err)
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_ledger.csv", snap.ID))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	if err := export.WriteLedgerCSV(c.Writer, snap); err != nil {
		h.logger.Error("Failed to write ledger CSV", "id", id, "error", err)
	}
}
