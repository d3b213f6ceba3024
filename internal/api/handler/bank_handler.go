package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banco-aurora-ledger/internal/api/service"
)

// BankHandler handles bank-wide operations: end-of-day settlement and
// snapshot dump/load.
type BankHandler struct {
	ledgerService service.LedgerService
	logger        *slog.Logger
}

// NewBankHandler creates a new bank handler
func NewBankHandler(logger *slog.Logger, ledgerService service.LedgerService) *BankHandler {
	return &BankHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// EndOfDay runs the daily settlement over every account
func (h *BankHandler) EndOfDay(c *gin.Context) {
	if err := h.ledgerService.RunEndOfDay(c.Request.Context()); err != nil {
		h.logger.Error("End-of-day settlement failed", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, gin.H{"status": "ok"})
}

// DumpSnapshot returns the full bank state as raw JSON
func (h *BankHandler) DumpSnapshot(c *gin.Context) {
	data, err := h.ledgerService.DumpSnapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to dump snapshot", "error", err)
		RespondInternalError(c)
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

// LoadSnapshot replaces the bank state with the posted snapshot JSON
func (h *BankHandler) LoadSnapshot(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read snapshot body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.ledgerService.LoadSnapshot(c.Request.Context(), data); err != nil {
		h.logger.Error("Failed to load snapshot", "error", err)
		RespondBadRequest(c, err.Error())
		return
	}

	RespondOK(c, gin.H{"status": "loaded"})
}
