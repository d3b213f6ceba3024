package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/banco-aurora-ledger/internal/api/service"
)

// TransferHandler handles HTTP requests for transfers between accounts
type TransferHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(logger *slog.Logger, accountService service.AccountService) *TransferHandler {
	return &TransferHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Create moves funds between two accounts and returns both updated snapshots
func (h *TransferHandler) Create(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	from, to, err := h.accountService.Transfer(c.Request.Context(), req.FromID, req.ToID, req.Amount, req.Note)
	if err != nil {
		h.logger.Warn("Failed to transfer", "from_id", req.FromID, "to_id", req.ToID, "error", err)
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, TransferResponse{From: from, To: to})
}
