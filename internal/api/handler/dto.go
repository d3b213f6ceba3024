package handler

import (
	"github.com/shopspring/decimal"

	"github.com/banco-aurora-ledger/internal/domain/account"
)

// CreateCustomerRequest represents a request to register a new customer
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	DocumentID string `json:"document_id" binding:"required"`
	Email      string `json:"email"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
	Email      string `json:"email,omitempty"`
}

// CreateAccountRequest represents a request to open a new account. The
// variant-specific fields are optional overrides; omitted ones keep the
// variant defaults.
type CreateAccountRequest struct {
	OwnerID  string          `json:"owner_id" binding:"required"`
	Kind     string          `json:"kind" binding:"required"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`

	MaintenanceFee     *decimal.Decimal `json:"maintenance_fee,omitempty"`
	MinimumBalance     *decimal.Decimal `json:"minimum_balance,omitempty"`
	DailyInterestRate  *decimal.Decimal `json:"daily_interest_rate,omitempty"`
	RiskLevel          *int             `json:"risk_level,omitempty" binding:"omitempty,min=1,max=5"`
	ManagementFeeDaily *decimal.Decimal `json:"management_fee_daily,omitempty"`
}

// Options converts the request's variant overrides to account options
func (r *CreateAccountRequest) Options() []account.Option {
	var opts []account.Option
	if r.MaintenanceFee != nil {
		opts = append(opts, account.WithMaintenanceFee(*r.MaintenanceFee))
	}
	if r.MinimumBalance != nil {
		opts = append(opts, account.WithMinimumBalance(*r.MinimumBalance))
	}
	if r.DailyInterestRate != nil {
		opts = append(opts, account.WithDailyInterestRate(*r.DailyInterestRate))
	}
	if r.RiskLevel != nil {
		opts = append(opts, account.WithRiskLevel(*r.RiskLevel))
	}
	if r.ManagementFeeDaily != nil {
		opts = append(opts, account.WithManagementFeeDaily(*r.ManagementFeeDaily))
	}
	return opts
}

// AmountRequest represents a deposit or withdrawal on one account
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// TransferRequest represents a transfer between two accounts
type TransferRequest struct {
	FromID string          `json:"from_id" binding:"required"`
	ToID   string          `json:"to_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// TransferResponse carries both updated account snapshots after a transfer
type TransferResponse struct {
	From account.Snapshot `json:"from"`
	To   account.Snapshot `json:"to"`
}
