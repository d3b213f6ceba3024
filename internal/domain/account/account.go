package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrNegativeAmount    = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidRiskLevel  = errors.New("risk level must be between 1 and 5")
)

// ErrCurrencyMismatch indicates a transfer between accounts of different currencies
type ErrCurrencyMismatch struct {
	From string
	To   string
}

func (e ErrCurrencyMismatch) Error() string {
	return "currency mismatch: " + e.From + " vs " + e.To
}

// Is implements the errors.Is interface for ErrCurrencyMismatch
func (e ErrCurrencyMismatch) Is(target error) bool {
	t, ok := target.(ErrCurrencyMismatch)
	if !ok {
		return false
	}
	// An empty target matches any currency pair
	if t.From == "" && t.To == "" {
		return true
	}
	return e.From == t.From && e.To == t.To
}

// ErrUnknownKind indicates an unrecognized account variant tag
type ErrUnknownKind struct {
	Kind string
}

func (e ErrUnknownKind) Error() string {
	return "unknown account type: " + e.Kind
}

// Kind identifies one of the closed set of account variants
type Kind string

const (
	KindChecking   Kind = "checking"
	KindSavings    Kind = "savings"
	KindInvestment Kind = "investment"
)

// ParseKind validates a variant tag coming from an adapter layer
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindChecking:
		return KindChecking, nil
	case KindSavings:
		return KindSavings, nil
	case KindInvestment:
		return KindInvestment, nil
	default:
		return "", ErrUnknownKind{Kind: s}
	}
}

// TypeTag is the variant name used in snapshots ("CheckingAccount", ...)
func (k Kind) TypeTag() string {
	switch k {
	case KindChecking:
		return "CheckingAccount"
	case KindSavings:
		return "SavingsAccount"
	case KindInvestment:
		return "InvestmentAccount"
	}
	return string(k)
}

// ParseTypeTag maps a snapshot variant name back to its Kind
func ParseTypeTag(tag string) (Kind, error) {
	return ParseKind(strings.TrimSuffix(strings.ToLower(tag), "account"))
}

// CheckingParams configures the checking variant's end-of-day rule
type CheckingParams struct {
	MaintenanceFee decimal.Decimal
	MinimumBalance decimal.Decimal
}

// SavingsParams configures the savings variant's end-of-day rule
type SavingsParams struct {
	DailyInterestRate decimal.Decimal
}

// InvestmentParams configures the investment variant's end-of-day rule
type InvestmentParams struct {
	RiskLevel          int
	ManagementFeeDaily decimal.Decimal
}

// Variant defaults, matching the published product terms
var (
	defaultChecking = CheckingParams{
		MaintenanceFee: decimal.RequireFromString("3.90"),
		MinimumBalance: decimal.NewFromInt(50),
	}
	defaultSavings = SavingsParams{
		DailyInterestRate: decimal.RequireFromString("0.0005"),
	}
	defaultInvestment = InvestmentParams{
		RiskLevel:          3,
		ManagementFeeDaily: decimal.RequireFromString("0.0001"),
	}

	yieldBase = decimal.RequireFromString("0.0003")
	yieldStep = decimal.RequireFromString("0.00015")

	hundred = decimal.NewFromInt(100)
)

// DefaultCurrency is applied when an adapter omits the currency code
const DefaultCurrency = "BRL"

// Option overrides a variant-specific parameter at construction time
type Option func(*Account)

func WithMaintenanceFee(fee decimal.Decimal) Option {
	return func(a *Account) { a.checking.MaintenanceFee = fee }
}

func WithMinimumBalance(min decimal.Decimal) Option {
	return func(a *Account) { a.checking.MinimumBalance = min }
}

func WithDailyInterestRate(rate decimal.Decimal) Option {
	return func(a *Account) { a.savings.DailyInterestRate = rate }
}

func WithRiskLevel(level int) Option {
	return func(a *Account) { a.investment.RiskLevel = level }
}

func WithManagementFeeDaily(fee decimal.Decimal) Option {
	return func(a *Account) { a.investment.ManagementFeeDaily = fee }
}

// Account is a bank account of one of three variants. The variant tag selects
// which parameter set and end-of-day rule apply. An Account owns its balance
// and an append-only ledger of entries; it is not safe for concurrent use and
// must be serialized by its owner (see bank.Bank).
type Account struct {
	ID       string
	OwnerID  string // weak reference to a customer, integrity not enforced
	Kind     Kind
	Currency string

	balance decimal.Decimal
	ledger  []Entry
	last    time.Time // timestamp of the newest ledger entry

	checking   CheckingParams
	savings    SavingsParams
	investment InvestmentParams
}

// New creates an account of the given variant with defaulted parameters,
// applying any variant-specific overrides.
func New(id, ownerID string, kind Kind, currency string, balance decimal.Decimal, opts ...Option) (*Account, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	a := &Account{
		ID:         id,
		OwnerID:    ownerID,
		Kind:       kind,
		Currency:   currency,
		balance:    balance,
		checking:   defaultChecking,
		savings:    defaultSavings,
		investment: defaultInvestment,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.investment.RiskLevel < 1 || a.investment.RiskLevel > 5 {
		return nil, ErrInvalidRiskLevel
	}
	return a, nil
}

// Balance returns the live balance at full internal precision
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Ledger returns a copy of the account's entries in chronological order
func (a *Account) Ledger() []Entry {
	out := make([]Entry, len(a.ledger))
	copy(out, a.ledger)
	return out
}

// Checking returns the checking variant parameters
func (a *Account) Checking() CheckingParams { return a.checking }

// Savings returns the savings variant parameters
func (a *Account) Savings() SavingsParams { return a.savings }

// Investment returns the investment variant parameters
func (a *Account) Investment() InvestmentParams { return a.investment }

// record appends a ledger entry for the current balance. Timestamps are
// assigned here and never decrease within one account.
func (a *Account) record(kind EntryKind, amount decimal.Decimal, note string) {
	now := time.Now().UTC()
	if now.Before(a.last) {
		now = a.last
	}
	a.last = now

	a.ledger = append(a.ledger, Entry{
		Kind:         kind,
		Amount:       amount.Round(2),
		BalanceAfter: a.balance.Round(2),
		Timestamp:    now,
		Note:         note,
	})
}

// Deposit increases the balance and records a "deposit" entry
func (a *Account) Deposit(amount decimal.Decimal, note string) error {
	if amount.Sign() <= 0 {
		return ErrNegativeAmount
	}
	a.balance = a.balance.Add(amount)
	if note == "" {
		note = "deposit"
	}
	a.record(EntryDeposit, amount, note)
	return nil
}

// Withdraw decreases the balance and records a "withdraw" entry. The balance
// is never driven negative: amounts above the available balance fail with
// ErrInsufficientFunds and leave the account untouched.
func (a *Account) Withdraw(amount decimal.Decimal, note string) error {
	if amount.Sign() <= 0 {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	if note == "" {
		note = "withdraw"
	}
	a.record(EntryWithdraw, amount, note)
	return nil
}

// TransferTo moves amount into other. The withdraw on the source runs first;
// if it fails the counterparty is never touched. A successful transfer leaves
// four ledger entries: withdraw + transfer_out on the source and
// deposit + transfer_in on the destination.
func (a *Account) TransferTo(other *Account, amount decimal.Decimal, note string) error {
	if a.Currency != other.Currency {
		return ErrCurrencyMismatch{From: a.Currency, To: other.Currency}
	}

	withdrawNote := note
	if withdrawNote == "" {
		withdrawNote = "transfer to " + other.ID
	}
	if err := a.Withdraw(amount, withdrawNote); err != nil {
		return err
	}

	depositNote := note
	if depositNote == "" {
		depositNote = "transfer from " + a.ID
	}
	if err := other.Deposit(amount, depositNote); err != nil {
		return err
	}

	outNote := note
	if outNote == "" {
		outNote = "to " + other.ID
	}
	inNote := note
	if inNote == "" {
		inNote = "from " + a.ID
	}
	a.record(EntryTransferOut, amount, outNote)
	other.record(EntryTransferIn, amount, inNote)
	return nil
}

// EndOfDay applies the variant's daily settlement rule exactly once.
// The rules are deterministic; there is no randomness in the investment yield.
func (a *Account) EndOfDay() {
	switch a.Kind {
	case KindChecking:
		a.settleChecking()
	case KindSavings:
		a.settleSavings()
	case KindInvestment:
		a.settleInvestment()
	}
}

// settleChecking charges the maintenance fee when the balance sits below the
// minimum. The fee is capped at the available balance so settlement alone
// cannot push the account negative.
func (a *Account) settleChecking() {
	p := a.checking
	if a.balance.GreaterThanOrEqual(p.MinimumBalance) || p.MaintenanceFee.Sign() <= 0 {
		return
	}
	if a.balance.Sign() <= 0 {
		return
	}
	fee := decimal.Min(p.MaintenanceFee, a.balance)
	if fee.Sign() > 0 {
		a.balance = a.balance.Sub(fee)
		note := fmt.Sprintf("maintenance (< %s %s)", p.MinimumBalance, a.Currency)
		a.record(EntryFee, fee, note)
	}
}

// settleSavings credits simple daily interest on positive balances
func (a *Account) settleSavings() {
	p := a.savings
	if a.balance.Sign() <= 0 || p.DailyInterestRate.Sign() <= 0 {
		return
	}
	interest := a.balance.Mul(p.DailyInterestRate)
	a.balance = a.balance.Add(interest)
	note := fmt.Sprintf("%s%% daily", p.DailyInterestRate.Mul(hundred).StringFixed(4))
	a.record(EntryInterest, interest, note)
}

// settleInvestment applies gross yield minus the management fee in a single
// balance update, then records yield and fee as two independent entries whose
// balance_after reflects the running balance after both deltas.
func (a *Account) settleInvestment() {
	p := a.investment
	base := yieldBase.Add(decimal.NewFromInt(int64(p.RiskLevel - 3)).Mul(yieldStep))

	var gross, fee decimal.Decimal
	if a.balance.Sign() > 0 {
		gross = a.balance.Mul(base)
		fee = a.balance.Mul(p.ManagementFeeDaily)
	}
	delta := gross.Sub(fee)
	if delta.IsZero() {
		return
	}
	a.balance = a.balance.Add(delta)
	if !gross.IsZero() {
		a.record(EntryYield, gross, fmt.Sprintf("base_yield %s%%", base.Mul(hundred).StringFixed(4)))
	}
	if !fee.IsZero() {
		a.record(EntryFee, fee, fmt.Sprintf("mgmt %s%%", p.ManagementFeeDaily.Mul(hundred).StringFixed(4)))
	}
}
