package bank

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banco-aurora-ledger/internal/domain/account"
	"github.com/banco-aurora-ledger/internal/domain/customer"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCustomer(t *testing.T) customer.Customer {
	t.Helper()
	c, err := customer.New("Matheus", "000", "")
	require.NoError(t, err)
	return c
}

func TestBank_RegisterCustomer(t *testing.T) {
	b := New("Banco Aurora")
	c := testCustomer(t)

	b.RegisterCustomer(c)
	got, ok := b.Customer(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)

	t.Run("ReRegisteringOverwrites", func(t *testing.T) {
		updated := c
		updated.Email = "matheus@example.com"
		b.RegisterCustomer(updated)

		got, ok := b.Customer(c.ID)
		require.True(t, ok)
		assert.Equal(t, "matheus@example.com", got.Email)
	})
}

func TestBank_OpenAccount(t *testing.T) {
	b := New("Banco Aurora")

	t.Run("AllKinds", func(t *testing.T) {
		for _, kind := range []string{"checking", "savings", "investment"} {
			snap, err := b.OpenAccount("cust-1", kind, "BRL", dec("100"))
			require.NoError(t, err)
			assert.Len(t, snap.ID, 8)
			assert.Equal(t, "cust-1", snap.OwnerID)
			assert.True(t, snap.Balance.Equal(dec("100")))
			assert.Empty(t, snap.Ledger)
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		before := len(b.AccountIDs())

		_, err := b.OpenAccount("cust-1", "crypto", "BRL", decimal.Zero)
		var unknown account.ErrUnknownKind
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "crypto", unknown.Kind)
		assert.Len(t, b.AccountIDs(), before, "failed open must not create an account")
	})

	t.Run("VariantOverrides", func(t *testing.T) {
		snap, err := b.OpenAccount("cust-1", "savings", "BRL", dec("10"),
			account.WithDailyInterestRate(dec("0.001")))
		require.NoError(t, err)
		assert.Equal(t, "SavingsAccount", snap.Type)
	})

	t.Run("OwnerReferenceIsNotChecked", func(t *testing.T) {
		// owner_id is a weak reference; opening for an unregistered
		// customer succeeds
		_, err := b.OpenAccount("no-such-customer", "checking", "BRL", decimal.Zero)
		assert.NoError(t, err)
	})
}

func TestBank_GetAccount(t *testing.T) {
	b := New("Banco Aurora")
	snap, err := b.OpenAccount("cust-1", "checking", "BRL", dec("5"))
	require.NoError(t, err)

	got, err := b.GetAccount(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)

	_, err = b.GetAccount("missing")
	var notFound ErrAccountNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
	assert.True(t, errors.Is(err, ErrAccountNotFound{}))
}

func TestBank_DepositWithdraw(t *testing.T) {
	b := New("Banco Aurora")
	snap, err := b.OpenAccount("cust-1", "checking", "BRL", dec("100"))
	require.NoError(t, err)

	updated, err := b.Deposit(snap.ID, dec("25"), "")
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(dec("125")))

	updated, err = b.Withdraw(snap.ID, dec("125"), "")
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())

	_, err = b.Withdraw(snap.ID, dec("1"), "")
	assert.ErrorIs(t, err, account.ErrInsufficientFunds)

	_, err = b.Deposit("missing", dec("1"), "")
	assert.ErrorIs(t, err, ErrAccountNotFound{})

	_, err = b.Deposit(snap.ID, dec("-3"), "")
	assert.ErrorIs(t, err, account.ErrNegativeAmount)
}

func TestBank_Transfer(t *testing.T) {
	b := New("Banco Aurora")
	from, err := b.OpenAccount("cust-1", "checking", "BRL", dec("100"))
	require.NoError(t, err)
	to, err := b.OpenAccount("cust-2", "savings", "BRL", decimal.Zero)
	require.NoError(t, err)

	t.Run("Successful", func(t *testing.T) {
		fromSnap, toSnap, err := b.Transfer(from.ID, to.ID, dec("40"), "")
		require.NoError(t, err)
		assert.True(t, fromSnap.Balance.Equal(dec("60")))
		assert.True(t, toSnap.Balance.Equal(dec("40")))
		assert.Len(t, fromSnap.Ledger, 2)
		assert.Len(t, toSnap.Ledger, 2)
	})

	t.Run("MissingEitherSide", func(t *testing.T) {
		_, _, err := b.Transfer("missing", to.ID, dec("1"), "")
		assert.ErrorIs(t, err, ErrAccountNotFound{})

		_, _, err = b.Transfer(from.ID, "missing", dec("1"), "")
		assert.ErrorIs(t, err, ErrAccountNotFound{})
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		usd, err := b.OpenAccount("cust-3", "checking", "USD", dec("10"))
		require.NoError(t, err)

		_, _, err = b.Transfer(from.ID, usd.ID, dec("5"), "")
		assert.ErrorIs(t, err, account.ErrCurrencyMismatch{})

		fromSnap, _ := b.GetAccount(from.ID)
		usdSnap, _ := b.GetAccount(usd.ID)
		assert.True(t, fromSnap.Balance.Equal(dec("60")))
		assert.True(t, usdSnap.Balance.Equal(dec("10")))
	})

	t.Run("ConcurrentOpposingTransfers", func(t *testing.T) {
		a, err := b.OpenAccount("cust-4", "checking", "BRL", dec("1000"))
		require.NoError(t, err)
		c, err := b.OpenAccount("cust-4", "checking", "BRL", dec("1000"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _, _ = b.Transfer(a.ID, c.ID, dec("1"), "")
			}()
			go func() {
				defer wg.Done()
				_, _, _ = b.Transfer(c.ID, a.ID, dec("1"), "")
			}()
		}
		wg.Wait()

		aSnap, _ := b.GetAccount(a.ID)
		cSnap, _ := b.GetAccount(c.ID)
		assert.True(t, aSnap.Balance.Add(cSnap.Balance).Equal(dec("2000")),
			"transfers must conserve total balance")
	})
}

func TestBank_EndOfDay(t *testing.T) {
	b := New("Banco Aurora")
	checking, err := b.OpenAccount("cust-1", "checking", "BRL", dec("40"))
	require.NoError(t, err)
	savings, err := b.OpenAccount("cust-1", "savings", "BRL", dec("500"),
		account.WithDailyInterestRate(dec("0.0008")))
	require.NoError(t, err)
	investment, err := b.OpenAccount("cust-1", "investment", "BRL", dec("1000"),
		account.WithRiskLevel(4), account.WithManagementFeeDaily(dec("0.0001")))
	require.NoError(t, err)

	b.EndOfDay()

	checkingSnap, _ := b.GetAccount(checking.ID)
	savingsSnap, _ := b.GetAccount(savings.ID)
	investmentSnap, _ := b.GetAccount(investment.ID)

	assert.True(t, checkingSnap.Balance.Equal(dec("36.10")), "checking balance was %s", checkingSnap.Balance)
	assert.True(t, savingsSnap.Balance.Equal(dec("500.40")), "savings balance was %s", savingsSnap.Balance)
	assert.True(t, investmentSnap.Balance.Equal(dec("1000.35")), "investment balance was %s", investmentSnap.Balance)
}
