package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/banco-aurora-ledger/internal/bank"
	"github.com/banco-aurora-ledger/internal/domain/account"
	"github.com/banco-aurora-ledger/internal/domain/customer"
	"github.com/banco-aurora-ledger/internal/export"
	"github.com/banco-aurora-ledger/internal/storage"
)

const usage = `Usage: bankcli <command> [flags]

Commands:
  add-customer   Register a new customer
  open-account   Open an account for an owner
  deposit        Credit an account
  withdraw       Debit an account
  transfer       Move funds between two accounts
  eod            Run the end-of-day settlement over all accounts
  show           Print an account snapshot
  export         Write an account's ledger as CSV

Every command accepts -file to point at the bank snapshot file
(default data/bank_snapshot.json). State is loaded before the
operation and saved back afterwards.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "add-customer":
		err = runAddCustomer(os.Args[2:])
	case "open-account":
		err = runOpenAccount(os.Args[2:])
	case "deposit":
		err = runAmountOp(os.Args[2:], true)
	case "withdraw":
		err = runAmountOp(os.Args[2:], false)
	case "transfer":
		err = runTransfer(os.Args[2:])
	case "eod":
		err = runEndOfDay(os.Args[2:])
	case "show":
		err = runShow(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fileFlag registers the shared -file flag on a command's flag set
func fileFlag(fs *flag.FlagSet) *string {
	return fs.String("file", "data/bank_snapshot.json", "Path of the bank snapshot file")
}

// loadBank reads the snapshot file if present, or starts a fresh bank
func loadBank(path string) (*bank.Bank, *storage.SnapshotFile, error) {
	store := storage.NewSnapshotFile(path)
	if !store.Exists() {
		return bank.New("Banco Aurora"), store, nil
	}

	data, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	b, err := bank.LoadJSON(data)
	if err != nil {
		return nil, nil, err
	}
	return b, store, nil
}

// saveBank writes the bank state back to the snapshot file
func saveBank(b *bank.Bank, store *storage.SnapshotFile) error {
	data, err := b.DumpJSON()
	if err != nil {
		return err
	}
	return store.Save(data)
}

func runAddCustomer(args []string) error {
	fs := flag.NewFlagSet("add-customer", flag.ExitOnError)
	file := fileFlag(fs)
	name := fs.String("name", "", "Customer name")
	document := fs.String("document", "", "Customer document id")
	email := fs.String("email", "", "Customer email (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, store, err := loadBank(*file)
	if err != nil {
		return err
	}

	c, err := customer.New(*name, *document, *email)
	if err != nil {
		return err
	}
	b.RegisterCustomer(c)

	if err := saveBank(b, store); err != nil {
		return err
	}
	fmt.Printf("Customer registered: %s (%s)\n", c.Name, c.ID)
	return nil
}

func runOpenAccount(args []string) error {
	fs := flag.NewFlagSet("open-account", flag.ExitOnError)
	file := fileFlag(fs)
	owner := fs.String("owner", "", "Owner (customer) id")
	kind := fs.String("kind", "checking", "Account kind: checking, savings or investment")
	currency := fs.String("currency", "", "Currency code (default BRL)")
	balance := fs.String("balance", "0", "Opening balance")
	risk := fs.Int("risk", 0, "Risk level for investment accounts (1-5)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", *balance, err)
	}

	b, store, err := loadBank(*file)
	if err != nil {
		return err
	}

	var opts []account.Option
	if *risk != 0 {
		opts = append(opts, account.WithRiskLevel(*risk))
	}

	snap, err := b.OpenAccount(*owner, *kind, *currency, amount, opts...)
	if err != nil {
		return err
	}

	if err := saveBank(b, store); err != nil {
		return err
	}
	fmt.Printf("Account opened: %s (%s, %s %s)\n", snap.ID, snap.Type, snap.Currency, snap.Balance.StringFixed(2))
	return nil
}

func runAmountOp(args []string, deposit bool) error {
	name := "withdraw"
	if deposit {
		name = "deposit"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	file := fileFlag(fs)
	id := fs.String("id", "", "Account id")
	amountStr := fs.String("amount", "", "Amount")
	note := fs.String("note", "", "Ledger note (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amountStr, err)
	}

	b, store, err := loadBank(*file)
	if err != nil {
		return err
	}

	var snap account.Snapshot
	if deposit {
		snap, err = b.Deposit(*id, amount, *note)
	} else {
		snap, err = b.Withdraw(*id, amount, *note)
	}
	if err != nil {
		return err
	}

	if err := saveBank(b, store); err != nil {
		return err
	}
	fmt.Printf("Account %s balance: %s %s\n", snap.ID, snap.Currency, snap.Balance.StringFixed(2))
	return nil
}

func runTransfer(args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	file := fileFlag(fs)
	from := fs.String("from", "", "Source account id")
	to := fs.String("to", "", "Destination account id")
	amountStr := fs.String("amount", "", "Amount")
	note := fs.String("note", "", "Ledger note (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amountStr, err)
	}

	b, store, err := loadBank(*file)
	if err != nil {
		return err
	}

	fromSnap, toSnap, err := b.Transfer(*from, *to, amount, *note)
	if err != nil {
		return err
	}

	if err := saveBank(b, store); err != nil {
		return err
	}
	fmt.Printf("Transferred %s: %s -> %s\n", amount.StringFixed(2), fromSnap.ID, toSnap.ID)
	fmt.Printf("  %s balance: %s\n", fromSnap.ID, fromSnap.Balance.StringFixed(2))
	fmt.Printf("  %s balance: %s\n", toSnap.ID, toSnap.Balance.StringFixed(2))
	return nil
}

func runEndOfDay(args []string) error {
	fs := flag.NewFlagSet("eod", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, store, err := loadBank(*file)
	if err != nil {
		return err
	}

	b.EndOfDay()

	if err := saveBank(b, store); err != nil {
		return err
	}
	fmt.Printf("End-of-day settlement applied to %d accounts\n", len(b.AccountIDs()))
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	file := fileFlag(fs)
	id := fs.String("id", "", "Account id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, _, err := loadBank(*file)
	if err != nil {
		return err
	}

	snap, err := b.GetAccount(*id)
	if err != nil {
		return err
	}

	fmt.Printf("Account %s (%s)\n", snap.ID, snap.Type)
	fmt.Printf("  Owner:    %s\n", snap.OwnerID)
	fmt.Printf("  Currency: %s\n", snap.Currency)
	fmt.Printf("  Balance:  %s\n", snap.Balance.StringFixed(2))
	fmt.Printf("  Entries:  %d\n", len(snap.Ledger))
	for _, e := range snap.Ledger {
		fmt.Printf("    %-12s %10s  balance %10s  %s\n",
			e.Kind, e.Amount.StringFixed(2), e.BalanceAfter.StringFixed(2), e.Note)
	}
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fileFlag(fs)
	id := fs.String("id", "", "Account id")
	out := fs.String("out", "", "Output CSV path (defaults to <id>_ledger.csv)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b, _, err := loadBank(*file)
	if err != nil {
		return err
	}

	snap, err := b.GetAccount(*id)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = snap.ID + "_ledger.csv"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteLedgerCSV(f, snap); err != nil {
		return err
	}
	fmt.Printf("Ledger written to %s (%d entries)\n", path, len(snap.Ledger))
	return nil
}
