// Package demo holds the sample catalog served by rttrinspect.
package demo

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sbalogh/rttr/core/types"
	"github.com/shopspring/decimal"
)

// Error types.
var (
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("source and destination are the same account")
)

var receiptNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/sbalogh/rttr/internal/demo"))

var _ types.Checker = Amount{}

// Amount is a positive decimal quantity.
type Amount struct {
	decimal.Decimal
}

func (a Amount) Check() error {
	if !a.IsPositive() {
		return fmt.Errorf("amount must be positive: %s", a.String())
	}

	return nil
}

// Receipt records a completed transfer.
type Receipt struct {
	ID     uuid.UUID       `json:"id"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Memo   string          `json:"memo,omitempty"`
}

// Ledger keeps decimal balances of named accounts in memory.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	seq      uint64
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]decimal.Decimal)}
}

// Open creates an empty account.
func (l *Ledger) Open(account string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[account]; ok {
		return fmt.Errorf("%w: %s", ErrAccountExists, account)
	}
	l.balances[account] = decimal.Zero

	return nil
}

func (l *Ledger) Deposit(account string, amount Amount) (decimal.Decimal, error) {
	if err := amount.Check(); err != nil {
		return decimal.Zero, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.balance(account)
	if err != nil {
		return decimal.Zero, err
	}
	balance = balance.Add(amount.Decimal)
	l.balances[account] = balance

	return balance, nil
}

func (l *Ledger) Withdraw(account string, amount Amount) (decimal.Decimal, error) {
	if err := amount.Check(); err != nil {
		return decimal.Zero, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.debit(account, amount.Decimal)
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}

func (l *Ledger) Balance(account string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balance(account)
}

// Accounts lists the account names in order.
func (l *Ledger) Accounts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.balances))
	for name := range l.balances {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// Transfer moves amount between two accounts. The receipt ID is derived from
// the transfer sequence number, so replaying the same transfers yields the
// same IDs.
func (l *Ledger) Transfer(from, to string, amount Amount, memo string) (Receipt, error) {
	if from == to {
		return Receipt{}, fmt.Errorf("%w: %s", ErrSameAccount, from)
	}
	if err := amount.Check(); err != nil {
		return Receipt{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.balance(to); err != nil {
		return Receipt{}, err
	}
	if _, err := l.debit(from, amount.Decimal); err != nil {
		return Receipt{}, err
	}
	l.balances[to] = l.balances[to].Add(amount.Decimal)

	l.seq++
	key := fmt.Sprintf("%d:%s:%s:%s", l.seq, from, to, amount.String())

	return Receipt{
		ID:     uuid.NewSHA1(receiptNamespace, []byte(key)),
		From:   from,
		To:     to,
		Amount: amount.Decimal,
		Memo:   memo,
	}, nil
}

func (l *Ledger) balance(account string) (decimal.Decimal, error) {
	balance, ok := l.balances[account]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAccountNotFound, account)
	}

	return balance, nil
}

func (l *Ledger) debit(account string, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := l.balance(account)
	if err != nil {
		return decimal.Zero, err
	}
	if balance.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("%w: %s has %s", ErrInsufficientFunds, account, balance)
	}
	balance = balance.Sub(amount)
	l.balances[account] = balance

	return balance, nil
}
