package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aalemi-dev/calltrace/interceptor"
	"github.com/aalemi-dev/calltrace/selector"
)

const accountType = "bank.Account"

var (
	errNonPositiveAmount = errors.New("amount must be positive")
	errInsufficientFunds = errors.New("insufficient funds")
)

// accountSites declares the Account methods for when the manifest does not.
// The type carries the default marker, so every non-synthetic method is traced.
var accountSites = map[string]selector.CallSite{
	"deposit":  accountSite("deposit", false, "amount"),
	"withdraw": accountSite("withdraw", false, "amount"),
	"balance":  accountSite("balance", false),
	"reset":    accountSite("reset", false),
	"String":   accountSite("String", true),
}

func accountSite(method string, synthetic bool, params ...string) selector.CallSite {
	return selector.CallSite{
		Type:   selector.TypeInfo{Name: accountType, Markers: []selector.Marker{selector.DefaultMarker}},
		Method: selector.MethodInfo{Name: method, Synthetic: synthetic, Params: params},
	}
}

// Account is a toy bank account whose methods run through the interceptor.
type Account struct {
	mu      sync.Mutex
	balance int

	deposit   func(int) (bool, error)
	withdraw  func(int) (int, error)
	balanceOf func() (int, error)
	reset     func() error
	str       func() (string, error)
}

// NewAccount binds every Account method. Call sites declared in manifest
// take precedence over accountSites. manifest may be nil.
//
// A manifest method that declares parameters must declare as many as the
// Account method takes.
func NewAccount(icpt *interceptor.Interceptor, manifest *selector.Manifest) (*Account, error) {
	bind := func(method string) (*interceptor.Binding, error) {
		fallback := accountSites[method]
		site, err := manifest.CallSite(accountType, method)
		if err != nil {
			site = fallback
		}
		want, declared := len(fallback.Method.Params), len(site.Method.Params)
		if declared != 0 && declared != want {
			return nil, fmt.Errorf("%w: declared %d, takes %d", interceptor.ErrArityMismatch, declared, want)
		}
		return icpt.Bind(site)
	}

	bindings := make(map[string]*interceptor.Binding, len(accountSites))
	for method := range accountSites {
		b, err := bind(method)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s.%s: %w", accountType, method, err)
		}
		bindings[method] = b
	}

	a := &Account{}
	a.deposit = interceptor.Func1(bindings["deposit"], a.doDeposit)
	a.withdraw = interceptor.Func1(bindings["withdraw"], a.doWithdraw)
	a.balanceOf = interceptor.Func0(bindings["balance"], a.doBalance)
	a.reset = interceptor.Proc0(bindings["reset"], a.doReset)
	a.str = interceptor.Func0(bindings["String"], a.doString)
	return a, nil
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount int) (bool, error) { return a.deposit(amount) }

// Withdraw takes amount from the balance and returns what is left.
func (a *Account) Withdraw(amount int) (int, error) { return a.withdraw(amount) }

// Balance returns the current balance.
func (a *Account) Balance() int {
	b, _ := a.balanceOf()
	return b
}

// Reset empties the account.
func (a *Account) Reset() error { return a.reset() }

func (a *Account) String() string {
	s, _ := a.str()
	return s
}

func (a *Account) doDeposit(amount int) (bool, error) {
	if amount <= 0 {
		return false, errNonPositiveAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	return true, nil
}

func (a *Account) doWithdraw(amount int) (int, error) {
	if amount <= 0 {
		return 0, errNonPositiveAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount > a.balance {
		return a.balance, fmt.Errorf("%w: balance %d, requested %d", errInsufficientFunds, a.balance, amount)
	}
	a.balance -= amount
	return a.balance, nil
}

func (a *Account) doBalance() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, nil
}

func (a *Account) doReset() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = 0
	return nil
}

func (a *Account) doString() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("Account{balance=%d}", a.balance), nil
}
