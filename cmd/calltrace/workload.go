package main

import (
	"errors"

	"github.com/aalemi-dev/calltrace/logger"
)

// workload describes the demo calls made against an Account.
type workload struct {
	Deposits []int
}

// runWorkload deposits every amount, attempts one overdraft, then resets the
// account. Rejected calls are expected and only logged.
func runWorkload(w workload, acct *Account, log logger.Logger) error {
	for _, amount := range w.Deposits {
		if _, err := acct.Deposit(amount); err != nil {
			log.Warn("deposit rejected", err, map[string]interface{}{"amount": amount})
		}
	}

	overdraft := acct.Balance() + 1
	if _, err := acct.Withdraw(overdraft); err != nil {
		if !errors.Is(err, errInsufficientFunds) {
			return err
		}
		log.Warn("withdrawal rejected", err, map[string]interface{}{"amount": overdraft})
	}

	log.Info("workload finished", nil, map[string]interface{}{"account": acct.String()})
	return acct.Reset()
}
