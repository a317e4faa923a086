package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"shipping/internal/pkg/errs"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money is an amount in the currency's minor units (cents for EUR, units for XAF).
type Money struct {
	amount   int64
	currency string
}

// NewMoney validates a non-negative amount and an ISO 4217 style code.
func NewMoney(amount int64, currency string) (Money, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", amount))
	}
	if !currencyPattern.MatchString(code) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a 3 letter code", currency))
	}
	return Money{amount: amount, currency: code}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Validate() error {
	if m.currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	return nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
