package homecalc

import (
	"errors"
	"fmt"
)

// ErrUnknownFund is matched by every *UnknownFundError.
var ErrUnknownFund = errors.New("unknown fund")

// ErrInsufficientPayment is returned when a monthly payment never amortizes a
// loan: the payoff period count is not a finite number.
var ErrInsufficientPayment = errors.New("monthly payment is insufficient to amortize the loan")

// UnknownFundError reports a fund code missing from the catalog.
type UnknownFundError struct {
	Code string
}

func (e *UnknownFundError) Error() string {
	return fmt.Sprintf("unknown fund code: %q", e.Code)
}

func (e *UnknownFundError) Is(target error) bool { return target == ErrUnknownFund }
