package strategy

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"
)

// Method is the strategy interface every payment method implements.
type Method interface {
	// Pay settles the amount and returns a receipt, or a typed error
	// describing why the method refused it.
	Pay(amount float64) (Receipt, error)

	// Name identifies the method in receipts and logs.
	Name() string
}

// Receipt records a settled payment.
type Receipt struct {
	// Method is the name of the strategy that settled the payment.
	Method string

	// Amount is what was charged.
	Amount float64

	// Change is returned cash, zero for non-cash methods.
	Change float64

	// TxnID is the generated transaction identifier, empty for cash.
	TxnID string

	// Account is the masked account detail (card number, mobile) the
	// payment ran against. Never contains the unmasked value.
	Account string
}

// ErrNoMethod is returned by Processor.Charge when no payment method has
// been selected.
var ErrNoMethod = errors.New("strategy: no payment method selected")

// InsufficientCashError reports a cash payment short of the amount due.
type InsufficientCashError struct {
	// Short is how much more cash was needed.
	Short float64
}

// Error implements the error interface.
func (e InsufficientCashError) Error() string {
	// Example: strategy: insufficient cash, short by 150.00
	return "strategy: insufficient cash, short by " + strconv.FormatFloat(e.Short, 'f', 2, 64)
}

// InvalidCardError reports card details that failed validation.
type InvalidCardError struct{ Reason string }

// Error implements the error interface.
func (e InvalidCardError) Error() string {
	return "strategy: invalid card: " + e.Reason
}

// InvalidUPIError reports UPI details that failed validation.
type InvalidUPIError struct{ Reason string }

// Error implements the error interface.
func (e InvalidUPIError) Error() string {
	return "strategy: invalid upi: " + e.Reason
}

// Processor is the Strategy context: it holds the current payment method
// and dispatches charges through it. A fresh Processor starts with no
// method selected.
//
// Processor is not safe for concurrent use; it models one checkout.
type Processor struct {
	method Method
	log    zerolog.Logger
}

// NewProcessor returns a Processor that logs charge outcomes through log.
func NewProcessor(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// Use selects the payment method for subsequent charges. The method can be
// swapped between charges; that is the pattern being demonstrated.
func (p *Processor) Use(m Method) {
	p.method = m
}

// CurrentMethod returns the selected method's name, or "none".
func (p *Processor) CurrentMethod() string {
	if p.method == nil {
		return "none"
	}
	return p.method.Name()
}

// Charge settles amount through the selected method.
//
// It fails with ErrNoMethod when nothing is selected, and otherwise passes
// through whatever the method returns.
func (p *Processor) Charge(amount float64) (Receipt, error) {
	if p.method == nil {
		p.log.Warn().Float64("amount", amount).Msg("charge attempted with no payment method")
		return Receipt{}, ErrNoMethod
	}

	rcpt, err := p.method.Pay(amount)
	if err != nil {
		p.log.Warn().
			Err(err).
			Str("method", p.method.Name()).
			Float64("amount", amount).
			Msg("payment failed")
		return Receipt{}, err
	}

	p.log.Info().
		Str("method", rcpt.Method).
		Float64("amount", rcpt.Amount).
		Str("txn_id", rcpt.TxnID).
		Msg("payment settled")
	return rcpt, nil
}
