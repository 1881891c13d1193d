package strategy

import "github.com/google/uuid"

// Card pays by credit card. Details are validated on Pay, not at
// construction, so a demo can show the failure path.
type Card struct {
	Number string
	Holder string
	CVV    string
	Expiry string
}

// Name implements Method.
func (Card) Name() string { return "credit card" }

// Pay implements Method. It validates the card shape (16-digit number,
// 3-digit CVV) and settles with a fresh transaction ID.
func (c Card) Pay(amount float64) (Receipt, error) {
	if err := c.validate(); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		Method:  c.Name(),
		Amount:  amount,
		TxnID:   uuid.NewString(),
		Account: maskCard(c.Number),
	}, nil
}

func (c Card) validate() error {
	if len(c.Number) != 16 || !allDigits(c.Number) {
		return InvalidCardError{Reason: "card number must be 16 digits"}
	}
	if len(c.CVV) != 3 || !allDigits(c.CVV) {
		return InvalidCardError{Reason: "cvv must be 3 digits"}
	}
	return nil
}

// maskCard keeps only the last four digits visible.
func maskCard(number string) string {
	if len(number) < 4 {
		return "****"
	}
	return "**** **** **** " + number[len(number)-4:]
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
