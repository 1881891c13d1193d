package strategy

import (
	"strings"

	"github.com/google/uuid"
)

// UPI pays through a virtual payment address plus the registered mobile
// number.
type UPI struct {
	VPA    string
	Mobile string
}

// Name implements Method.
func (UPI) Name() string { return "upi" }

// Pay implements Method. It validates the VPA shape and the 10-digit
// mobile, then settles with a fresh transaction ID.
func (u UPI) Pay(amount float64) (Receipt, error) {
	if !strings.Contains(u.VPA, "@") {
		return Receipt{}, InvalidUPIError{Reason: "vpa must contain @"}
	}
	if len(u.Mobile) != 10 || !allDigits(u.Mobile) {
		return Receipt{}, InvalidUPIError{Reason: "mobile must be 10 digits"}
	}
	return Receipt{
		Method:  u.Name(),
		Amount:  amount,
		TxnID:   uuid.NewString(),
		Account: maskMobile(u.Mobile),
	}, nil
}

// maskMobile keeps only the last four digits visible.
func maskMobile(mobile string) string {
	if len(mobile) < 4 {
		return "****"
	}
	return "******" + mobile[len(mobile)-4:]
}
