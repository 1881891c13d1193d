package strategy

// Cash pays with tendered notes. No transaction ID is minted; the receipt
// carries the change instead.
type Cash struct {
	Tendered float64
}

// Name implements Method.
func (Cash) Name() string { return "cash" }

// Pay implements Method. Tendering less than the amount due fails with
// InsufficientCashError carrying the shortfall.
func (c Cash) Pay(amount float64) (Receipt, error) {
	if c.Tendered < amount {
		return Receipt{}, InsufficientCashError{Short: amount - c.Tendered}
	}
	return Receipt{
		Method: c.Name(),
		Amount: amount,
		Change: c.Tendered - amount,
	}, nil
}
