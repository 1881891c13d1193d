// Package strategy demonstrates the Strategy pattern with a payment
// processor: one interface, several interchangeable payment methods, and a
// context that swaps between them at runtime.
//
// Each method validates its own details and settles into a Receipt; failure
// modes are typed errors so callers can branch on them with errors.As. The
// Processor never inspects concrete types, which is the point: adding a
// payment method is a new file, not a new switch arm.
package strategy
