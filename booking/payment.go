package booking

import "fmt"

// PaymentStatus is the secondary state machine layered on a committed
// booking: Pending settles as PaidAtTheater or PaidOnline. A failed online
// attempt leaves the booking Pending; the seat hold from the commit persists
// server side and the user may retry without re-selecting or re-committing.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaidAtTheater PaymentStatus = "paid_at_theater"
	PaymentPaidOnline    PaymentStatus = "paid_online"
)

// ParsePaymentStatus maps the wire string to a status, defaulting unknown
// values to Pending so a stale client never invents a paid state.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentPaidAtTheater:
		return PaymentPaidAtTheater
	case PaymentPaidOnline:
		return PaymentPaidOnline
	default:
		return PaymentPending
	}
}

// Terminal reports whether the status can no longer change.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentPaidAtTheater || s == PaymentPaidOnline
}

// Transition validates a payment-state change. Both paid states are only
// reachable from Pending; paid states accept no further transitions.
func (s PaymentStatus) Transition(to PaymentStatus) (PaymentStatus, error) {
	if s == to {
		return s, nil
	}
	if s.Terminal() {
		return s, fmt.Errorf("payment already settled as %s", s)
	}
	switch to {
	case PaymentPaidAtTheater, PaymentPaidOnline, PaymentPending:
		return to, nil
	default:
		return s, fmt.Errorf("unknown payment status %q", string(to))
	}
}

// Label is the display text used on tickets and in the history table.
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPaidAtTheater:
		return "Paid at theater"
	case PaymentPaidOnline:
		return "Paid online"
	default:
		return "Payment pending"
	}
}
