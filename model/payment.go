package model

// PaymentOrder is the gateway order created for an online payment.
type PaymentOrder struct {
	OrderId  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// PaymentVerification carries the gateway callback fields back to the
// backend for signature verification against a booking.
type PaymentVerification struct {
	OrderId   string `json:"razorpay_order_id"`
	PaymentId string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	BookingId string `json:"bookingId"`
}
