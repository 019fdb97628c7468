package service

import (
	"context"
	"errors"
	"fmt"

	"cinebook-cli/model"
)

type createOrderRequest struct {
	Amount    float64 `json:"amount"`
	BookingId string  `json:"bookingId"`
}

// CreatePaymentOrder opens a gateway order for an online payment of a
// committed booking. The booking's seat hold is unaffected by the outcome.
func (c *Client) CreatePaymentOrder(ctx context.Context, amount float64, bookingID string) (model.PaymentOrder, error) {
	if bookingID == "" {
		return model.PaymentOrder{}, errors.New("booking id is required")
	}
	if amount <= 0 {
		return model.PaymentOrder{}, errors.New("amount must be positive")
	}
	endpoint := fmt.Sprintf("%s/payment/createOrder", c.baseURL)

	var order model.PaymentOrder
	err := c.postJSON(ctx, endpoint, createOrderRequest{Amount: amount, BookingId: bookingID}, &order)
	if err != nil {
		return model.PaymentOrder{}, err
	}
	if order.OrderId == "" {
		return model.PaymentOrder{}, errors.New("gateway returned an empty order id")
	}
	return order, nil
}

// VerifyPayment submits the gateway confirmation back to the backend, which
// validates the signature and flips the booking to paid_online. The returned
// string is the server's human-readable outcome message.
func (c *Client) VerifyPayment(ctx context.Context, verification model.PaymentVerification) (string, error) {
	if verification.BookingId == "" {
		return "", errors.New("booking id is required")
	}
	endpoint := fmt.Sprintf("%s/payment/paymentVerification", c.baseURL)

	var payload struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, endpoint, verification, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}
