package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cinebook-cli/model"
)

// CreateBookingRequest is the commit payload. The server is the sole arbiter
// of whether the named seats are still available.
type CreateBookingRequest struct {
	ShowId        string   `json:"showId"`
	SelectedSeats []string `json:"selectedSeats"`
	TotalPrice    float64  `json:"totalPrice"`
}

// CreateBooking issues the one reservation-commit call and returns the
// server-confirmed booking. Each call carries a fresh request id so the
// linearization point is traceable end to end.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (model.Booking, error) {
	if req.ShowId == "" {
		return model.Booking{}, errors.New("show id is required")
	}
	endpoint := fmt.Sprintf("%s/booking/create", c.baseURL)

	httpReq, err := c.newRequest(ctx, "POST", endpoint, req)
	if err != nil {
		return model.Booking{}, err
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return model.Booking{}, fmt.Errorf("request failed: %w", err)
	}

	var payload struct {
		Booking model.Booking `json:"booking"`
	}
	if err := c.handleResponse(res, endpoint, &payload); err != nil {
		return model.Booking{}, err
	}
	if payload.Booking.BookingId == "" {
		return model.Booking{}, errors.New("server returned an empty booking")
	}
	return payload.Booking, nil
}

// GetBookings returns the signed-in user's booking history, newest first as
// served by the API.
func (c *Client) GetBookings(ctx context.Context) ([]model.BookingRecord, error) {
	endpoint := fmt.Sprintf("%s/booking/all-bookings", c.baseURL)

	var payload dataEnvelope[[]model.BookingRecord]
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}
