package model

// Booking is the server-confirmed receipt returned by /booking/create.
// Seats and price are immutable once created; only the payment status moves.
type Booking struct {
	BookingId     string   `json:"bookingId"`
	MovieName     string   `json:"movieName"`
	TheaterName   string   `json:"theaterName"`
	Location      string   `json:"location"`
	ShowDate      string   `json:"showDate"`
	ShowTime      string   `json:"showTime"`
	SelectedSeats []string `json:"selectedSeats"`
	TotalPrice    float64  `json:"totalPrice"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	Poster        string   `json:"poster"`
	CreatedAt     string   `json:"createdAt"`
}

// BookingRecord is the flatter shape served by /booking/all-bookings.
type BookingRecord struct {
	BookingId     string   `json:"bookingId"`
	MovieId       string   `json:"movieId"`
	MovieName     string   `json:"movieName"`
	MoviePoster   string   `json:"moviePoster"`
	TheaterName   string   `json:"theaterName"`
	Location      string   `json:"location"`
	ShowDate      string   `json:"showDate"`
	ShowTime      string   `json:"showTime"`
	SelectedSeats []string `json:"selectedSeats"`
	TotalPrice    float64  `json:"totalPrice"`
	PaymentStatus string   `json:"paymentStatus"`
	CreatedAt     string   `json:"createdAt"`
}
