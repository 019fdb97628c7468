package model

type Seat struct {
	Id       string `json:"id"`
	IsBooked bool   `json:"isBooked"`
}

type SeatLayout struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// SeatInventory is the /show/seats payload: the show header plus the seat
// list. The seat list may be sparse; any coordinate of the layout missing
// from Seats is treated as available.
type SeatInventory struct {
	Seats           []Seat     `json:"seats"`
	TicketPrice     float64    `json:"ticketPrice"`
	SeatLayout      SeatLayout `json:"seatLayout"`
	MovieTitle      string     `json:"movieTitle"`
	Poster          string     `json:"poster"`
	TheaterName     string     `json:"theaterName"`
	TheaterLocation string     `json:"theaterLocation"`
	ShowTime        string     `json:"showTime"`
}
