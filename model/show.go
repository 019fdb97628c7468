package model

type Theater struct {
	Id       string `json:"_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Show is one scheduled screening of a movie at a theater. The theater is
// embedded in the by-date response rather than referenced by id.
type Show struct {
	Id            string  `json:"_id"`
	MovieId       string  `json:"movieId"`
	Theater       Theater `json:"theaterId"`
	Date          string  `json:"date"`
	FormattedTime string  `json:"formattedTime"`
	TicketPrice   float64 `json:"ticketPrice"`
	Status        string  `json:"status"`
}
