package model

type Movie struct {
	Id          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	Language    string   `json:"language"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Poster      string   `json:"poster"`
	ReleaseDate string   `json:"releaseDate"`
}
