package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"cinebook-cli/model"
)

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// GetMovies returns the catalog of currently listed movies.
func (c *Client) GetMovies(ctx context.Context) ([]model.Movie, error) {
	endpoint := fmt.Sprintf("%s/movie/all-movies", c.baseURL)

	var payload dataEnvelope[[]model.Movie]
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// GetMovieDetails fetches a single movie by id.
func (c *Client) GetMovieDetails(ctx context.Context, movieID string) (model.Movie, error) {
	if movieID == "" {
		return model.Movie{}, errors.New("movie id is required")
	}
	endpoint := fmt.Sprintf("%s/movie/movie-details/%s", c.baseURL, url.PathEscape(movieID))

	var payload dataEnvelope[model.Movie]
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return model.Movie{}, err
	}
	if payload.Data.Id == "" {
		return model.Movie{}, errors.New("movie not found")
	}
	return payload.Data, nil
}

// GetShowsByDate fetches every show of a movie on a calendar date, each with
// its theater embedded.
func (c *Client) GetShowsByDate(ctx context.Context, movieID string, date time.Time) ([]model.Show, error) {
	if movieID == "" {
		return nil, errors.New("movie id is required")
	}
	query := url.Values{}
	query.Set("movieId", movieID)
	query.Set("date", date.Format(time.DateOnly))
	endpoint := fmt.Sprintf("%s/show/by-date?%s", c.baseURL, query.Encode())

	var payload dataEnvelope[[]model.Show]
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// GetShowSeats fetches the seat inventory for a show: the sparse seat list,
// the grid layout and the show header used by the seat-selection screen.
func (c *Client) GetShowSeats(ctx context.Context, showID string) (model.SeatInventory, error) {
	if showID == "" {
		return model.SeatInventory{}, errors.New("show id is required")
	}
	endpoint := fmt.Sprintf("%s/show/seats/%s", c.baseURL, url.PathEscape(showID))

	var inventory model.SeatInventory
	if err := c.getJSON(ctx, endpoint, &inventory); err != nil {
		return model.SeatInventory{}, err
	}
	return inventory, nil
}
