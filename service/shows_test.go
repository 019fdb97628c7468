package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetShowsByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/show/by-date" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("movieId"); got != "m1" {
			t.Errorf("unexpected movieId %q", got)
		}
		if got := r.URL.Query().Get("date"); got != "2026-08-30" {
			t.Errorf("unexpected date %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"_id":"s1","movieId":"m1","theaterId":{"_id":"t1","name":"PVR Phoenix","location":"Lower Parel"},"formattedTime":"10:00 AM","ticketPrice":250}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	date := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	shows, err := client.GetShowsByDate(context.Background(), "m1", date)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
	if shows[0].Theater.Name != "PVR Phoenix" {
		t.Fatalf("expected embedded theater, got %+v", shows[0].Theater)
	}
	if shows[0].TicketPrice != 250 {
		t.Fatalf("unexpected ticket price %v", shows[0].TicketPrice)
	}
}

func TestGetShowsByDate_RequiresMovieID(t *testing.T) {
	client := NewClient("http://localhost:3000/api", nil)
	if _, err := client.GetShowsByDate(context.Background(), "", time.Now()); err == nil {
		t.Fatal("expected error for empty movie id")
	}
}

func TestGetShowSeats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/show/seats/s1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"seats":[{"id":"A1","isBooked":true}],
			"ticketPrice":250,
			"seatLayout":{"rows":8,"columns":12},
			"movieTitle":"Interstellar",
			"theaterName":"PVR Phoenix",
			"showTime":"10:00 AM"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	inventory, err := client.GetShowSeats(context.Background(), "s1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if inventory.SeatLayout.Rows != 8 || inventory.SeatLayout.Columns != 12 {
		t.Fatalf("unexpected layout %+v", inventory.SeatLayout)
	}
	if len(inventory.Seats) != 1 || !inventory.Seats[0].IsBooked {
		t.Fatalf("unexpected seats %+v", inventory.Seats)
	}
	if inventory.MovieTitle != "Interstellar" {
		t.Fatalf("unexpected header %+v", inventory)
	}
}

func TestGetMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/all-movies" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"_id":"m1","title":"Interstellar","genre":["Sci-Fi"],"language":"English"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	movies, err := client.GetMovies(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Interstellar" {
		t.Fatalf("unexpected movies %+v", movies)
	}
}

func TestGetMovieDetails_EmptyPayloadIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	if _, err := client.GetMovieDetails(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error for empty movie payload")
	}
}
