package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cinebook-cli/model"
)

const (
	movieCacheTTL   = time.Hour
	showCacheTTL    = 5 * time.Minute
	maxRecentMovies = 8
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// RecentMovie is one entry of the browse history surfaced at the top of the
// movie list.
type RecentMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type movieHistory struct {
	Movies []RecentMovie `json:"movies"`
}

// Session is the persisted auth state: the session cookie replayed on
// requests plus the user it belonged to when saved.
type Session struct {
	Cookie string     `json:"cookie"`
	User   model.User `json:"user"`
}

// LoadMovieCache returns the cached movie catalog and whether it is still
// fresh.
func LoadMovieCache() ([]model.Movie, bool, error) {
	path, err := cachePath("movies.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Movie](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= movieCacheTTL, nil
}

func SaveMovieCache(movies []model.Movie) error {
	path, err := cachePath("movies.json")
	if err != nil {
		return err
	}
	return saveCache(path, movies)
}

// LoadShowCache returns the cached shows for one movie and date. The TTL is
// short: seat availability behind these shows moves quickly.
func LoadShowCache(movieID string, date string) ([]model.Show, bool, error) {
	path, err := cachePath(fmt.Sprintf("shows_%s_%s.json", movieID, date))
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Show](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= showCacheTTL, nil
}

func SaveShowCache(movieID string, date string, shows []model.Show) error {
	path, err := cachePath(fmt.Sprintf("shows_%s_%s.json", movieID, date))
	if err != nil {
		return err
	}
	return saveCache(path, shows)
}

func LoadRecentMovies() ([]RecentMovie, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history movieHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid movie history format")
	}
	return history.Movies, nil
}

// RememberMovie puts a movie at the head of the browse history, dropping
// duplicates and anything beyond the retention cap.
func RememberMovie(movie model.Movie) error {
	history, _ := LoadRecentMovies()
	next := []RecentMovie{{ID: movie.Id, Title: movie.Title}}

	for _, existing := range history {
		if existing.ID != "" && existing.ID == movie.Id {
			continue
		}
		if existing.Title != "" && strings.EqualFold(existing.Title, movie.Title) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}

	path, err := configPath("history.json")
	if err != nil {
		return err
	}
	return writeJSON(path, movieHistory{Movies: next})
}

// LoadSession returns the persisted session, or an empty one when the user
// has never signed in from this machine.
func LoadSession() (Session, error) {
	path, err := configPath("session.json")
	if err != nil {
		return Session{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, errors.New("invalid session format")
	}
	return session, nil
}

func SaveSession(session Session) error {
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	return writeJSON(path, session)
}

// ClearSession forgets the persisted cookie, e.g. after logout.
func ClearSession() error {
	path, err := configPath("session.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	return writeJSON(path, cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	})
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cinebook-cli", name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cinebook-cli", name), nil
}
