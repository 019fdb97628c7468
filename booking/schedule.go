package booking

import (
	"strings"
	"time"

	"cinebook-cli/model"
)

// BrowseParams identifies what the show browser is currently looking at.
// Comparing two of them decides between a network fetch and a local
// re-filter.
type BrowseParams struct {
	MovieID    string
	Date       time.Time
	SearchTerm string
}

// ShouldRefetch reports whether moving from old to next requires hitting the
// API again. Only the movie and the date select what the server returns; a
// search-term-only change is answered from the shows already fetched.
func ShouldRefetch(old BrowseParams, next BrowseParams) bool {
	if old.MovieID != next.MovieID {
		return true
	}
	return !SameDay(old.Date, next.Date)
}

// NextDays returns n consecutive calendar days starting today inclusive,
// truncated to midnight.
func NextDays(now time.Time, n int) []time.Time {
	start := TruncateDate(now)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// TheaterShows is one theater's shows for the selected date, in API order.
type TheaterShows struct {
	Theater model.Theater
	Shows   []model.Show
}

// GroupByTheater groups a day's shows by their embedded theater, preserving
// the order theaters first appear in the response.
func GroupByTheater(shows []model.Show) []TheaterShows {
	index := make(map[string]int)
	var groups []TheaterShows
	for _, show := range shows {
		id := show.Theater.Id
		at, ok := index[id]
		if !ok {
			at = len(groups)
			index[id] = at
			groups = append(groups, TheaterShows{Theater: show.Theater})
		}
		groups[at].Shows = append(groups[at].Shows, show)
	}
	return groups
}

// FilterByLocation keeps the theater groups whose location contains the
// search term, case-insensitively. An empty term keeps everything.
func FilterByLocation(groups []TheaterShows, term string) []TheaterShows {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return groups
	}
	var filtered []TheaterShows
	for _, group := range groups {
		if strings.Contains(strings.ToLower(group.Theater.Location), term) {
			filtered = append(filtered, group)
		}
	}
	return filtered
}

// TruncateDate drops the time of day, keeping the location.
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether both instants fall on the same calendar day.
func SameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
