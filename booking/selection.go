package booking

import (
	"errors"
	"sort"
	"strconv"
)

// Phase is the lifecycle of a selection for one show: Empty to Selecting to
// Committing, which settles as Confirmed or Rejected. Clear returns any phase
// to Empty; a Rejected selection keeps its seats so the user can adjust and
// retry.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseSelecting
	PhaseCommitting
	PhaseConfirmed
	PhaseRejected
)

// Selection is the client-local set of seats picked for the active show. It
// is owned by the one mounted seat view and is never shared or persisted;
// navigating away discards it.
type Selection struct {
	ticketPrice float64
	chosen      map[string]bool
	phase       Phase
}

func NewSelection(ticketPrice float64) *Selection {
	return &Selection{
		ticketPrice: ticketPrice,
		chosen:      make(map[string]bool),
	}
}

// Toggle flips a seat's membership. Booked seats are never selectable: the
// toggle is silently ignored. Toggling is also ignored while a commit is in
// flight or after it confirmed. Reports whether the selection changed.
func (s *Selection) Toggle(seatID string, isBooked bool) bool {
	if isBooked || seatID == "" {
		return false
	}
	if s.phase == PhaseCommitting || s.phase == PhaseConfirmed {
		return false
	}
	if s.chosen[seatID] {
		delete(s.chosen, seatID)
	} else {
		s.chosen[seatID] = true
	}
	if len(s.chosen) == 0 {
		s.phase = PhaseEmpty
	} else {
		s.phase = PhaseSelecting
	}
	return true
}

// Clear resets the selection to Empty. Called after a successful reservation
// or when the user abandons the show.
func (s *Selection) Clear() {
	s.chosen = make(map[string]bool)
	s.phase = PhaseEmpty
}

func (s *Selection) Contains(seatID string) bool {
	return s.chosen[seatID]
}

func (s *Selection) Count() int {
	return len(s.chosen)
}

// TotalPrice is always recomputed from the current membership, never
// accumulated incrementally.
func (s *Selection) TotalPrice() float64 {
	return float64(len(s.chosen)) * s.ticketPrice
}

func (s *Selection) TicketPrice() float64 {
	return s.ticketPrice
}

// Seats returns the chosen seat identifiers in display order: row letters
// first, then numeric column order, so "A2" sorts before "A10".
func (s *Selection) Seats() []string {
	seats := make([]string, 0, len(s.chosen))
	for id := range s.chosen {
		seats = append(seats, id)
	}
	sort.Slice(seats, func(i, j int) bool {
		return seatLess(seats[i], seats[j])
	})
	return seats
}

func (s *Selection) Phase() Phase {
	return s.phase
}

// BeginCommit marks the commit in flight. Only a non-empty selection that is
// not already committing may start one; the caller disables re-submission for
// the duration.
func (s *Selection) BeginCommit() error {
	if len(s.chosen) == 0 {
		return errors.New("select at least one seat")
	}
	if s.phase == PhaseCommitting {
		return errors.New("a booking is already in progress")
	}
	s.phase = PhaseCommitting
	return nil
}

// Confirm records a successful reservation and clears the seats: the picks
// now live in the server-side booking, not here.
func (s *Selection) Confirm() {
	s.chosen = make(map[string]bool)
	s.phase = PhaseConfirmed
}

// Reject records a failed commit but keeps the user's picks intact so they
// can adjust and retry.
func (s *Selection) Reject() {
	s.phase = PhaseRejected
}

// Prune drops every chosen seat the predicate reports as booked and returns
// the removed ids in display order. Called after a seat-map refresh so a seat
// lost to a concurrent user cannot be resubmitted forever. Ignored while a
// commit is in flight.
func (s *Selection) Prune(isBooked func(seatID string) bool) []string {
	if s.phase == PhaseCommitting || s.phase == PhaseConfirmed {
		return nil
	}
	var dropped []string
	for id := range s.chosen {
		if isBooked(id) {
			delete(s.chosen, id)
			dropped = append(dropped, id)
		}
	}
	if len(dropped) == 0 {
		return nil
	}
	sort.Slice(dropped, func(i, j int) bool {
		return seatLess(dropped[i], dropped[j])
	})
	if len(s.chosen) == 0 {
		s.phase = PhaseEmpty
	}
	return dropped
}

func seatLess(a string, b string) bool {
	aRow, aCol := splitSeatID(a)
	bRow, bCol := splitSeatID(b)
	if aRow != bRow {
		return aRow < bRow
	}
	if aCol != bCol {
		return aCol < bCol
	}
	return a < b
}

func splitSeatID(id string) (string, int) {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	col, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0
	}
	return id[:i], col
}
