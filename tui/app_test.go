package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cinebook-cli/booking"
	"cinebook-cli/config"
	"cinebook-cli/model"
	"cinebook-cli/store"
)

func newTestModel() appModel {
	m := New(config.Config{APIBaseURL: "http://localhost:3000/api"}).(appModel)
	m.width = 100
	m.height = 40
	return m
}

func newBrowseModel(shows []model.Show) appModel {
	m := newTestModel()
	m.movie = model.Movie{Id: "m1", Title: "Interstellar"}
	m.shows = shows
	m.groups = booking.GroupByTheater(shows)
	m.applyLocationFilter()
	m.showsLoaded = true
	m.state = stateBrowseShows
	return m
}

func sampleShows() []model.Show {
	return []model.Show{
		{Id: "s1", Theater: model.Theater{Id: "t1", Name: "PVR Phoenix", Location: "Lower Parel"}, FormattedTime: "10:00 AM", TicketPrice: 250},
		{Id: "s2", Theater: model.Theater{Id: "t1", Name: "PVR Phoenix", Location: "Lower Parel"}, FormattedTime: "6:30 PM", TicketPrice: 300},
		{Id: "s3", Theater: model.Theater{Id: "t2", Name: "INOX Megaplex", Location: "Malad"}, FormattedTime: "9:00 PM", TicketPrice: 280},
	}
}

func TestHandleSearchInput_AppendsRunes(t *testing.T) {
	m := newBrowseModel(sampleShows())

	if !m.handleSearchInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}) {
		t.Fatal("expected search input to be handled")
	}
	if !m.handleSearchInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}) {
		t.Fatal("expected search input to be handled")
	}
	if m.searchTerm != "ma" {
		t.Fatalf("expected search term %q, got %q", "ma", m.searchTerm)
	}
}

func TestHandleSearchInput_Backspace(t *testing.T) {
	m := newBrowseModel(sampleShows())
	m.searchTerm = "mal"

	if !m.handleSearchInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if m.searchTerm != "ma" {
		t.Fatalf("expected search term %q, got %q", "ma", m.searchTerm)
	}
}

func TestHandleSearchInput_NavRunesFallThrough(t *testing.T) {
	m := newBrowseModel(sampleShows())

	if m.handleSearchInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}) {
		t.Fatal("expected j to stay a navigation key")
	}
	if m.searchTerm != "" {
		t.Fatalf("expected empty search term, got %q", m.searchTerm)
	}
}

func TestDebounce_OnlyNewestSequenceApplies(t *testing.T) {
	m := newBrowseModel(sampleShows())
	m.searchTerm = "malad"
	m.searchSeq = 5

	updated, _ := m.Update(debounceMsg{seq: 3})
	m = updated.(appModel)
	if len(m.visible) != 2 {
		t.Fatalf("stale debounce should not filter, got %d groups", len(m.visible))
	}

	updated, _ = m.Update(debounceMsg{seq: 5})
	m = updated.(appModel)
	if len(m.visible) != 1 {
		t.Fatalf("expected 1 group after filter, got %d", len(m.visible))
	}
	if m.visible[0].Theater.Name != "INOX Megaplex" {
		t.Fatalf("expected INOX Megaplex, got %q", m.visible[0].Theater.Name)
	}
}

func TestShowsMsg_StaleSequenceIgnored(t *testing.T) {
	m := newTestModel()
	m.movie = model.Movie{Id: "m1"}
	m.state = stateLoadingShows
	m.reqSeq = 2

	updated, _ := m.Update(showsMsg{shows: sampleShows(), seq: 1})
	m = updated.(appModel)
	if m.state != stateLoadingShows {
		t.Fatalf("stale response must not change state, got %d", m.state)
	}

	updated, _ = m.Update(showsMsg{shows: sampleShows(), seq: 2})
	m = updated.(appModel)
	if m.state != stateBrowseShows {
		t.Fatalf("expected browse state, got %d", m.state)
	}
}

func TestBrowseView_DistinguishesEmptyCases(t *testing.T) {
	noShows := newBrowseModel(nil)
	view := noShows.browseView()
	if !strings.Contains(view, "No shows are scheduled for this date.") {
		t.Fatalf("expected no-shows message, got %q", view)
	}

	filtered := newBrowseModel(sampleShows())
	filtered.searchTerm = "narnia"
	filtered.applyLocationFilter()
	view = filtered.browseView()
	if !strings.Contains(view, "No theaters match your search.") {
		t.Fatalf("expected no-match message, got %q", view)
	}
	if strings.Contains(view, "No shows are scheduled") {
		t.Fatal("filter miss must not claim an empty schedule")
	}
}

func TestSelectedShow_FlatCursorAcrossGroups(t *testing.T) {
	m := newBrowseModel(sampleShows())
	m.showCursor = 2

	show, ok := m.selectedShow()
	if !ok {
		t.Fatal("expected a show at cursor 2")
	}
	if show.Id != "s3" {
		t.Fatalf("expected show s3, got %q", show.Id)
	}
}

func newSeatModel() appModel {
	m := newTestModel()
	m.state = stateSeatSelection
	m.inventory = model.SeatInventory{
		TicketPrice: 250,
		SeatLayout:  model.SeatLayout{Rows: 2, Columns: 3},
	}
	m.grid = booking.BuildFullGrid(m.inventory.SeatLayout, nil)
	m.selection = booking.NewSelection(250)
	m.showID = "s1"
	return m
}

func TestSeatKey_ToggleAndTotal(t *testing.T) {
	m := newSeatModel()

	m, _, _ = m.handleSeatKey(tea.KeyMsg{Type: tea.KeySpace})
	m, _, _ = m.handleSeatKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m, _, _ = m.handleSeatKey(tea.KeyMsg{Type: tea.KeySpace})

	seats := m.selection.Seats()
	if len(seats) != 2 || seats[0] != "A1" || seats[1] != "A2" {
		t.Fatalf("expected [A1 A2], got %v", seats)
	}
	if got := m.selection.TotalPrice(); got != 500 {
		t.Fatalf("expected total 500, got %v", got)
	}
}

func TestSeatKey_CursorStaysInBounds(t *testing.T) {
	m := newSeatModel()

	for i := 0; i < 10; i++ {
		m, _, _ = m.handleSeatKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	}
	if m.cursorCol != 2 {
		t.Fatalf("expected cursor clamped at col 2, got %d", m.cursorCol)
	}
	for i := 0; i < 10; i++ {
		m, _, _ = m.handleSeatKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	if m.cursorRow != 1 {
		t.Fatalf("expected cursor clamped at row 1, got %d", m.cursorRow)
	}
}

func TestStartCommit_EmptySelectionShowsNotice(t *testing.T) {
	m := newSeatModel()

	m, cmd, _ := m.startCommit()
	if cmd != nil {
		t.Fatal("empty selection must not issue a command")
	}
	if m.notice != "Please select at least one seat." {
		t.Fatalf("unexpected notice %q", m.notice)
	}
}

func TestStartCommit_InFlightBlocksResubmission(t *testing.T) {
	m := newSeatModel()
	m.auth.ResolveAuthenticated(model.User{Id: "u1", Name: "Asha"})
	m.selection.Toggle("A1", false)
	m.committing = true

	_, cmd, _ := m.startCommit()
	if cmd != nil {
		t.Fatal("a commit in flight must swallow the keypress")
	}
}

func TestStartCommit_SnapshotsOnUpdateLoop(t *testing.T) {
	m := newSeatModel()
	m.auth.ResolveAuthenticated(model.User{Id: "u1", Name: "Asha"})
	m.selection.Toggle("A1", false)

	m, cmd, _ := m.startCommit()
	if cmd == nil {
		t.Fatal("expected a commit command")
	}
	// the phase flips before the command goroutine ever runs; the command
	// itself carries only the snapshotted seats and total
	if m.selection.Phase() != booking.PhaseCommitting {
		t.Fatalf("expected Committing, got %v", m.selection.Phase())
	}
	if !m.committing {
		t.Fatal("expected the in-flight flag to be set")
	}
}

func TestCommitConflict_KeepsSelection(t *testing.T) {
	m := newSeatModel()
	m.selection.Toggle("A1", false)
	m.selection.Toggle("A2", false)
	_ = m.selection.BeginCommit()

	updated, _ := m.Update(commitMsg{result: booking.CommitResult{
		Kind:    booking.CommitConflict,
		Message: "Seat A1 is already booked.",
	}})
	m = updated.(appModel)

	if m.state != stateSeatSelection {
		t.Fatalf("conflict must stay on the seat view, got state %d", m.state)
	}
	if m.selection.Phase() != booking.PhaseRejected {
		t.Fatalf("expected Rejected, got %v", m.selection.Phase())
	}
	if m.selection.Count() != 2 {
		t.Fatalf("conflict must keep the picks, got %d", m.selection.Count())
	}
	if m.notice != "Seat A1 is already booked." {
		t.Fatalf("unexpected notice %q", m.notice)
	}
}

func TestCommitSuccess_MovesToPaymentChoice(t *testing.T) {
	m := newSeatModel()
	m.selection.Toggle("A1", false)
	_ = m.selection.BeginCommit()

	updated, _ := m.Update(commitMsg{result: booking.CommitResult{
		Kind: booking.CommitSuccess,
		Booking: model.Booking{
			BookingId:     "b1",
			MovieName:     "Interstellar",
			SelectedSeats: []string{"A1"},
			TotalPrice:    250,
		},
	}})
	m = updated.(appModel)

	if m.state != statePaymentChoice {
		t.Fatalf("expected payment choice, got state %d", m.state)
	}
	if !m.hasTicket || m.ticket.BookingId != "b1" {
		t.Fatalf("expected ticket b1, got %+v", m.ticket)
	}
	if m.selection.Phase() != booking.PhaseConfirmed || m.selection.Count() != 0 {
		t.Fatalf("expected a confirmed empty selection, got phase %v count %d",
			m.selection.Phase(), m.selection.Count())
	}
}

func TestSeatsRefresh_PrunesLostSeats(t *testing.T) {
	m := newSeatModel()
	m.selection.Toggle("A1", false)
	m.selection.Toggle("A2", false)
	_ = m.selection.BeginCommit()
	m.selection.Reject()

	updated, _ := m.Update(seatsRefreshMsg{
		showID: "s1",
		inventory: model.SeatInventory{
			TicketPrice: 250,
			SeatLayout:  model.SeatLayout{Rows: 2, Columns: 3},
			Seats:       []model.Seat{{Id: "A1", IsBooked: true}},
		},
	})
	m = updated.(appModel)

	if m.selection.Contains("A1") {
		t.Fatal("a seat booked by someone else must leave the selection")
	}
	if !m.selection.Contains("A2") {
		t.Fatal("the untouched pick must survive the refresh")
	}
	if !strings.Contains(m.notice, "A1") {
		t.Fatalf("expected the notice to name the lost seat, got %q", m.notice)
	}

	// the survivor resubmits cleanly
	if err := m.selection.BeginCommit(); err != nil {
		t.Fatalf("expected retry after the refresh, got %v", err)
	}
}

func TestVerify_SettledBookingKeepsItsStatus(t *testing.T) {
	m := newTestModel()
	m.hasTicket = true
	m.ticket = model.Booking{
		BookingId:     "b1",
		PaymentStatus: string(booking.PaymentPaidAtTheater),
	}

	updated, _ := m.Update(verifyMsg{message: "Payment successful"})
	m = updated.(appModel)

	if m.ticket.PaymentStatus != string(booking.PaymentPaidAtTheater) {
		t.Fatalf("a settled booking must not be relabeled, got %q", m.ticket.PaymentStatus)
	}
}

func TestEnterConfirmation_NoTicketRedirectsToBookings(t *testing.T) {
	m := newTestModel()
	m.hasTicket = false

	m, cmd := m.enterConfirmation()
	if m.state != stateLoadingBookings {
		t.Fatalf("expected bookings redirect, got state %d", m.state)
	}
	if cmd == nil {
		t.Fatal("expected a bookings fetch command")
	}
}

func TestCountdown_AnyKeyStopsAutoRedirect(t *testing.T) {
	m := newTestModel()
	m.ticket = model.Booking{BookingId: "b1"}
	m.hasTicket = true
	m, _ = m.enterConfirmation()

	if m.countdownLeft != confirmationSecs {
		t.Fatalf("expected countdown %d, got %d", confirmationSecs, m.countdownLeft)
	}

	m, _, _ = m.handleConfirmationKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !m.countdownOff {
		t.Fatal("expected the countdown to stop")
	}

	updated, cmd := m.Update(countdownMsg{seq: m.countdownSeq})
	m = updated.(appModel)
	if cmd != nil || m.state != stateConfirmation {
		t.Fatal("a stopped countdown must not tick or navigate")
	}
}

func TestCountdown_ExpiryNavigatesToBookings(t *testing.T) {
	m := newTestModel()
	m.ticket = model.Booking{BookingId: "b1"}
	m.hasTicket = true
	m, _ = m.enterConfirmation()
	m.countdownLeft = 1

	updated, _ := m.Update(countdownMsg{seq: m.countdownSeq})
	m = updated.(appModel)
	if m.state != stateLoadingBookings {
		t.Fatalf("expected bookings after expiry, got state %d", m.state)
	}
}

func TestPickDate_SameDaySkipsRefetch(t *testing.T) {
	m := newBrowseModel(sampleShows())
	day := booking.TruncateDate(time.Now())
	m.date = day
	seqBefore := m.reqSeq

	m, _, _ = m.pickDate(day)
	if m.reqSeq != seqBefore {
		t.Fatal("same (movie, date) must not refetch")
	}
	if m.state != stateBrowseShows {
		t.Fatalf("expected browse state, got %d", m.state)
	}

	m, _, _ = m.pickDate(day.AddDate(0, 0, 1))
	if m.reqSeq != seqBefore+1 {
		t.Fatal("a date change must refetch")
	}
	if m.state != stateLoadingShows {
		t.Fatalf("expected loading state, got %d", m.state)
	}
}

func TestGoBack_DiscardsSelection(t *testing.T) {
	m := newSeatModel()
	m.selection.Toggle("A1", false)

	m, _, _ = m.goBack()
	if m.state != stateBrowseShows {
		t.Fatalf("expected browse state, got %d", m.state)
	}
	if m.selection != nil {
		t.Fatal("leaving the seat view must discard the selection")
	}
}

func TestDateIndex(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if got := dateIndex(base, base.AddDate(0, 0, 3)); got != 3 {
		t.Fatalf("expected index 3, got %d", got)
	}
	if got := dateIndex(base, base.AddDate(0, 0, 9)); got != 0 {
		t.Fatalf("out of range date should fall back to 0, got %d", got)
	}
}

func TestBuildDateItems_FiveConsecutiveDays(t *testing.T) {
	items := buildDateItems(time.Date(2026, 8, 30, 23, 50, 0, 0, time.UTC))
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	first := items[0].(dateItem)
	last := items[4].(dateItem)
	if first.date.Day() != 30 || last.date.Day() != 3 {
		t.Fatalf("unexpected range %v .. %v", first.date, last.date)
	}
}

func TestBuildMovieItems_RecentsFloatToTop(t *testing.T) {
	movies := []model.Movie{
		{Id: "m1", Title: "Dune"},
		{Id: "m2", Title: "Oppenheimer"},
		{Id: "m3", Title: "Interstellar"},
	}
	recents := []store.RecentMovie{
		{ID: "m3", Title: "Interstellar"},
		{ID: "m1", Title: "Dune"},
	}

	items := buildMovieItems(movies, recents)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	var order []string
	for _, it := range items {
		order = append(order, it.(movieItem).movie.Id)
	}
	want := []string{"m3", "m1", "m2"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}
