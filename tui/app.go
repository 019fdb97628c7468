package tui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"cinebook-cli/booking"
	"cinebook-cli/config"
	"cinebook-cli/model"
	"cinebook-cli/service"
	"cinebook-cli/session"
	"cinebook-cli/store"
)

type appState int

const (
	stateCheckingSession appState = iota
	stateLoadingMovies
	stateSelectMovie
	stateSelectDate
	stateLoadingShows
	stateBrowseShows
	stateLoadingSeats
	stateSeatSelection
	statePaymentChoice
	stateCreatingOrder
	stateAwaitPayment
	stateVerifyingPayment
	statePaymentFailed
	stateConfirmation
	stateLoadingBookings
	stateBookings
	stateError
)

const (
	searchDebounce   = 300 * time.Millisecond
	confirmationSecs = 8
)

type appModel struct {
	cfg       config.Config
	client    *service.Client
	submitter *booking.Submitter
	auth      *session.Context

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movies    []model.Movie
	movieList list.Model
	movie     model.Movie

	date        time.Time
	dateList    list.Model
	shows       []model.Show
	groups      []booking.TheaterShows
	visible     []booking.TheaterShows
	searchTerm  string
	searchSeq   int
	showCursor  int
	showsLoaded bool

	showID          string
	inventory       model.SeatInventory
	grid            [][]model.Seat
	selection       *booking.Selection
	cursorRow       int
	cursorCol       int
	showSeatNumbers bool
	committing      bool

	payList       list.Model
	ticket        model.Booking
	hasTicket     bool
	order         model.PaymentOrder
	payMessage    string
	countdownLeft int
	countdownSeq  int
	countdownOff  bool

	records     []model.BookingRecord
	bookingList list.Model

	// responses carrying a stale sequence are dropped so an old fetch can
	// never overwrite state derived from a newer one
	reqSeq int

	notice  string
	spinner spinner.Model
}

type sessionMsg struct {
	user model.User
	err  error
}

type moviesMsg struct {
	movies  []model.Movie
	recents []store.RecentMovie
	err     error
}

type showsMsg struct {
	shows []model.Show
	seq   int
	err   error
}

type seatsMsg struct {
	inventory model.SeatInventory
	showID    string
	seq       int
	err       error
}

type seatsRefreshMsg struct {
	inventory model.SeatInventory
	showID    string
}

type commitMsg struct {
	result booking.CommitResult
}

type orderMsg struct {
	order model.PaymentOrder
	err   error
}

type verifyMsg struct {
	message string
	err     error
}

type bookingsMsg struct {
	records []model.BookingRecord
	err     error
}

type debounceMsg struct {
	seq int
}

type countdownMsg struct {
	seq int
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

func New(cfg config.Config) tea.Model {
	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	client := service.NewClient(cfg.APIBaseURL, httpClient)
	if persisted, err := store.LoadSession(); err == nil && persisted.Cookie != "" {
		client.SetSessionCookie(persisted.Cookie)
	}

	m := appModel{
		cfg:       cfg,
		client:    client,
		submitter: booking.NewSubmitter(client),
		auth:      session.New(),
		state:     stateCheckingSession,
		date:      booking.TruncateDate(time.Now()),
	}

	m.movieList = newList("Select Movie")
	m.dateList = newList("Select Date")
	m.payList = newList("Payment")
	m.payList.SetFilteringEnabled(false)
	m.bookingList = newList("Your Bookings")
	m.showSeatNumbers = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	// the status flips here, before the command goroutine spawns, so the
	// session context is only ever written from the update loop
	_ = m.auth.BeginCheck()
	return tea.Batch(m.checkSessionCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateBrowseShows && m.handleSearchInput(msg) {
			m.searchSeq++
			return m, debounceCmd(m.searchSeq)
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case sessionMsg:
		if msg.err != nil {
			m.auth.ResolveAnonymous()
		} else {
			m.auth.ResolveAuthenticated(msg.user)
		}
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)

	case moviesMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.movies = msg.movies
		m.movieList.SetItems(buildMovieItems(msg.movies, msg.recents))
		m.state = stateSelectMovie
		return m, nil

	case showsMsg:
		if msg.seq != m.reqSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateSelectMovie)
		}
		m.shows = msg.shows
		m.groups = booking.GroupByTheater(msg.shows)
		m.applyLocationFilter()
		m.showsLoaded = true
		m.state = stateBrowseShows
		return m, nil

	case debounceMsg:
		// only the newest pending tick applies the filter
		if msg.seq != m.searchSeq || m.state != stateBrowseShows {
			return m, nil
		}
		m.applyLocationFilter()
		return m, nil

	case seatsMsg:
		if msg.seq != m.reqSeq || msg.showID != m.showID {
			return m, nil
		}
		if msg.err != nil {
			if service.IsNotFound(msg.err) {
				return m, errWithReturnCmd(errors.New("this show no longer exists"), stateBrowseShows)
			}
			return m, errWithReturnCmd(msg.err, stateBrowseShows)
		}
		m.inventory = msg.inventory
		m.grid = booking.BuildFullGrid(msg.inventory.SeatLayout, msg.inventory.Seats)
		if m.grid == nil {
			return m, errWithReturnCmd(errors.New("this show has no seat layout"), stateBrowseShows)
		}
		m.selection = booking.NewSelection(msg.inventory.TicketPrice)
		m.cursorRow, m.cursorCol = 0, 0
		m.state = stateSeatSelection
		return m, nil

	case seatsRefreshMsg:
		if msg.showID != m.showID || m.state != stateSeatSelection {
			return m, nil
		}
		m.inventory = msg.inventory
		if grid := booking.BuildFullGrid(msg.inventory.SeatLayout, msg.inventory.Seats); grid != nil {
			m.grid = grid
		}
		if m.selection != nil {
			taken := make(map[string]bool)
			for _, row := range m.grid {
				for _, seat := range row {
					if seat.IsBooked {
						taken[seat.Id] = true
					}
				}
			}
			dropped := m.selection.Prune(func(id string) bool { return taken[id] })
			if len(dropped) > 0 {
				m.notice = "No longer available, removed from your selection: " + strings.Join(dropped, ", ")
			}
		}
		return m, nil

	case commitMsg:
		m.committing = false
		if m.selection != nil {
			if msg.result.Kind == booking.CommitSuccess {
				m.selection.Confirm()
			} else if m.selection.Phase() == booking.PhaseCommitting {
				m.selection.Reject()
			}
		}
		return m.applyCommitResult(msg.result)

	case orderMsg:
		if msg.err != nil {
			m.payMessage = service.ErrorMessage(msg.err)
			m.state = statePaymentFailed
			return m, nil
		}
		m.order = msg.order
		m.state = stateAwaitPayment
		return m, nil

	case verifyMsg:
		if msg.err != nil {
			// the booking stays pending; a failed payment never releases
			// the seats, so the user can retry without re-booking
			m.payMessage = service.ErrorMessage(msg.err)
			m.state = statePaymentFailed
			return m, nil
		}
		status := booking.ParsePaymentStatus(m.ticket.PaymentStatus)
		if next, err := status.Transition(booking.PaymentPaidOnline); err == nil {
			m.ticket.PaymentStatus = string(next)
		}
		m.payMessage = msg.message
		return m.enterConfirmation()

	case bookingsMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateSelectMovie)
		}
		m.records = msg.records
		m.bookingList.SetItems(buildBookingItems(msg.records))
		m.state = stateBookings
		return m, nil

	case countdownMsg:
		if m.state != stateConfirmation || m.countdownOff || msg.seq != m.countdownSeq {
			return m, nil
		}
		m.countdownLeft--
		if m.countdownLeft <= 0 {
			return m.gotoBookings()
		}
		return m, countdownCmd(m.countdownSeq)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case statePaymentChoice:
		m.payList, cmd = m.payList.Update(msg)
	case stateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if m.listFiltering() {
			return m, nil, false
		}
		return m.goBack()
	case "ctrl+b":
		if m.state == stateSelectMovie || m.state == stateBrowseShows {
			next, cmd := m.gotoBookings()
			return next, cmd, true
		}
	case "ctrl+d":
		if m.state == stateSelectMovie || m.state == stateBrowseShows {
			m.dateList.SetItems(buildDateItems(time.Now()))
			m.dateList.Select(dateIndex(time.Now(), m.date))
			m.state = stateSelectDate
			return m, nil, true
		}
	}

	switch m.state {
	case stateSeatSelection:
		return m.handleSeatKey(msg)
	case stateBrowseShows:
		return m.handleBrowseKey(msg)
	case stateConfirmation:
		return m.handleConfirmationKey(msg)
	case stateAwaitPayment:
		return m.handleAwaitPaymentKey(msg)
	case statePaymentFailed:
		switch msg.String() {
		case "r":
			m.state = stateVerifyingPayment
			return m, tea.Batch(m.verifyPaymentCmd(), m.spinner.Tick), true
		case "enter":
			next, cmd := m.enterConfirmation()
			return next, cmd, true
		}
		return m, nil, true
	}

	if msg.Type == tea.KeyEnter {
		if m.listFiltering() {
			return m, nil, false
		}
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			_ = store.RememberMovie(m.movie)
			return m.startShowFetch()
		case stateSelectDate:
			item, ok := m.dateList.SelectedItem().(dateItem)
			if !ok {
				return m, nil, true
			}
			return m.pickDate(item.date)
		case statePaymentChoice:
			item, ok := m.payList.SelectedItem().(payItem)
			if !ok {
				return m, nil, true
			}
			if item.online {
				m.state = stateCreatingOrder
				return m, tea.Batch(m.createOrderCmd(), m.spinner.Tick), true
			}
			next, cmd := m.enterConfirmation()
			return next, cmd, true
		}
	}
	return m, nil, false
}

// pickDate re-fetches only when the (movie, date) pair actually changed;
// a same-day re-pick keeps the shows already loaded.
func (m appModel) pickDate(date time.Time) (appModel, tea.Cmd, bool) {
	if m.movie.Id == "" {
		m.date = date
		m.state = stateSelectMovie
		return m, nil, true
	}
	prev := booking.BrowseParams{MovieID: m.movie.Id, Date: m.date, SearchTerm: m.searchTerm}
	next := booking.BrowseParams{MovieID: m.movie.Id, Date: date, SearchTerm: m.searchTerm}
	m.date = date
	if m.showsLoaded && !booking.ShouldRefetch(prev, next) {
		m.applyLocationFilter()
		m.state = stateBrowseShows
		return m, nil, true
	}
	return m.startShowFetch()
}

func (m appModel) handleBrowseKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	count := m.visibleShowCount()
	switch msg.String() {
	case "left", "h", "up", "k":
		if m.showCursor > 0 {
			m.showCursor--
		}
		return m, nil, true
	case "right", "l", "down", "j":
		if m.showCursor < count-1 {
			m.showCursor++
		}
		return m, nil, true
	case "enter":
		show, ok := m.selectedShow()
		if !ok {
			return m, nil, true
		}
		return m.startSeatFetch(show)
	}
	return m, nil, true
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	rows := len(m.grid)
	if rows == 0 {
		return m, nil, true
	}
	cols := len(m.grid[0])

	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < rows-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < cols-1 {
			m.cursorCol++
		}
	case "n":
		m.showSeatNumbers = !m.showSeatNumbers
	case " ", "enter":
		if m.committing {
			return m, nil, true
		}
		seat := m.grid[m.cursorRow][m.cursorCol]
		m.selection.Toggle(seat.Id, seat.IsBooked)
		m.notice = ""
	case "b":
		return m.startCommit()
	}
	return m, nil, true
}

func (m appModel) handleAwaitPaymentKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "o":
		return m, openURLCmd(m.cfg.APIBaseURL + "/payment/checkout?order_id=" + m.order.OrderId), true
	case "enter":
		m.state = stateVerifyingPayment
		return m, tea.Batch(m.verifyPaymentCmd(), m.spinner.Tick), true
	}
	return m, nil, true
}

func (m appModel) handleConfirmationKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "enter", "v":
		next, cmd := m.gotoBookings()
		return next, cmd, true
	default:
		// any other interaction stops the auto-redirect
		m.countdownOff = true
		return m, nil, true
	}
}

// startCommit fires the single reservation request. A commit already in
// flight swallows the keypress, so a double press cannot double-book. The
// selection is snapshotted here, on the update goroutine, and the command
// only carries values: all phase transitions happen in Update.
func (m appModel) startCommit() (appModel, tea.Cmd, bool) {
	if m.committing {
		return m, nil, true
	}
	if m.selection.Count() == 0 {
		m.notice = "Please select at least one seat."
		return m, nil, true
	}
	if !m.auth.Authenticated() {
		m.notice = "Sign in first: run 'cinebook login' in another terminal, then restart."
		return m, nil, true
	}
	if err := m.selection.BeginCommit(); err != nil {
		m.notice = err.Error()
		return m, nil, true
	}
	m.committing = true
	m.notice = ""
	cmd := m.commitCmd(m.showID, m.selection.Seats(), m.selection.TotalPrice())
	return m, tea.Batch(cmd, m.spinner.Tick), true
}

func (m appModel) applyCommitResult(result booking.CommitResult) (tea.Model, tea.Cmd) {
	switch result.Kind {
	case booking.CommitSuccess:
		m.ticket = result.Booking
		m.hasTicket = true
		m.payList.SetItems(buildPayItems(m.ticket.TotalPrice))
		m.payList.Select(0)
		m.state = statePaymentChoice
		return m, nil
	case booking.CommitConflict:
		// somebody else got there first; the picks stay so the user can
		// adjust, and the grid refreshes to show what is actually free
		m.notice = result.Message
		if m.notice == "" {
			m.notice = "One of your seats was just booked by someone else. Adjust and try again."
		}
		return m, m.refreshSeatsCmd()
	case booking.CommitNotFound:
		return m, errWithReturnCmd(errors.New("this show no longer exists"), stateBrowseShows)
	case booking.CommitTimeout:
		m.notice = "The booking request timed out. Your seats are still selected, try again."
		return m, nil
	case booking.CommitValidationFailure:
		m.notice = result.Message
		return m, nil
	default:
		m.notice = "Booking failed: " + result.Message
		return m, nil
	}
}

func (m appModel) enterConfirmation() (appModel, tea.Cmd) {
	if !m.hasTicket {
		// never render an empty ticket: with no booking on hand the only
		// sensible destination is the bookings history
		return m.gotoBookings()
	}
	m.state = stateConfirmation
	m.countdownLeft = confirmationSecs
	m.countdownSeq++
	m.countdownOff = false
	return m, countdownCmd(m.countdownSeq)
}

func (m appModel) gotoBookings() (appModel, tea.Cmd) {
	m.hasTicket = false
	m.state = stateLoadingBookings
	return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick)
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateSelectDate:
		if m.showsLoaded {
			m.state = stateBrowseShows
		} else {
			m.state = stateSelectMovie
		}
	case stateBrowseShows:
		if m.searchTerm != "" {
			m.searchTerm = ""
			m.applyLocationFilter()
			return m, nil, true
		}
		m.showsLoaded = false
		m.state = stateSelectMovie
	case stateSeatSelection:
		// leaving the page discards the selection
		m.selection = nil
		m.showID = ""
		m.notice = ""
		m.state = stateBrowseShows
	case statePaymentChoice, stateAwaitPayment, statePaymentFailed:
		// the reservation is already committed; backing out keeps it
		// pending and shows the ticket instead of losing it
		next, cmd := m.enterConfirmation()
		return next, cmd, true
	case stateConfirmation:
		next, cmd := m.gotoBookings()
		return next, cmd, true
	case stateBookings:
		m.state = stateSelectMovie
	case stateError:
		m.state = m.lastState
	default:
		return m, nil, true
	}
	return m, nil, true
}

// handleSearchInput feeds printable keys into the location search box.
// Navigation runes fall through to the cursor handling.
func (m *appModel) handleSearchInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		text := string(msg.Runes)
		if text == "" || isBrowseNavRune(text) {
			return false
		}
		m.searchTerm += text
		return true
	case tea.KeySpace:
		m.searchTerm += " "
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if m.searchTerm == "" {
			return false
		}
		m.searchTerm = trimLastRune(m.searchTerm)
		return true
	default:
		return false
	}
}

func isBrowseNavRune(s string) bool {
	switch s {
	case "j", "k", "h", "l":
		return true
	}
	return false
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

// applyLocationFilter re-derives the visible theater groups from shows
// already fetched; it never hits the network.
func (m *appModel) applyLocationFilter() {
	m.visible = booking.FilterByLocation(m.groups, m.searchTerm)
	if m.showCursor >= m.visibleShowCount() {
		m.showCursor = 0
	}
}

func (m appModel) listFiltering() bool {
	switch m.state {
	case stateSelectMovie:
		return m.movieList.FilterState() == list.Filtering
	case stateBookings:
		return m.bookingList.FilterState() == list.Filtering
	case stateSelectDate:
		return m.dateList.FilterState() == list.Filtering
	}
	return false
}

func (m appModel) visibleShowCount() int {
	count := 0
	for _, group := range m.visible {
		count += len(group.Shows)
	}
	return count
}

func (m appModel) selectedShow() (model.Show, bool) {
	index := 0
	for _, group := range m.visible {
		for _, show := range group.Shows {
			if index == m.showCursor {
				return show, true
			}
			index++
		}
	}
	return model.Show{}, false
}

func (m appModel) startShowFetch() (appModel, tea.Cmd, bool) {
	m.reqSeq++
	m.showsLoaded = false
	m.showCursor = 0
	m.state = stateLoadingShows
	return m, tea.Batch(m.fetchShowsCmd(m.movie.Id, m.date, m.reqSeq), m.spinner.Tick), true
}

func (m appModel) startSeatFetch(show model.Show) (appModel, tea.Cmd, bool) {
	m.reqSeq++
	m.showID = show.Id
	m.notice = ""
	m.state = stateLoadingSeats
	return m, tea.Batch(m.fetchSeatsCmd(show.Id, m.reqSeq), m.spinner.Tick), true
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateCheckingSession, stateLoadingMovies, stateLoadingShows,
		stateLoadingSeats, stateCreatingOrder, stateVerifyingPayment,
		stateLoadingBookings:
		return true
	}
	return m.committing
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
	m.payList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateCheckingSession, stateLoadingMovies, stateLoadingShows, stateLoadingBookings:
		return stateSelectMovie
	case stateLoadingSeats:
		return stateBrowseShows
	default:
		return state
	}
}

func dateIndex(base time.Time, selected time.Time) int {
	for i, day := range booking.NextDays(base, 5) {
		if booking.SameDay(day, selected) {
			return i
		}
	}
	return 0
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithReturnCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func countdownCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownMsg{seq: seq}
	})
}

func (m appModel) checkSessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		user, err := m.client.CheckUser(ctx)
		return sessionMsg{user: user, err: err}
	}
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		recents, _ := store.LoadRecentMovies()
		if cached, fresh, err := store.LoadMovieCache(); err == nil && fresh && len(cached) > 0 {
			return moviesMsg{movies: cached, recents: recents}
		}
		ctx := context.Background()
		movies, err := m.client.GetMovies(ctx)
		if err == nil && len(movies) > 0 {
			_ = store.SaveMovieCache(movies)
		}
		return moviesMsg{movies: movies, recents: recents, err: err}
	}
}

func (m appModel) fetchShowsCmd(movieID string, date time.Time, seq int) tea.Cmd {
	return func() tea.Msg {
		dateKey := date.Format(time.DateOnly)
		if cached, fresh, err := store.LoadShowCache(movieID, dateKey); err == nil && fresh && len(cached) > 0 {
			return showsMsg{shows: cached, seq: seq}
		}
		ctx := context.Background()
		shows, err := m.client.GetShowsByDate(ctx, movieID, date)
		if err != nil {
			// no shows for the day comes back as a 404; render the empty
			// schedule rather than an error screen
			if service.IsNotFound(err) {
				return showsMsg{shows: nil, seq: seq}
			}
			return showsMsg{seq: seq, err: err}
		}
		if len(shows) > 0 {
			_ = store.SaveShowCache(movieID, dateKey, shows)
		}
		return showsMsg{shows: shows, seq: seq}
	}
}

func (m appModel) fetchSeatsCmd(showID string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		inventory, err := m.client.GetShowSeats(ctx, showID)
		return seatsMsg{inventory: inventory, showID: showID, seq: seq, err: err}
	}
}

// refreshSeatsCmd re-reads the seat map after a conflict so freshly booked
// seats show up; the update loop then drops any picks that were lost.
func (m appModel) refreshSeatsCmd() tea.Cmd {
	showID := m.showID
	return func() tea.Msg {
		ctx := context.Background()
		inventory, err := m.client.GetShowSeats(ctx, showID)
		if err != nil {
			// keep the stale grid rather than replacing the screen
			return nil
		}
		return seatsRefreshMsg{inventory: inventory, showID: showID}
	}
}

func (m appModel) commitCmd(showID string, seats []string, totalPrice float64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result := m.submitter.Commit(ctx, showID, seats, totalPrice)
		return commitMsg{result: result}
	}
}

func (m appModel) createOrderCmd() tea.Cmd {
	amount := m.ticket.TotalPrice
	bookingID := m.ticket.BookingId
	return func() tea.Msg {
		ctx := context.Background()
		order, err := m.client.CreatePaymentOrder(ctx, amount, bookingID)
		return orderMsg{order: order, err: err}
	}
}

func (m appModel) verifyPaymentCmd() tea.Cmd {
	orderID := m.order.OrderId
	bookingID := m.ticket.BookingId
	return func() tea.Msg {
		ctx := context.Background()
		message, err := m.client.VerifyPayment(ctx, model.PaymentVerification{
			OrderId:   orderID,
			PaymentId: "pay_" + uuid.NewString(),
			Signature: "sig_" + uuid.NewString(),
			BookingId: bookingID,
		})
		return verifyMsg{message: message, err: err}
	}
}

func (m appModel) fetchBookingsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		records, err := m.client.GetBookings(ctx)
		return bookingsMsg{records: records, err: err}
	}
}
