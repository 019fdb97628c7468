package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinebook-cli/booking"
	"cinebook-cli/model"
	"cinebook-cli/store"
)

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateCheckingSession, stateLoadingMovies, stateLoadingShows,
		stateLoadingSeats, stateCreatingOrder, stateVerifyingPayment,
		stateLoadingBookings:
		return header + "\n\n" + m.loadingView()
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectDate:
		return header + "\n\n" + m.dateList.View()
	case stateBrowseShows:
		return header + "\n\n" + m.browseView()
	case stateSeatSelection:
		return header + "\n\n" + m.seatSelectionView()
	case statePaymentChoice:
		return header + "\n\n" + m.payList.View()
	case stateAwaitPayment:
		return header + "\n\n" + m.awaitPaymentView()
	case statePaymentFailed:
		return header + "\n\n" + m.paymentFailedView()
	case stateConfirmation:
		return header + "\n\n" + m.confirmationView()
	case stateBookings:
		return header + "\n\n" + m.bookingsView()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("CineBook")
	sub := []string{}
	if m.auth.Authenticated() {
		sub = append(sub, "User: "+m.auth.User().Name)
	}
	if m.movie.Title != "" {
		sub = append(sub, "Movie: "+m.movie.Title)
	}
	if !m.date.IsZero() && m.state != stateCheckingSession && m.state != stateLoadingMovies {
		sub = append(sub, "Date: "+m.date.Format(time.DateOnly))
	}
	if m.state == stateSeatSelection || m.state == statePaymentChoice {
		if m.inventory.TheaterName != "" {
			sub = append(sub, "Theater: "+m.inventory.TheaterName)
		}
		if m.inventory.ShowTime != "" {
			sub = append(sub, "Show: "+m.inventory.ShowTime)
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back"
	switch m.state {
	case stateSelectMovie:
		hints = "ctrl+c quit • type to filter • enter select • ctrl+d pick date • ctrl+b my bookings"
	case stateBrowseShows:
		hints = "ctrl+c quit • esc back • type to search location • arrows pick show • enter seats • ctrl+d pick date"
	case stateSeatSelection:
		hints = "arrows/hjkl move • space toggle seat • b book • n seat numbers • esc back"
	case statePaymentChoice:
		hints = "enter choose • esc decide later"
	case stateBookings:
		hints = "type to filter • esc back • ctrl+c quit"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateCheckingSession:
		title = "Checking session"
	case stateLoadingMovies:
		title = "Loading movies"
	case stateLoadingShows:
		title = "Loading shows"
	case stateLoadingSeats:
		title = "Loading seats"
	case stateCreatingOrder:
		title = "Creating payment order"
	case stateVerifyingPayment:
		title = "Verifying payment"
	case stateLoadingBookings:
		title = "Loading your bookings"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) browseView() string {
	var b strings.Builder

	search := "Location: "
	if m.searchTerm == "" {
		search += hint("(type to search)")
	} else {
		search += m.searchTerm + "▌"
	}
	b.WriteString(search)
	b.WriteString("\n\n")

	if len(m.shows) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("No shows are scheduled for this date."))
		b.WriteString("\n\n")
		b.WriteString(hint("Press ctrl+d to pick another date, or esc to choose another movie."))
		return b.String()
	}
	if len(m.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("No theaters match your search."))
		b.WriteString("\n\n")
		b.WriteString(hint("Press esc to clear the search."))
		return b.String()
	}

	theaterStyle := lipgloss.NewStyle().Bold(true)
	chip := lipgloss.NewStyle().Padding(0, 1)
	chipSelected := chip.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("63")).
		Bold(true)

	index := 0
	for _, group := range m.visible {
		b.WriteString(theaterStyle.Render(group.Theater.Name))
		if group.Theater.Location != "" {
			b.WriteString("  " + hint(group.Theater.Location))
		}
		b.WriteString("\n")
		chips := make([]string, 0, len(group.Shows))
		for _, show := range group.Shows {
			label := show.FormattedTime
			if label == "" {
				label = show.Date
			}
			label += " · " + formatPrice(show.TicketPrice)
			if index == m.showCursor {
				chips = append(chips, chipSelected.Render(label))
			} else {
				chips = append(chips, chip.Render(label))
			}
			index++
		}
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) seatSelectionView() string {
	body := m.renderSeatGrid()

	var footer strings.Builder
	footer.WriteString("\n")
	seats := m.selection.Seats()
	if len(seats) == 0 {
		footer.WriteString(hint("No seats selected."))
	} else {
		footer.WriteString(fmt.Sprintf("Selected: %s", strings.Join(seats, ", ")))
		footer.WriteString("  •  ")
		footer.WriteString(lipgloss.NewStyle().Bold(true).Render("Total: " + formatPrice(m.selection.TotalPrice())))
	}
	footer.WriteString("\n")
	if m.committing {
		footer.WriteString("\n" + m.spinner.View() + " Booking your seats...")
	}
	if m.notice != "" {
		footer.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.notice))
	}
	return body + footer.String()
}

func (m appModel) renderSeatGrid() string {
	rows := len(m.grid)
	if rows == 0 {
		return "No seat data."
	}
	cols := len(m.grid[0])

	cellWidth := 2
	if m.showSeatNumbers {
		for _, row := range m.grid {
			for _, seat := range row {
				if len(seat.Id) > cellWidth {
					cellWidth = len(seat.Id)
				}
			}
		}
	}

	available := 0
	booked := 0
	for _, row := range m.grid {
		for _, seat := range row {
			if seat.IsBooked {
				booked++
			} else {
				available++
			}
		}
	}

	styleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")).Bold(true)
	styleCursor := lipgloss.NewStyle().Reverse(true).Bold(true)

	var b strings.Builder
	rowWidth := 2
	for r := 0; r < rows; r++ {
		label := string(rune('A' + r))
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < cols; c++ {
			seat := m.grid[r][c]
			text := "[]"
			if seat.IsBooked {
				text = "XX"
			}
			if m.showSeatNumbers {
				text = seat.Id
			}
			rendered := padCell(text, cellWidth)
			switch {
			case r == m.cursorRow && c == m.cursorCol:
				rendered = styleCursor.Render(rendered)
			case seat.IsBooked:
				// booked wins over a stale pick
				rendered = styleBooked.Render(rendered)
			case m.selection.Contains(seat.Id):
				rendered = styleSelected.Render(rendered)
			default:
				rendered = styleAvailable.Render(rendered)
			}
			b.WriteString(rendered)
			if c < cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	gridWidth := cols*(cellWidth+1) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	screenBar := screenBarBlock(gridWidth, "SCREEN")
	indent := strings.Repeat(" ", rowWidth+1)

	b.WriteString("\n")
	b.WriteString(indent + screenBorderStyle.Render(screenBar.top) + "\n")
	b.WriteString(indent + screenStyle.Render(screenBar.mid) + "\n")
	b.WriteString(indent + screenBorderStyle.Render(screenBar.bot) + "\n\n")

	legend := "Legend: [] available • XX booked • highlighted = selected"
	if m.showSeatNumbers {
		legend = "Legend: green available • red booked • highlighted = selected • n to hide numbers"
	}
	counts := fmt.Sprintf("Available: %d • Booked: %d • %s per seat", available, booked, formatPrice(m.inventory.TicketPrice))
	return b.String() + hint(legend) + "\n" + hint(counts)
}

func (m appModel) awaitPaymentView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Complete your payment"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Order: %s\n", m.order.OrderId))
	b.WriteString(fmt.Sprintf("Amount: %s\n\n", formatPrice(m.ticket.TotalPrice)))
	b.WriteString(hint("o open the payment page • enter I have paid (verify) • esc pay later at the theater"))
	return b.String()
}

func (m appModel) paymentFailedView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Render("Payment failed"))
	b.WriteString("\n\n")
	if m.payMessage != "" {
		b.WriteString(m.payMessage + "\n\n")
	}
	b.WriteString("Your booking is safe and still pending payment.\n\n")
	b.WriteString(hint("r retry verification • enter view ticket • esc view ticket"))
	return b.String()
}

func (m appModel) confirmationView() string {
	headerChip := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("42")).
		Padding(0, 2)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("42")).
		Padding(1, 3)

	label := lipgloss.NewStyle().Faint(true).Width(10)
	line := func(name string, value string) string {
		return label.Render(name) + " " + value
	}

	payStatus := booking.ParsePaymentStatus(m.ticket.PaymentStatus)
	rows := []string{
		line("Movie", lipgloss.NewStyle().Bold(true).Render(m.ticket.MovieName)),
		line("Theater", m.ticket.TheaterName),
		line("When", strings.TrimSpace(m.ticket.ShowDate+" "+m.ticket.ShowTime)),
		line("Seats", strings.Join(m.ticket.SelectedSeats, ", ")),
		line("Total", formatPrice(m.ticket.TotalPrice)),
		line("Payment", payStatus.Label()),
		line("Ref", m.ticket.BookingId),
	}

	ticket := panel.Render(strings.Join(rows, "\n"))

	countdown := hint("Press enter to see all your bookings.")
	if !m.countdownOff {
		countdown = hint(fmt.Sprintf("Taking you to your bookings in %ds (press any key to stay).", m.countdownLeft))
	}

	return headerChip.Render("Booking Confirmed") + "\n\n" + ticket + "\n\n" + countdown
}

func (m appModel) bookingsView() string {
	if len(m.records) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("You have no bookings yet.") +
			"\n\n" + hint("Press esc to browse movies.")
	}
	return m.bookingList.View()
}

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string {
	return i.movie.Title
}

func (i movieItem) Description() string {
	parts := []string{}
	if len(i.movie.Genre) > 0 {
		parts = append(parts, strings.Join(i.movie.Genre, ", "))
	}
	if i.movie.Language != "" {
		parts = append(parts, i.movie.Language)
	}
	if i.movie.Duration != "" {
		parts = append(parts, i.movie.Duration)
	}
	if i.movie.Rating > 0 {
		parts = append(parts, fmt.Sprintf("★ %.1f", i.movie.Rating))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " • ")
}

func (i movieItem) FilterValue() string {
	return i.movie.Title + " " + i.movie.Language + " " + strings.Join(i.movie.Genre, " ")
}

// buildMovieItems orders the catalog with recently browsed movies first.
func buildMovieItems(movies []model.Movie, recents []store.RecentMovie) []list.Item {
	rank := make(map[string]int, len(recents))
	for i, recent := range recents {
		rank[recent.ID] = i
	}

	items := make([]list.Item, 0, len(movies))
	rest := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		if _, ok := rank[movie.Id]; ok {
			items = append(items, movieItem{movie: movie})
		} else {
			rest = append(rest, movieItem{movie: movie})
		}
	}
	sort.SliceStable(items, func(a, b int) bool {
		return rank[items[a].(movieItem).movie.Id] < rank[items[b].(movieItem).movie.Id]
	})
	return append(items, rest...)
}

type dateItem struct {
	date time.Time
}

func (d dateItem) Title() string {
	if booking.SameDay(d.date, time.Now()) {
		return fmt.Sprintf("%s • %s (Today)", d.date.Format("Mon"), d.date.Format("02/01"))
	}
	return fmt.Sprintf("%s • %s", d.date.Format("Mon"), d.date.Format("02/01"))
}

func (d dateItem) Description() string {
	return d.date.Format(time.DateOnly)
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(base time.Time) []list.Item {
	days := booking.NextDays(base, 5)
	items := make([]list.Item, 0, len(days))
	for _, day := range days {
		items = append(items, dateItem{date: day})
	}
	return items
}

type payItem struct {
	online bool
	total  float64
}

func (p payItem) Title() string {
	if p.online {
		return "Pay online now"
	}
	return "Pay at the theater"
}

func (p payItem) Description() string {
	if p.online {
		return fmt.Sprintf("Card or UPI via the payment gateway • %s", formatPrice(p.total))
	}
	return fmt.Sprintf("Reserve now, pay %s at the counter", formatPrice(p.total))
}

func (p payItem) FilterValue() string {
	return p.Title()
}

func buildPayItems(total float64) []list.Item {
	return []list.Item{
		payItem{online: false, total: total},
		payItem{online: true, total: total},
	}
}

type bookingItem struct {
	record model.BookingRecord
}

func (i bookingItem) Title() string {
	return fmt.Sprintf("%s • %s %s", i.record.MovieName, i.record.ShowDate, i.record.ShowTime)
}

func (i bookingItem) Description() string {
	status := booking.ParsePaymentStatus(i.record.PaymentStatus)
	return fmt.Sprintf("%s • Seats %s • %s • %s",
		i.record.TheaterName,
		strings.Join(i.record.SelectedSeats, ", "),
		formatPrice(i.record.TotalPrice),
		status.Label())
}

func (i bookingItem) FilterValue() string {
	return i.record.MovieName + " " + i.record.TheaterName
}

func buildBookingItems(records []model.BookingRecord) []list.Item {
	items := make([]list.Item, 0, len(records))
	for _, record := range records {
		items = append(items, bookingItem{record: record})
	}
	return items
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func formatPrice(price float64) string {
	if price <= 0 {
		return "-"
	}
	return fmt.Sprintf("₹%.2f", price)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}
