package booking

import (
	"fmt"

	"cinebook-cli/model"
)

// SeatID returns the grid identifier for a zero-based cell: row 0, column 0
// is "A1".
func SeatID(row int, col int) string {
	return fmt.Sprintf("%c%d", rune('A'+row), col+1)
}

// BuildFullGrid materializes the complete rows×columns seat grid from the
// fetched seat list. The fetched list may be sparse: any coordinate it does
// not mention is rendered as available rather than blocking the grid
// (fail-open). Seats outside the layout bounds are ignored.
func BuildFullGrid(layout model.SeatLayout, fetched []model.Seat) [][]model.Seat {
	if layout.Rows <= 0 || layout.Columns <= 0 {
		return nil
	}

	known := make(map[string]model.Seat, len(fetched))
	for _, seat := range fetched {
		if seat.Id != "" {
			known[seat.Id] = seat
		}
	}

	grid := make([][]model.Seat, layout.Rows)
	for row := range grid {
		grid[row] = make([]model.Seat, layout.Columns)
		for col := range grid[row] {
			id := SeatID(row, col)
			if seat, ok := known[id]; ok {
				grid[row][col] = seat
				continue
			}
			grid[row][col] = model.Seat{Id: id, IsBooked: false}
		}
	}
	return grid
}
