package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"cinebook-cli/booking"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your booking history",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()
		records, err := client.GetBookings(context.Background())
		if err != nil {
			return fmt.Errorf("fetch bookings: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No bookings found.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Movie", "Theater", "Date", "Time", "Seats", "Total", "Payment"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, WidthMax: 24},
			{Number: 2, WidthMax: 20},
		})
		t.Style().Options.SeparateRows = true

		byStatus := map[string]int{}
		for _, record := range records {
			status := booking.ParsePaymentStatus(record.PaymentStatus)
			byStatus[status.Label()]++
			t.AppendRow(table.Row{
				record.MovieName,
				record.TheaterName,
				record.ShowDate,
				record.ShowTime,
				strings.Join(record.SelectedSeats, ", "),
				fmt.Sprintf("₹ %.0f", record.TotalPrice),
				status.Label(),
			})
		}
		t.Render()

		labels := maps.Keys(byStatus)
		sort.Strings(labels)
		parts := make([]string, 0, len(labels))
		for _, label := range labels {
			parts = append(parts, fmt.Sprintf("%s: %d", label, byStatus[label]))
		}
		fmt.Printf("%d bookings (%s)\n", len(records), strings.Join(parts, " • "))
		return nil
	},
}
