package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinebook-cli/store"
)

var movieCmd = &cobra.Command{
	Use:   "movie [movie-id]",
	Short: "Show movie details, or your recently browsed movies",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return printRecentMovies()
		}

		client := newAPIClient()
		movie, err := client.GetMovieDetails(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("fetch movie: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Title", movie.Title})
		if len(movie.Genre) > 0 {
			t.AppendRow(table.Row{"Genre", strings.Join(movie.Genre, ", ")})
		}
		if movie.Language != "" {
			t.AppendRow(table.Row{"Language", movie.Language})
		}
		if movie.Duration != "" {
			t.AppendRow(table.Row{"Duration", movie.Duration})
		}
		if movie.Rating > 0 {
			t.AppendRow(table.Row{"Rating", fmt.Sprintf("%.1f", movie.Rating)})
		}
		if movie.ReleaseDate != "" {
			t.AppendRow(table.Row{"Released", movie.ReleaseDate})
		}
		if movie.Description != "" {
			t.AppendRow(table.Row{"About", movie.Description})
		}
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 60}})
		t.Render()
		return nil
	},
}

func printRecentMovies() error {
	recents, err := store.LoadRecentMovies()
	if err != nil {
		return err
	}
	if len(recents) == 0 {
		fmt.Println("No recently browsed movies. Run 'cinebook' to browse.")
		return nil
	}
	fmt.Println("Recently browsed:")
	for _, recent := range recents {
		fmt.Printf("  %s  %s\n", recent.ID, recent.Title)
	}
	return nil
}
