package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	v1 "github.com/vmunix/marquee/internal/api/v1"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatYear(year int) string {
	if year == 0 {
		return "----"
	}
	return fmt.Sprintf("%d", year)
}

func formatRating(rating float64) string {
	if rating == 0 {
		return "  - "
	}
	return fmt.Sprintf("%4.1f", rating)
}

func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func printMovieTable(w io.Writer, items []v1.MovieResponse) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "No movies found.")
		return
	}
	_, _ = fmt.Fprintf(w, "%6s  %-40s  %4s  %6s  %s\n", "ID", "TITLE", "YEAR", "RATING", "GENRES")
	for _, m := range items {
		_, _ = fmt.Fprintf(w, "%6d  %-40s  %4s  %6s  %s\n",
			m.ID,
			truncateText(m.Title, 40),
			formatYear(m.Year),
			formatRating(m.Rating),
			strings.Join(m.Genres, ", "),
		)
	}
}

func printMovieList(w io.Writer, resp *v1.ListMoviesResponse) {
	printMovieTable(w, resp.Items)
	if len(resp.Items) > 0 && resp.Total > len(resp.Items) {
		_, _ = fmt.Fprintf(w, "\nShowing %d of %d movies.\n", len(resp.Items), resp.Total)
	}
	if len(resp.Suggestions) > 0 {
		_, _ = fmt.Fprintf(w, "\nDid you mean: %s?\n", strings.Join(resp.Suggestions, ", "))
	}
}

func printMovieDetail(w io.Writer, m *v1.MovieResponse) {
	_, _ = fmt.Fprintf(w, "%s (%s)\n", m.Title, formatYear(m.Year))
	_, _ = fmt.Fprintf(w, "  ID:       %d\n", m.ID)
	if m.ReleaseDate != "" {
		_, _ = fmt.Fprintf(w, "  Released: %s\n", m.ReleaseDate)
	}
	if m.Rating > 0 {
		_, _ = fmt.Fprintf(w, "  Rating:   %.1f\n", m.Rating)
	}
	if len(m.Genres) > 0 {
		_, _ = fmt.Fprintf(w, "  Genres:   %s\n", strings.Join(m.Genres, ", "))
	}
	if m.Runtime > 0 {
		_, _ = fmt.Fprintf(w, "  Runtime:  %d min\n", m.Runtime)
	}
	if len(m.Cast) > 0 {
		_, _ = fmt.Fprintf(w, "  Cast:     %s\n", strings.Join(m.Cast, ", "))
	}
	if m.PosterURL != "" {
		_, _ = fmt.Fprintf(w, "  Poster:   %s\n", m.PosterURL)
	}
	if m.IMDBCode != "" {
		_, _ = fmt.Fprintf(w, "  IMDb:     https://www.imdb.com/title/%s/\n", m.IMDBCode)
	}
	plot := m.DescriptionFull
	if plot == "" {
		plot = m.Plot
	}
	if plot != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", plot)
	}
}
