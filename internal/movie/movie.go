// Package movie defines the canonical movie record and the normalizer that
// builds it from upstream payloads.
package movie

import (
	"slices"
	"strconv"
)

// Movie is the canonical, schema-independent movie record held by the catalog.
// Movies inside a catalog snapshot are shared between readers and must not be
// modified.
type Movie struct {
	ID        int
	Title     string
	Genres    []string
	Rating    float64 // 0 when the source carried no rating
	PosterURL string
	Plot      string // markup stripped

	releaseDate string
	year        int

	// Pass-through fields, not used by any query.
	BackgroundImage  string
	LargeCoverImage  string
	MediumCoverImage string
	DescriptionFull  string
	IMDBCode         string
	TrailerCode      string
	Runtime          int // minutes
	Cast             []string
}

// SetReleaseDate stores the release date and recomputes the derived year.
func (m *Movie) SetReleaseDate(date string) {
	m.releaseDate = date
	m.year = ParseYear(date)
}

// ReleaseDate returns the release date exactly as received, e.g. "1999-03-31".
func (m Movie) ReleaseDate() string {
	return m.releaseDate
}

// Year returns the release year, or 0 when the release date is absent or
// does not start with four digits.
func (m Movie) Year() int {
	return m.year
}

// AverageRating returns the rating, 0.0 when absent.
func (m Movie) AverageRating() float64 {
	return m.Rating
}

// HasGenre reports whether genre is one of the movie's genres (exact match).
func (m Movie) HasGenre(genre string) bool {
	return slices.Contains(m.Genres, genre)
}

// ParseYear extracts the year from the first four characters of a date.
func ParseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
