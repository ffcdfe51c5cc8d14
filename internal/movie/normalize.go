package movie

import (
	"fmt"
	"regexp"
	"slices"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes every <...> span from s.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Normalize converts a raw upstream record into a canonical Movie.
func Normalize(r RawRecord) Movie {
	m := Movie{
		ID:               r.ID,
		Title:            firstNonEmpty(r.Title, r.Name),
		Genres:           slices.Clone(r.Genres),
		Rating:           r.Rating.Average(),
		PosterURL:        firstNonEmpty(r.MediumCoverImage, r.Poster, r.Image.URL()),
		Plot:             StripTags(firstNonEmpty(r.Plot, r.Summary)),
		BackgroundImage:  r.BackgroundImage,
		LargeCoverImage:  r.LargeCoverImage,
		MediumCoverImage: r.MediumCoverImage,
		DescriptionFull:  r.DescriptionFull,
		IMDBCode:         r.IMDBCode,
		TrailerCode:      r.TrailerCode,
		Runtime:          r.Runtime,
		Cast:             slices.Clone([]string(r.Cast)),
	}
	m.SetReleaseDate(releaseDate(r))
	return m
}

// NormalizeAll normalizes records in order.
func NormalizeAll(records []RawRecord) []Movie {
	movies := make([]Movie, len(records))
	for i, r := range records {
		movies[i] = Normalize(r)
	}
	return movies
}

// releaseDate prefers a full date; a bare YTS year becomes "YYYY" so the
// year is still derived from the release date.
func releaseDate(r RawRecord) string {
	if d := firstNonEmpty(r.Premiered, r.ReleaseDate); d != "" {
		return d
	}
	if r.Year > 0 {
		return fmt.Sprintf("%04d", r.Year)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
