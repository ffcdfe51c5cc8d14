package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/movie"
)

// Source identifies where a snapshot's movies came from.
type Source string

const (
	SourceNone     Source = "none"     // nothing loaded yet
	SourceLoader   Source = "loader"   // primary dataset loader
	SourceFallback Source = "fallback" // built-in curated dataset
)

// GenreAll is the genre filter value that disables filtering.
const GenreAll = "All"

// Snapshot is an immutable view of the catalog at one instant. Every query
// method is a pure function of the snapshot; results are freshly allocated
// slices, but the movies in them share genre and cast slices with the
// snapshot and must be treated as read-only.
type Snapshot struct {
	movies     []movie.Movie
	loadedAt   time.Time
	source     Source
	generation uint64
}

var emptySnapshot = &Snapshot{source: SourceNone}

// NewSnapshot builds a snapshot over a copy of movies.
func NewSnapshot(movies []movie.Movie, loadedAt time.Time, source Source) *Snapshot {
	return &Snapshot{
		movies:   slices.Clone(movies),
		loadedAt: loadedAt,
		source:   source,
	}
}

// Len returns the number of movies.
func (s *Snapshot) Len() int { return len(s.movies) }

// Empty reports whether the snapshot has no movies.
func (s *Snapshot) Empty() bool { return len(s.movies) == 0 }

// LoadedAt returns when the snapshot's data was produced.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Source returns where the snapshot's data came from.
func (s *Snapshot) Source() Source { return s.source }

// Generation is incremented by the cache every time it installs a snapshot.
func (s *Snapshot) Generation() uint64 { return s.generation }

// All returns every movie in snapshot order.
func (s *Snapshot) All() []movie.Movie {
	out := make([]movie.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// ByID returns the first movie with the given id.
func (s *Snapshot) ByID(id int) (movie.Movie, bool) {
	for _, m := range s.movies {
		if m.ID == id {
			return m, true
		}
	}
	return movie.Movie{}, false
}

// Search returns movies whose title contains query, ignoring case. A blank
// query matches everything.
func (s *Snapshot) Search(query string) []movie.Movie {
	if strings.TrimSpace(query) == "" {
		return s.All()
	}
	m := newMatcher(query)
	out := []movie.Movie{}
	for _, mv := range s.movies {
		if m.contains(mv.Title) {
			out = append(out, mv)
		}
	}
	return out
}

// FilterByGenre returns movies tagged with genre. GenreAll or a blank genre
// returns everything.
func (s *Snapshot) FilterByGenre(genre string) []movie.Movie {
	if isAllGenres(genre) {
		return s.All()
	}
	out := []movie.Movie{}
	for _, m := range s.movies {
		if m.HasGenre(genre) {
			out = append(out, m)
		}
	}
	return out
}

// TopRated returns up to limit movies, highest rating first.
func (s *Snapshot) TopRated(limit int) []movie.Movie {
	if limit <= 0 {
		return []movie.Movie{}
	}
	out := s.All()
	sortMovies(out, SortRatingDesc)
	return truncate(out, limit)
}

// Latest returns up to limit movies with a known year, newest first.
func (s *Snapshot) Latest(limit int) []movie.Movie {
	if limit <= 0 {
		return []movie.Movie{}
	}
	var out []movie.Movie
	for _, m := range s.movies {
		if m.Year() > 0 {
			out = append(out, m)
		}
	}
	sortMovies(out, SortYearDesc)
	return truncate(out, limit)
}

// FilterAndSort filters by genre, then orders by key. Unknown keys keep the
// filtered order.
func (s *Snapshot) FilterAndSort(genre string, key SortKey) []movie.Movie {
	out := s.FilterByGenre(genre)
	sortMovies(out, key)
	return out
}

// Query combines a title search, a genre filter and an ordering.
type Query struct {
	Search string
	Genre  string
	Sort   SortKey
	Limit  int // 0 means no limit
}

// Query evaluates q in a single pass over the snapshot.
func (s *Snapshot) Query(q Query) []movie.Movie {
	var m *matcher
	if strings.TrimSpace(q.Search) != "" {
		m = newMatcher(q.Search)
	}
	allGenres := isAllGenres(q.Genre)

	out := []movie.Movie{}
	for _, mv := range s.movies {
		if m != nil && !m.contains(mv.Title) {
			continue
		}
		if !allGenres && !mv.HasGenre(q.Genre) {
			continue
		}
		out = append(out, mv)
	}
	sortMovies(out, q.Sort)
	if q.Limit > 0 {
		return truncate(out, q.Limit)
	}
	return out
}

// Genres returns the distinct genres across the snapshot, sorted.
func (s *Snapshot) Genres() []string {
	seen := make(map[string]struct{})
	genres := []string{}
	for _, m := range s.movies {
		for _, g := range m.Genres {
			if g == "" {
				continue
			}
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}
	slices.Sort(genres)
	return genres
}

func isAllGenres(genre string) bool {
	genre = strings.TrimSpace(genre)
	return genre == "" || genre == GenreAll
}

func truncate(movies []movie.Movie, limit int) []movie.Movie {
	if movies == nil {
		return []movie.Movie{}
	}
	if len(movies) > limit {
		return movies[:limit]
	}
	return movies
}

// SortKey names one of the supported catalog orderings.
type SortKey string

const (
	SortRatingDesc SortKey = "rating_desc"
	SortRatingAsc  SortKey = "rating_asc"
	SortYearDesc   SortKey = "year_desc"
	SortYearAsc    SortKey = "year_asc"
	SortTitleAsc   SortKey = "title_asc"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortRatingDesc, SortRatingAsc, SortYearDesc, SortYearAsc, SortTitleAsc:
		return true
	}
	return false
}

// sortMovies orders movies in place. Sorts are stable: equal elements keep
// their snapshot order.
func sortMovies(movies []movie.Movie, key SortKey) {
	var compare func(a, b movie.Movie) int
	switch key {
	case SortRatingDesc:
		compare = func(a, b movie.Movie) int { return cmp.Compare(b.AverageRating(), a.AverageRating()) }
	case SortRatingAsc:
		compare = func(a, b movie.Movie) int { return cmp.Compare(a.AverageRating(), b.AverageRating()) }
	case SortYearDesc:
		compare = func(a, b movie.Movie) int { return cmp.Compare(b.Year(), a.Year()) }
	case SortYearAsc:
		compare = func(a, b movie.Movie) int { return cmp.Compare(a.Year(), b.Year()) }
	case SortTitleAsc:
		compare = func(a, b movie.Movie) int { return cmp.Compare(a.Title, b.Title) }
	default:
		return
	}
	slices.SortStableFunc(movies, compare)
}
