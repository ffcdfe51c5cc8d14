package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/marquee/internal/movie"
)

func mk(id int, title, date string, rating float64, genres ...string) movie.Movie {
	m := movie.Movie{ID: id, Title: title, Rating: rating, Genres: genres}
	m.SetReleaseDate(date)
	return m
}

func ids(movies []movie.Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func testSnapshot(movies ...movie.Movie) *Snapshot {
	return NewSnapshot(movies, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), SourceLoader)
}

func TestSnapshot_ByID(t *testing.T) {
	s := testSnapshot(
		mk(5, "Inception", "2010-07-16", 8.8, "Sci-Fi"),
		mk(6, "Fight Club", "1999-10-15", 8.8, "Drama"),
		mk(5, "Duplicate", "", 0),
	)

	m, ok := s.ByID(5)
	require.True(t, ok)
	assert.Equal(t, "Inception", m.Title, "first match wins")

	_, ok = s.ByID(9999)
	assert.False(t, ok)
}

func TestSnapshot_Search(t *testing.T) {
	s := testSnapshot(
		mk(1, "The Dark Knight", "2008", 9.0),
		mk(2, "Knight and Day", "2010", 6.3),
		mk(3, "Amélie", "2001", 8.3),
		mk(4, "Inception", "2010", 8.8),
	)

	assert.Equal(t, []int{1, 2}, ids(s.Search("KNIGHT")))
	assert.Equal(t, []int{3}, ids(s.Search("AMÉLIE")))
	assert.Equal(t, []int{3}, ids(s.Search("ame\u0301lie")), "decomposed accents match composed titles")
	assert.Empty(t, s.Search("xyz_nonsense_string"))
	assert.NotNil(t, s.Search("xyz_nonsense_string"))
}

func TestSnapshot_SearchBlankReturnsAll(t *testing.T) {
	s := testSnapshot(mk(3, "C", "", 0), mk(1, "A", "", 0), mk(2, "B", "", 0))

	assert.Equal(t, []int{3, 1, 2}, ids(s.Search("")))
	assert.Equal(t, []int{3, 1, 2}, ids(s.Search("   ")))
}

func TestSnapshot_FilterByGenre(t *testing.T) {
	s := testSnapshot(
		mk(1, "A", "", 0, "Drama"),
		mk(2, "B", "", 0, "Action"),
		mk(3, "C", "", 0, "Action", "Drama"),
	)

	assert.Equal(t, []int{2, 3}, ids(s.FilterByGenre("Action")))
	assert.Equal(t, []int{1, 2, 3}, ids(s.FilterByGenre(GenreAll)))
	assert.Equal(t, []int{1, 2, 3}, ids(s.FilterByGenre("")))
	assert.Empty(t, s.FilterByGenre("action"), "genre match is exact")
}

func TestSnapshot_TopRatedStable(t *testing.T) {
	s := testSnapshot(
		mk(1, "A", "", 8.0),
		mk(2, "B", "", 9.0),
		mk(3, "C", "", 8.0),
		mk(4, "D", "", 9.0),
		mk(5, "E", "", 0),
	)

	assert.Equal(t, []int{2, 4, 1, 3, 5}, ids(s.TopRated(10)))
	assert.Equal(t, []int{2, 4}, ids(s.TopRated(2)))
	assert.Empty(t, s.TopRated(0))
	assert.Empty(t, s.TopRated(-1))
}

func TestSnapshot_Latest(t *testing.T) {
	s := testSnapshot(
		mk(1, "Unknown", "", 7.0),
		mk(2, "Pulp Fiction", "1994-10-14", 8.9),
		mk(3, "Inception", "2010-07-16", 8.8),
	)

	assert.Equal(t, []int{3, 2}, ids(s.Latest(2)))
	assert.Equal(t, []int{3, 2}, ids(s.Latest(10)), "zero-year movies are excluded")
	assert.NotNil(t, testSnapshot(mk(1, "A", "", 0)).Latest(5))
}

func TestSnapshot_LatestStable(t *testing.T) {
	s := testSnapshot(
		mk(1, "A", "1994", 0),
		mk(2, "B", "2001", 0),
		mk(3, "C", "1994", 0),
		mk(4, "D", "2001", 0),
	)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(s.Latest(4)))
}

func TestSnapshot_FilterAndSort(t *testing.T) {
	s := testSnapshot(
		mk(1, "Zodiac", "2007", 7.7, "Crime"),
		mk(2, "Alien", "1979", 8.5, "Horror"),
		mk(3, "Memento", "2000", 8.4, "Crime"),
		mk(4, "Heat", "1995", 8.3, "Crime"),
		mk(5, "Se7en", "1995", 8.6, "Crime"),
	)

	tests := []struct {
		genre string
		key   SortKey
		want  []int
	}{
		{"Crime", SortRatingDesc, []int{5, 3, 4, 1}},
		{"Crime", SortRatingAsc, []int{1, 4, 3, 5}},
		{"Crime", SortYearDesc, []int{1, 3, 4, 5}},
		{"Crime", SortYearAsc, []int{4, 5, 3, 1}},
		{"Crime", SortTitleAsc, []int{4, 3, 5, 1}},
		{"Crime", "", []int{1, 3, 4, 5}},
		{"Crime", "popularity", []int{1, 3, 4, 5}},
		{"All", SortTitleAsc, []int{2, 4, 3, 5, 1}},
		{"Western", SortRatingDesc, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.genre+"/"+string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.FilterAndSort(tt.genre, tt.key)))
		})
	}
}

func TestSnapshot_QueriesDoNotMutate(t *testing.T) {
	s := testSnapshot(mk(1, "B", "2000", 5), mk(2, "A", "2010", 9))

	_ = s.TopRated(2)
	_ = s.Latest(2)
	_ = s.FilterAndSort("", SortTitleAsc)

	assert.Equal(t, []int{1, 2}, ids(s.All()))
}

func TestSnapshot_Genres(t *testing.T) {
	s := testSnapshot(
		mk(1, "A", "", 0, "Drama", "Crime"),
		mk(2, "B", "", 0, "Action"),
		mk(3, "C", "", 0),
		mk(4, "D", "", 0, "Drama", ""),
	)
	assert.Equal(t, []string{"Action", "Crime", "Drama"}, s.Genres())
	assert.Equal(t, []string{}, testSnapshot().Genres())
}

func TestSnapshot_Suggest(t *testing.T) {
	s := testSnapshot(
		mk(1, "Inception", "2010", 8.8),
		mk(2, "Interstellar", "2014", 8.6),
		mk(3, "The Matrix", "1999", 8.7),
		mk(4, "Inception", "2010", 8.8),
	)

	got := s.Suggest("Inceptoin", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Inception", got[0])
	assert.Len(t, got, len(uniq(got)), "titles are distinct")

	assert.Empty(t, s.Suggest("qqqqqqqq", 3))
	assert.Empty(t, s.Suggest("  ", 3))
	assert.Empty(t, s.Suggest("Inception", 0))
}

func uniq(values []string) map[string]bool {
	out := make(map[string]bool)
	for _, v := range values {
		out[v] = true
	}
	return out
}

func TestSortKey_Valid(t *testing.T) {
	for _, k := range []SortKey{SortRatingDesc, SortRatingAsc, SortYearDesc, SortYearAsc, SortTitleAsc} {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, SortKey("").Valid())
	assert.False(t, SortKey("RATING_DESC").Valid())
}

func TestSnapshot_Query(t *testing.T) {
	s := testSnapshot(
		mk(1, "The Dark Knight", "2008", 9.0, "Action", "Crime"),
		mk(2, "Knight and Day", "2010", 6.3, "Action", "Comedy"),
		mk(3, "A Knight's Tale", "2001", 6.9, "Adventure"),
		mk(4, "Heat", "1995", 8.3, "Crime"),
	)

	tests := []struct {
		name string
		q    Query
		want []int
	}{
		{"empty query is everything", Query{}, []int{1, 2, 3, 4}},
		{"search only", Query{Search: "knight"}, []int{1, 2, 3}},
		{"search and genre", Query{Search: "knight", Genre: "Action"}, []int{1, 2}},
		{"search genre sort", Query{Search: "knight", Genre: "Action", Sort: SortYearDesc}, []int{2, 1}},
		{"genre all", Query{Genre: GenreAll, Sort: SortRatingDesc}, []int{1, 4, 3, 2}},
		{"limit", Query{Sort: SortTitleAsc, Limit: 2}, []int{3, 4}},
		{"search within crime", Query{Search: "knight", Genre: "Crime", Sort: SortRatingAsc}, []int{1}},
		{"miss", Query{Search: "zzz"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.Query(tt.q)))
		})
	}
}
