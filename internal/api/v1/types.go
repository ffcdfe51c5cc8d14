// internal/api/v1/types.go
package v1

import (
	"time"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/movie"
)

// MovieResponse is the API representation of a movie.
type MovieResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Plot        string   `json:"plot,omitempty"`

	BackgroundImage  string   `json:"background_image,omitempty"`
	LargeCoverImage  string   `json:"large_cover_image,omitempty"`
	MediumCoverImage string   `json:"medium_cover_image,omitempty"`
	DescriptionFull  string   `json:"description_full,omitempty"`
	IMDBCode         string   `json:"imdb_code,omitempty"`
	TrailerCode      string   `json:"yt_trailer_code,omitempty"`
	Runtime          int      `json:"runtime,omitempty"`
	Cast             []string `json:"cast,omitempty"`
}

// ListMoviesResponse is the response for GET /movies and the other list
// endpoints. Suggestions is set when a search matched nothing.
type ListMoviesResponse struct {
	Items       []MovieResponse `json:"items"`
	Total       int             `json:"total"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// BrowseResponse is the response for GET /browse.
type BrowseResponse struct {
	Title       string          `json:"title"`
	Items       []MovieResponse `json:"items"`
	Total       int             `json:"total"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// HomeResponse is the response for GET /home. All lists come from one
// catalog snapshot.
type HomeResponse struct {
	TopRated   []MovieResponse `json:"top_rated"`
	Latest     []MovieResponse `json:"latest"`
	Genres     []string        `json:"genres"`
	Generation uint64          `json:"generation"`
}

// GenresResponse is the response for GET /genres.
type GenresResponse struct {
	Genres []string `json:"genres"`
}

// ResolveRequest is the body for POST /movies/resolve.
type ResolveRequest struct {
	IDs []int `json:"ids"`
}

// StatusResponse is the response for GET /status and POST /catalog/refresh.
type StatusResponse struct {
	Status      string     `json:"status"` // ok or degraded
	Source      string     `json:"source"`
	Movies      int        `json:"movies"`
	Generation  uint64     `json:"generation"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
	Reloads     int        `json:"reloads"`
	Failures    int        `json:"failures"`
	LastError   string     `json:"last_error,omitempty"`
	LastAttempt *time.Time `json:"last_attempt,omitempty"`
	NextRetry   *time.Time `json:"next_retry,omitempty"`
}

func movieToResponse(m movie.Movie) MovieResponse {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return MovieResponse{
		ID:               m.ID,
		Title:            m.Title,
		Year:             m.Year(),
		ReleaseDate:      m.ReleaseDate(),
		Genres:           genres,
		Rating:           m.AverageRating(),
		PosterURL:        m.PosterURL,
		Plot:             m.Plot,
		BackgroundImage:  m.BackgroundImage,
		LargeCoverImage:  m.LargeCoverImage,
		MediumCoverImage: m.MediumCoverImage,
		DescriptionFull:  m.DescriptionFull,
		IMDBCode:         m.IMDBCode,
		TrailerCode:      m.TrailerCode,
		Runtime:          m.Runtime,
		Cast:             m.Cast,
	}
}

func moviesToResponse(movies []movie.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = movieToResponse(m)
	}
	return out
}

func statsToResponse(st catalog.Stats) StatusResponse {
	resp := StatusResponse{
		Status:      "ok",
		Source:      string(st.Source),
		Movies:      st.Movies,
		Generation:  st.Generation,
		Reloads:     st.Reloads,
		Failures:    st.Failures,
		LastError:   st.LastError,
		LoadedAt:    timePtr(st.LoadedAt),
		LastAttempt: timePtr(st.LastAttempt),
		NextRetry:   timePtr(st.NextRetry),
	}
	if st.Source != catalog.SourceLoader || st.LastError != "" {
		resp.Status = "degraded"
	}
	return resp
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
