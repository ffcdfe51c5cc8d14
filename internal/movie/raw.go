package movie

import (
	"encoding/json"
	"fmt"
)

// RawRecord is one upstream movie payload. It accepts both the TVMaze show
// schema (name, premiered, summary, rating.average, image.original) and the
// YTS movie schema (title, year, rating, medium_cover_image, ...).
//
// Decoding is tolerant: unknown fields are ignored and a field whose value
// has an unexpected type is treated as absent. Only a payload that is not a
// JSON object fails to decode.
type RawRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title,omitempty"`
	Name        string   `json:"name,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Premiered   string   `json:"premiered,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Year        int      `json:"year,omitempty"`
	Rating      Rating   `json:"-"`
	Image       Image    `json:"-"`
	Poster      string   `json:"poster,omitempty"`
	Plot        string   `json:"plot,omitempty"`
	Summary     string   `json:"summary,omitempty"`

	BackgroundImage  string `json:"background_image,omitempty"`
	LargeCoverImage  string `json:"large_cover_image,omitempty"`
	MediumCoverImage string `json:"medium_cover_image,omitempty"`
	DescriptionFull  string `json:"description_full,omitempty"`
	IMDBCode         string `json:"imdb_code,omitempty"`
	TrailerCode      string `json:"yt_trailer_code,omitempty"`
	Runtime          int    `json:"runtime,omitempty"`
	Cast             Cast   `json:"cast,omitempty"`
}

// UnmarshalJSON decodes each known field independently.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("raw record: %w", err)
	}

	*r = RawRecord{}
	decodeField(fields, "id", &r.ID)
	decodeField(fields, "title", &r.Title)
	decodeField(fields, "name", &r.Name)
	decodeField(fields, "genres", &r.Genres)
	decodeField(fields, "premiered", &r.Premiered)
	decodeField(fields, "release_date", &r.ReleaseDate)
	decodeField(fields, "year", &r.Year)
	decodeField(fields, "rating", &r.Rating)
	decodeField(fields, "image", &r.Image)
	decodeField(fields, "poster", &r.Poster)
	decodeField(fields, "plot", &r.Plot)
	decodeField(fields, "summary", &r.Summary)
	decodeField(fields, "background_image", &r.BackgroundImage)
	decodeField(fields, "large_cover_image", &r.LargeCoverImage)
	decodeField(fields, "medium_cover_image", &r.MediumCoverImage)
	decodeField(fields, "description_full", &r.DescriptionFull)
	decodeField(fields, "imdb_code", &r.IMDBCode)
	decodeField(fields, "yt_trailer_code", &r.TrailerCode)
	decodeField(fields, "runtime", &r.Runtime)
	decodeField(fields, "cast", &r.Cast)
	return nil
}

// decodeField leaves dst untouched when the key is missing or the value
// does not fit the destination type.
func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// RatingKind tags which upstream shape a rating arrived in.
type RatingKind uint8

const (
	RatingAbsent  RatingKind = iota // missing, null, or unrecognized shape
	RatingNumber                    // bare number: "rating": 8.7
	RatingAverage                   // object: "rating": {"average": 8.7}
)

// Rating is the decoded rating union.
type Rating struct {
	Kind  RatingKind
	Value float64
}

// UnmarshalJSON never fails; unrecognized shapes decode as RatingAbsent.
func (r *Rating) UnmarshalJSON(data []byte) error {
	*r = Rating{}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		*r = Rating{Kind: RatingNumber, Value: t}
	case map[string]any:
		if avg, ok := t["average"].(float64); ok {
			*r = Rating{Kind: RatingAverage, Value: avg}
		}
	}
	return nil
}

// Average returns the numeric rating, 0 when absent.
func (r Rating) Average() float64 {
	switch r.Kind {
	case RatingNumber, RatingAverage:
		return r.Value
	case RatingAbsent:
		return 0
	}
	return 0
}

// ImageKind tags which upstream shape an image arrived in.
type ImageKind uint8

const (
	ImageAbsent ImageKind = iota
	ImageURL              // flat string: "image": "https://..."
	ImageMap              // object: "image": {"original": "https://..."}
)

// Image is the decoded image union.
type Image struct {
	Kind ImageKind
	url  string
}

// ImageFromURL builds a flat-string image.
func ImageFromURL(url string) Image {
	return Image{Kind: ImageURL, url: url}
}

// ImageFromMap builds an image map carrying the given original URL.
func ImageFromMap(original string) Image {
	return Image{Kind: ImageMap, url: original}
}

// UnmarshalJSON never fails; unrecognized shapes decode as ImageAbsent.
func (i *Image) UnmarshalJSON(data []byte) error {
	*i = Image{}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		*i = ImageFromURL(t)
	case map[string]any:
		if original, ok := t["original"].(string); ok {
			*i = ImageFromMap(original)
		}
	}
	return nil
}

// URL returns the resolved image URL, empty when absent.
func (i Image) URL() string {
	switch i.Kind {
	case ImageURL, ImageMap:
		return i.url
	case ImageAbsent:
		return ""
	}
	return ""
}

// Cast is a list of performer names. It accepts either plain strings or
// objects carrying a "name" field; other elements are dropped.
type Cast []string

// UnmarshalJSON never fails.
func (c *Cast) UnmarshalJSON(data []byte) error {
	*c = nil
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	var names Cast
	for _, item := range items {
		switch t := item.(type) {
		case string:
			names = append(names, t)
		case map[string]any:
			if name, ok := t["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	*c = names
	return nil
}
