package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.70

// matcher compares titles against a query under Unicode case folding.
// A Caser is stateful, so each matcher owns one and must stay on a single
// goroutine.
type matcher struct {
	caser  cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	m := &matcher{caser: cases.Fold()}
	m.needle = m.fold(query)
	return m
}

func (m *matcher) fold(s string) string {
	return m.caser.String(norm.NFC.String(s))
}

func (m *matcher) contains(title string) bool {
	return strings.Contains(m.fold(title), m.needle)
}

func (m *matcher) similarity(title string) float64 {
	return float64(edlib.JaroWinklerSimilarity(m.needle, m.fold(title)))
}

// Suggest returns up to limit distinct titles that resemble query, most
// similar first. It is meant for "did you mean" hints when Search comes back
// empty.
func (s *Snapshot) Suggest(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []string{}
	}

	type scored struct {
		title string
		score float64
	}
	m := newMatcher(query)
	seen := make(map[string]struct{})
	var candidates []scored
	for _, mv := range s.movies {
		if mv.Title == "" {
			continue
		}
		if _, ok := seen[mv.Title]; ok {
			continue
		}
		seen[mv.Title] = struct{}{}
		if score := m.similarity(mv.Title); score >= suggestThreshold {
			candidates = append(candidates, scored{title: mv.Title, score: score})
		}
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, c.title)
	}
	return out
}
