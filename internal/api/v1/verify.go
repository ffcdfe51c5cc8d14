package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
)

// VerifyProblem describes a problem found during verification.
type VerifyProblem struct {
	Check   string   `json:"check"`
	Issue   string   `json:"issue"`
	Details []string `json:"details,omitempty"`
	Likely  string   `json:"likely_cause,omitempty"`
	Fixes   []string `json:"suggested_fixes,omitempty"`
}

// VerifyResponse is the response for GET /verify.
type VerifyResponse struct {
	Connections struct {
		Remote    bool   `json:"remote"`
		RemoteErr string `json:"remote_error,omitempty"`
	} `json:"connections"`
	Generation uint64          `json:"generation"`
	Checked    int             `json:"checked"`
	Passed     int             `json:"passed"`
	Problems   []VerifyProblem `json:"problems"`
}

// maxDetails bounds the per-problem detail list.
const maxDetails = 10

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := VerifyResponse{Problems: []VerifyProblem{}}

	// Test connections
	if s.deps.Remote != nil {
		if err := s.deps.Remote.Ping(ctx); err != nil {
			resp.Connections.RemoteErr = err.Error()
		} else {
			resp.Connections.Remote = true
		}
	}

	snap := s.deps.Catalog.View(ctx)
	stats := s.deps.Catalog.Stats()
	resp.Generation = snap.Generation()

	checks := []func(*catalog.Snapshot, catalog.Stats) *VerifyProblem{
		s.checkSource,
		s.checkFreshness,
		checkDuplicateIDs,
		checkMissingYears,
		checkMissingPosters,
	}
	for _, check := range checks {
		resp.Checked++
		if p := check(snap, stats); p != nil {
			resp.Problems = append(resp.Problems, *p)
			continue
		}
		resp.Passed++
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) checkSource(snap *catalog.Snapshot, stats catalog.Stats) *VerifyProblem {
	if snap.Source() != catalog.SourceFallback {
		return nil
	}
	return &VerifyProblem{
		Check:  "source",
		Issue:  "serving the built-in fallback dataset",
		Likely: stats.LastError,
		Fixes: []string{
			"Check catalog.source and catalog.path in the config",
			"Run 'marquee refresh' once the dataset is reachable",
		},
	}
}

func (s *Server) checkFreshness(snap *catalog.Snapshot, stats catalog.Stats) *VerifyProblem {
	if snap.Source() != catalog.SourceLoader {
		return nil
	}
	age := time.Since(snap.LoadedAt())
	if age <= s.cfg.Freshness {
		return nil
	}
	return &VerifyProblem{
		Check:  "freshness",
		Issue:  fmt.Sprintf("catalog is %s old, past the %s window", age.Round(time.Second), s.cfg.Freshness),
		Likely: stats.LastError,
		Fixes:  []string{"Check the dataset source; stale data is served until a reload succeeds"},
	}
}

func checkDuplicateIDs(snap *catalog.Snapshot, _ catalog.Stats) *VerifyProblem {
	seen := make(map[int]int)
	var dups []string
	for _, m := range snap.All() {
		seen[m.ID]++
		if seen[m.ID] == 2 {
			dups = append(dups, fmt.Sprintf("id %d (%s)", m.ID, m.Title))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &VerifyProblem{
		Check:   "duplicate_ids",
		Issue:   fmt.Sprintf("%d ids appear more than once; lookups return the first", len(dups)),
		Details: truncateDetails(dups),
		Fixes:   []string{"Remove duplicate records from the dataset"},
	}
}

func checkMissingYears(snap *catalog.Snapshot, _ catalog.Stats) *VerifyProblem {
	var titles []string
	for _, m := range snap.All() {
		if m.Year() == 0 {
			titles = append(titles, m.Title)
		}
	}
	if len(titles) == 0 {
		return nil
	}
	return &VerifyProblem{
		Check:   "release_dates",
		Issue:   fmt.Sprintf("%d movies have no release year and are left out of latest", len(titles)),
		Details: truncateDetails(titles),
	}
}

func checkMissingPosters(snap *catalog.Snapshot, _ catalog.Stats) *VerifyProblem {
	var titles []string
	for _, m := range snap.All() {
		if strings.TrimSpace(m.PosterURL) == "" {
			titles = append(titles, m.Title)
		}
	}
	if len(titles) == 0 {
		return nil
	}
	return &VerifyProblem{
		Check:   "posters",
		Issue:   fmt.Sprintf("%d movies have no poster", len(titles)),
		Details: truncateDetails(titles),
	}
}

func truncateDetails(details []string) []string {
	if len(details) <= maxDetails {
		return details
	}
	out := append([]string{}, details[:maxDetails]...)
	return append(out, fmt.Sprintf("... and %d more", len(details)-maxDetails))
}
