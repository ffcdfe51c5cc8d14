package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	v1 "github.com/vmunix/marquee/internal/api/v1"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Catalog cache status",
	Long: `Show the catalog cache state: data source, size, reload counters and
the last load error.

Examples:
  marquee status            # Show cache state
  marquee status --verify   # Cache state plus catalog health checks`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run catalog health checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runVerify(cmd.OutOrStdout(), NewClient(serverURL))
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force a catalog reload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := NewClient(serverURL).Refresh()
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), st)
		}
		printStatus(cmd.OutOrStdout(), serverURL, st)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, verifyCmd, refreshCmd)
	statusCmd.Flags().Bool("verify", false, "Also run catalog health checks")
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	client := NewClient(serverURL)
	runChecks, _ := cmd.Flags().GetBool("verify")
	w := cmd.OutOrStdout()

	st, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		if runChecks {
			verify, err := client.Verify()
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}
			return printJSON(w, map[string]any{
				"status": st,
				"verify": verify,
			})
		}
		return printJSON(w, st)
	}

	printStatus(w, serverURL, st)

	// Degraded caches always get the health checks
	if runChecks || st.Status != "ok" {
		_, _ = fmt.Fprintln(w)
		return runVerify(w, client)
	}
	return nil
}

func runVerify(w io.Writer, client *Client) error {
	result, err := client.Verify()
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}
	if jsonOutput {
		return printJSON(w, result)
	}
	printVerifyResult(w, result)
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func printStatus(w io.Writer, server string, s *v1.StatusResponse) {
	_, _ = fmt.Fprintf(w, "marquee | Server: %s | Catalog: %s\n\n", server, s.Status)

	_, _ = fmt.Fprintln(w, "Catalog")
	_, _ = fmt.Fprintf(w, "  Source:      %s\n", s.Source)
	_, _ = fmt.Fprintf(w, "  Movies:      %d\n", s.Movies)
	_, _ = fmt.Fprintf(w, "  Generation:  %d\n", s.Generation)
	_, _ = fmt.Fprintf(w, "  Loaded:      %s\n", formatTime(s.LoadedAt))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Loader")
	_, _ = fmt.Fprintf(w, "  Reloads:     %d\n", s.Reloads)
	_, _ = fmt.Fprintf(w, "  Failures:    %d\n", s.Failures)
	_, _ = fmt.Fprintf(w, "  Last try:    %s\n", formatTime(s.LastAttempt))
	if s.NextRetry != nil {
		_, _ = fmt.Fprintf(w, "  Next retry:  %s\n", formatTime(s.NextRetry))
	}
	if s.LastError != "" {
		_, _ = fmt.Fprintf(w, "  Last error:  %s\n", s.LastError)
	}
}

func printVerifyResult(w io.Writer, r *v1.VerifyResponse) {
	_, _ = fmt.Fprintf(w, "Verification (generation %d, %d checks):\n\n", r.Generation, r.Checked)

	remote := "ok"
	if !r.Connections.Remote {
		remote = "FAIL"
		if r.Connections.RemoteErr != "" {
			remote += " " + r.Connections.RemoteErr
		}
	}
	_, _ = fmt.Fprintf(w, "  Remote:  %s\n", remote)
	_, _ = fmt.Fprintf(w, "  Passed:  %d/%d\n", r.Passed, r.Checked)
	_, _ = fmt.Fprintln(w)

	if len(r.Problems) == 0 {
		_, _ = fmt.Fprintln(w, "No problems detected.")
		return
	}

	_, _ = fmt.Fprintf(w, "Problems (%d):\n\n", len(r.Problems))
	for i := range r.Problems {
		p := &r.Problems[i]
		_, _ = fmt.Fprintf(w, "  %s\n", p.Check)
		_, _ = fmt.Fprintf(w, "    Issue: %s\n", p.Issue)
		for _, d := range p.Details {
			_, _ = fmt.Fprintf(w, "    - %s\n", d)
		}
		if p.Likely != "" {
			_, _ = fmt.Fprintf(w, "    Likely: %s\n", p.Likely)
		}
		if len(p.Fixes) > 0 {
			_, _ = fmt.Fprintf(w, "    Fix: %s\n", strings.Join(p.Fixes, "\n         "))
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintf(w, "%d problems found.\n", len(r.Problems))
}
