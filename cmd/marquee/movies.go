package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List and search catalog movies",
	Long: `List catalog movies, optionally filtered by title and genre.

Examples:
  marquee movies --search knight
  marquee movies --genre Drama --sort rating_desc --limit 10
  marquee movies top
  marquee movies show 1`,
	Args: cobra.NoArgs,
	RunE: runMoviesCmd,
}

var moviesTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Highest rated movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		resp, err := NewClient(serverURL).TopRated(limit)
		if err != nil {
			return fmt.Errorf("top rated failed: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		printMovieList(cmd.OutOrStdout(), resp)
		return nil
	},
}

var moviesLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Most recent movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		resp, err := NewClient(serverURL).Latest(limit)
		if err != nil {
			return fmt.Errorf("latest failed: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		printMovieList(cmd.OutOrStdout(), resp)
		return nil
	},
}

var moviesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid movie ID: %s", args[0])
		}
		m, err := NewClient(serverURL).Movie(id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), m)
		}
		printMovieDetail(cmd.OutOrStdout(), m)
		return nil
	},
}

var moviesResolveCmd = &cobra.Command{
	Use:   "resolve <id>...",
	Short: "Fetch several movies by id, in the given order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		resp, err := NewClient(serverURL).Resolve(ids)
		if err != nil {
			return fmt.Errorf("resolve failed: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		printMovieList(cmd.OutOrStdout(), resp)
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Show a titled browse page",
	Long: `Show a browse page. A search takes precedence over type, and type over genre.

Examples:
  marquee browse --type top
  marquee browse --genre Crime --sort year_desc
  marquee browse --search matrix`,
	Args: cobra.NoArgs,
	RunE: runBrowseCmd,
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List catalog genres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Genres()
		if err != nil {
			return fmt.Errorf("genres failed: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		for _, g := range resp.Genres {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), g)
		}
		return nil
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the landing page lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Home()
		if err != nil {
			return fmt.Errorf("home failed: %w", err)
		}
		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, resp)
		}
		_, _ = fmt.Fprintln(w, "Top Rated")
		printMovieTable(w, resp.TopRated)
		_, _ = fmt.Fprintln(w, "\nLatest")
		printMovieTable(w, resp.Latest)
		_, _ = fmt.Fprintf(w, "\n%d genres (catalog generation %d)\n", len(resp.Genres), resp.Generation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moviesCmd, browseCmd, genresCmd, homeCmd)
	moviesCmd.AddCommand(moviesTopCmd, moviesLatestCmd, moviesShowCmd, moviesResolveCmd)

	moviesCmd.Flags().StringP("search", "s", "", "Title substring to search for")
	moviesCmd.Flags().StringP("genre", "g", "", "Genre to filter by")
	moviesCmd.Flags().String("sort", "", "Sort key: rating_desc, rating_asc, year_desc, year_asc, title_asc")
	moviesCmd.Flags().IntP("limit", "n", 0, "Maximum number of movies (0 for all)")

	moviesTopCmd.Flags().IntP("limit", "n", 0, "Maximum number of movies (server default when 0)")
	moviesLatestCmd.Flags().IntP("limit", "n", 0, "Maximum number of movies (server default when 0)")

	browseCmd.Flags().StringP("search", "s", "", "Title substring to search for")
	browseCmd.Flags().StringP("type", "t", "", "Page type: top or latest")
	browseCmd.Flags().StringP("genre", "g", "", "Genre to browse")
	browseCmd.Flags().String("sort", "", "Genre page order: rating_desc, rating_asc, year_desc, year_asc, title_asc")
}

func runMoviesCmd(cmd *cobra.Command, _ []string) error {
	var q MovieQuery
	q.Search, _ = cmd.Flags().GetString("search")
	q.Genre, _ = cmd.Flags().GetString("genre")
	q.Sort, _ = cmd.Flags().GetString("sort")
	q.Limit, _ = cmd.Flags().GetInt("limit")

	resp, err := NewClient(serverURL).Movies(q)
	if err != nil {
		return fmt.Errorf("list movies failed: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printMovieList(cmd.OutOrStdout(), resp)
	return nil
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	params := url.Values{}
	for _, name := range []string{"search", "type", "genre", "sort"} {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			params.Set(name, v)
		}
	}

	resp, err := NewClient(serverURL).Browse(params)
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s (%d)\n\n", resp.Title, resp.Total)
	printMovieTable(w, resp.Items)
	if len(resp.Suggestions) > 0 {
		_, _ = fmt.Fprintf(w, "\nDid you mean: %s?\n", strings.Join(resp.Suggestions, ", "))
	}
	return nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid movie ID: %s", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
