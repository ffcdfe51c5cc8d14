package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/marquee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long:  "Writes the annotated default config.toml. Defaults to the XDG config path.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the effective configuration",
	Long:  "Prints the configuration the server would run with, after environment substitution and defaults. Without a config file the built-in defaults are shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configTestCmd, configShowCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if err := config.WriteDefault(path, force); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		return fmt.Errorf("write config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath(args)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(w, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(w, cfg)
	_, _ = fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	var explicit string
	if len(args) > 0 {
		explicit = args[0]
	}
	cfg, path, err := loadServeConfig(explicit)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if path == "" {
		_, _ = fmt.Fprintln(w, "# no config file found, built-in defaults")
	} else {
		_, _ = fmt.Fprintf(w, "# %s\n", path)
	}
	return cfg.Encode(w)
}

// resolveConfigPath returns the explicit path if given, else the located one.
func resolveConfigPath(args []string) (string, error) {
	var explicit string
	if len(args) > 0 {
		explicit = args[0]
	}
	return config.Locate(explicit)
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		_, _ = fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			_, _ = fmt.Fprintf(w, "  - %s\n", m)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		_, _ = fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", err)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(w, "Configuration Summary:")
	_, _ = fmt.Fprintf(w, "  Server:   %s (log: %s)\n", cfg.Server.Addr(), cfg.Server.LogLevel)

	source := cfg.Catalog.Source
	if cfg.Catalog.Path != "" {
		source += " " + cfg.Catalog.Path
	}
	_, _ = fmt.Fprintf(w, "  Catalog:  %s\n", source)
	_, _ = fmt.Fprintf(w, "  Cache:    fresh %s, retry %s, load timeout %s\n",
		cfg.Catalog.Freshness, cfg.Catalog.RetryInterval, cfg.Catalog.LoadTimeout)
	if cfg.Catalog.WarmInterval > 0 {
		_, _ = fmt.Fprintf(w, "  Warmer:   every %s\n", cfg.Catalog.WarmInterval)
	}

	if cfg.Remote.Enabled {
		_, _ = fmt.Fprintf(w, "  Remote:   %s (timeout %s, cache %s)\n", cfg.Remote.URL, cfg.Remote.Timeout, cfg.Remote.CacheTTL)
	} else {
		_, _ = fmt.Fprintln(w, "  Remote:   disabled")
	}
}
