package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the settings file",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Long:  `Shows the settings after merging tawa.toml, .env files and environment variables.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return errors.New("settings not loaded")
	}
	s := deps.Settings

	if deps.Config != nil {
		cmd.Printf("Settings (%s)\n", deps.Config.Path())
	} else {
		cmd.Println("Settings")
	}
	cmd.Println("========")
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  Kind: %s\n", s.Source.Kind.Description())
	if s.Source.Kind == domain.SourceKindFilesystem {
		cmd.Printf("  Path: %s\n", s.Source.Path)
	}
	cmd.Println()

	cmd.Println("[Prismic]")
	cmd.Printf("  Repository: %s\n", s.Prismic.Repository)
	cmd.Printf("  API: %s\n", s.Prismic.APIURL())
	if s.Prismic.Token != "" {
		cmd.Printf("  Token: %s\n", maskToken(s.Prismic.Token))
	} else {
		cmd.Println("  Token: (not set)")
	}
	cmd.Printf("  Locale: %s\n", valueOr(s.Prismic.Locale, "(all)"))
	cmd.Printf("  Requests/s: %g\n", s.Prismic.RequestsPerSecond)
	cmd.Printf("  Timeout: %s\n", s.Prismic.Timeout())
	cmd.Printf("  Retry: %d attempt(s), first delay %s\n", s.Retry.MaxAttempts, s.Retry.InitialDelay())
	cmd.Println()

	cmd.Println("[Placeholder]")
	cmd.Printf("  Enabled: %t\n", s.Placeholder.Enabled)
	cmd.Printf("  Concurrency: %s\n", concurrencyLabel(s.Placeholder.Concurrency))
	cmd.Printf("  Width: %d\n", s.Placeholder.Width)
	cmd.Println()

	cmd.Println("[HTTP]")
	cmd.Printf("  Addr: %s\n", s.HTTP.Addr)
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  Database: %s\n", s.Export.Database)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if deps == nil || deps.Config == nil {
		return errors.New("config store not configured")
	}
	path := deps.Config.Path()

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check %s: %w", path, err)
	}

	if err := deps.Config.Save(domain.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func concurrencyLabel(n int) string {
	if n <= 0 {
		return "unbounded"
	}
	return fmt.Sprint(n)
}
