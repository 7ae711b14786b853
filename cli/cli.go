// Package cli wires the command line: the interactive screen plus a few
// plain-text commands over the same content API.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/qyinm/placetui/api"
	"github.com/qyinm/placetui/config"
	"github.com/qyinm/placetui/feed"
	"github.com/qyinm/placetui/types"
	"github.com/qyinm/placetui/ui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	root       *cobra.Command
	configPath string
	debug      bool

	config *config.Config
	source types.PlaceSource
}

// NewApp creates the CLI application.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "placetui",
		Short: "Browse recommended places in the terminal",
		Long: `placetui shows the latest places from the content API.

Filter by category with the chips, search by name, and open any place
to read its full description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.load(); err != nil {
				return err
			}
			return a.runTUI()
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.categoriesCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "placetui %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultConfigPath()
}

// load reads the config and builds the API client.
func (a *App) load() error {
	cfg, err := config.LoadFrom(a.resolvedConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg
	a.source = api.New(cfg.API.BaseURL, cfg.Timeout())
	return nil
}

func (a *App) runTUI() error {
	if a.debug {
		f, err := tea.LogToFile(a.config.Log.File, "placetui")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := ui.NewModel(ctx, feed.NewLoader(a.source), ui.Options{
		UserName:  a.config.UI.UserName,
		Headlines: a.config.UI.Headlines,
	})
	log.Printf("starting with api %s", a.config.API.BaseURL)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// quietLogs sends loader logs to stderr only when debugging.
func (a *App) quietLogs() {
	if a.debug {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
