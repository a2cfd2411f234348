package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/everyday/cli/internal/cmd"
	"github.com/gravitrone/everyday/cli/internal/config"
	"github.com/gravitrone/everyday/cli/internal/logging"
	"github.com/gravitrone/everyday/cli/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var feed cmd.FeedFlags
	root := &cobra.Command{
		Use:   "everyday",
		Short: "Everyday - what happened on this day",
		Long:  "Everyday shows historical events for a calendar day with links to the pages they mention.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(feed)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	feed.Bind(root)

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.TodayCmd())
	root.AddCommand(cmd.AnnotateCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(feed cmd.FeedFlags) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("not logged in. run 'everyday login' first.")
		}
		return err
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errors.New("not a terminal; use 'everyday today' instead")
	}

	q, day, err := feed.Resolve(cfg, time.Now())
	if err != nil {
		return err
	}

	if path, err := logging.Init(filepath.Join(config.Dir(), "logs")); err == nil {
		defer logging.Close()
		logging.Info("starting tui", "log", path, "path", q.Path())
	}

	app := ui.NewApp(feed.Client(cfg), ui.Options{
		Query:      q,
		Day:        day,
		Theme:      cfg.Theme,
		Hyperlinks: cfg.HyperlinksEnabled(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
