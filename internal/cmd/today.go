package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gravitrone/everyday/cli/internal/logging"
	"github.com/gravitrone/everyday/cli/internal/onthisday"
	"github.com/gravitrone/everyday/cli/internal/ui"
)

type todayOptions struct {
	feed    FeedFlags
	json    bool
	limit   int
	noLinks bool
	verbose bool
}

// todayReport is the --json output.
type todayReport struct {
	Date    string           `json:"date"`
	Heading string           `json:"heading"`
	Kind    string           `json:"kind"`
	Items   []onthisday.Item `json:"items"`
}

// RunToday fetches one day and writes it to out.
func RunToday(ctx context.Context, out io.Writer, opts todayOptions, now time.Time) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	q, day, err := opts.feed.Resolve(cfg, now)
	if err != nil {
		return err
	}

	feed, err := opts.feed.Client(cfg).OnThisDay(ctx, q)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	items := onthisday.Build(feed.Items(q.Kind))
	if opts.limit > 0 && len(items) > opts.limit {
		items = items[:opts.limit]
	}
	logging.Debug("built items", "path", q.Path(), "items", len(items))

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(todayReport{
			Date:    day.Format("01-02"),
			Heading: onthisday.Heading(day),
			Kind:    string(q.Kind),
			Items:   items,
		})
	}

	fmt.Fprintln(out, onthisday.Heading(day))
	if len(items) == 0 {
		fmt.Fprintln(out, "no events for this day")
		return nil
	}
	for _, it := range items {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.RenderPlain(it, !opts.noLinks))
	}
	return nil
}

// TodayCmd returns the `everyday today` command.
func TodayCmd() *cobra.Command {
	var opts todayOptions
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the day's events without the TUI",
		RunE: func(c *cobra.Command, _ []string) error {
			if opts.verbose {
				logging.InitWriter(os.Stderr, log.DebugLevel)
				defer logging.Close()
			}
			return RunToday(c.Context(), c.OutOrStdout(), opts, time.Now())
		},
	}
	opts.feed.Bind(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "emit items with their link segments as JSON")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "show at most n events")
	cmd.Flags().BoolVar(&opts.noLinks, "no-links", false, "omit the list of linked pages")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")
	return cmd
}
