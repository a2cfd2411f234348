package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitrone/everyday/cli/internal/api"
	"github.com/gravitrone/everyday/cli/internal/config"
	"github.com/gravitrone/everyday/cli/internal/onthisday"
)

// FeedFlags are the flags shared by commands that fetch the feed.
type FeedFlags struct {
	Date     string
	Kind     string
	Language string
	APIURL   string
}

// Bind registers the flags on c.
func (f *FeedFlags) Bind(c *cobra.Command) {
	c.Flags().StringVar(&f.Date, "date", "", "day to show as MM-DD (default today)")
	c.Flags().StringVar(&f.Kind, "kind", "", "feed list: all, selected, events, births, deaths, holidays")
	c.Flags().StringVar(&f.Language, "lang", "", "wikipedia language code (default from config, then en)")
	c.Flags().StringVar(&f.APIURL, "api-url", api.DefaultBaseURL, "feed API base URL")
	_ = c.Flags().MarkHidden("api-url")
}

// Resolve merges flags over config and returns the query and its day.
func (f *FeedFlags) Resolve(cfg *config.Config, now time.Time) (api.FeedQuery, time.Time, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}

	day, err := onthisday.ParseDate(f.Date, now)
	if err != nil {
		return api.FeedQuery{}, time.Time{}, err
	}

	kindName := f.Kind
	if kindName == "" {
		kindName = cfg.Kind
	}
	kind, err := api.ParseKind(kindName)
	if err != nil {
		return api.FeedQuery{}, time.Time{}, fmt.Errorf("--kind: %w", err)
	}

	lang := f.Language
	if lang == "" {
		lang = cfg.Language
	}

	return api.QueryFor(day, lang, kind), day, nil
}

// Client builds a feed client from config.
func (f *FeedFlags) Client(cfg *config.Config) *api.Client {
	baseURL := f.APIURL
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	client := api.NewClient(baseURL, cfg.APIToken)
	client.SetUserAgent(cfg.UserAgent)
	return client
}

// LoadConfig loads the config, turning a missing file into a login hint.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("not logged in (run 'everyday login'): %w", err)
	}
	return cfg, nil
}
