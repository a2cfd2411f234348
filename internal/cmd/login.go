package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitrone/everyday/cli/internal/api"
	"github.com/gravitrone/everyday/cli/internal/config"
)

// TokenVerifier checks a token against the feed before it is saved.
type TokenVerifier func(ctx context.Context, token string) error

// FeedVerifier fetches today's feed from baseURL with token.
func FeedVerifier(baseURL string) TokenVerifier {
	return func(ctx context.Context, token string) error {
		client := api.NewClient(baseURL, token)
		_, err := client.OnThisDay(ctx, api.QueryFor(time.Now(), api.DefaultLanguage, api.DefaultKind))
		return err
	}
}

// RunInteractiveLogin prompts for an API token, verifies it and persists
// config. A nil verify skips the check.
func RunInteractiveLogin(in io.Reader, out io.Writer, verify TokenVerifier) error {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "api token: ")
	token, _ := reader.ReadString('\n')
	token = strings.TrimSpace(token)

	if token == "" {
		return fmt.Errorf("api token is required")
	}

	if verify != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := verify(ctx, token); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
	}

	// Keep existing preferences when replacing the token.
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Defaults()
	}
	cfg.APIToken = token

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintln(out, "token saved")
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `everyday login` command.
func LoginCmd() *cobra.Command {
	var skipVerify bool
	var apiURL string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Wikimedia API access token",
		RunE: func(_ *cobra.Command, _ []string) error {
			var verify TokenVerifier
			if !skipVerify {
				verify = FeedVerifier(apiURL)
			}
			return RunInteractiveLogin(os.Stdin, os.Stdout, verify)
		},
	}
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save the token without checking it")
	cmd.Flags().StringVar(&apiURL, "api-url", api.DefaultBaseURL, "feed API base URL")
	_ = cmd.Flags().MarkHidden("api-url")
	return cmd
}
