package api

import "time"

// DefaultBaseURL is the single source of truth for the CLI API target.
const DefaultBaseURL = "https://api.wikimedia.org"

// NewDefaultClient builds a client pointed at the Wikimedia API gateway.
func NewDefaultClient(token string, timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, token, timeout...)
}
