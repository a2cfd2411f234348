// Package browser hands links to the platform's URL opener.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener opens a URL. The TUI takes one so tests can record calls.
type Opener func(rawURL string) error

// Command returns the program and arguments that open rawURL on goos.
func Command(goos, rawURL string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	}
	return "", nil, fmt.Errorf("opening links is not supported on %s", goos)
}

// Validate accepts absolute http and https URLs only.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("don't know how to open this URL: %s", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host: %s", rawURL)
	}
	return nil
}

// Open starts the system browser on rawURL without waiting for it.
func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	name, args, err := Command(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	if _, err := startDetached(exec.Command(name, args...)); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

// startDetached starts cmd and reaps it in the background. The channel
// receives the exit result once.
func startDetached(cmd *exec.Cmd) (<-chan error, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
