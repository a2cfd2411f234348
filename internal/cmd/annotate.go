package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/everyday/cli/internal/linking"
)

var paraEnd = regexp.MustCompile(`\n\s*\n`)

// splitPara is a bufio.SplitFunc yielding blank-line separated paragraphs.
func splitPara(data []byte, atEOF bool) (advance int, token []byte, err error) {
	loc := paraEnd.FindIndex(data)
	if loc != nil {
		advance = loc[1]
		token = data[:loc[0]]
	} else if atEOF {
		advance = len(data)
		token = data
	}
	token = bytes.TrimSpace(token)
	return
}

// ParseEntity reads "Title" or "Title=url". Spaces in the title become
// underscores; without a url an English Wikipedia link is assumed.
func ParseEntity(spec string) (linking.Entity, error) {
	title, link, _ := strings.Cut(spec, "=")
	title = strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if title == "" {
		return linking.Entity{}, fmt.Errorf("entity %q has no title", spec)
	}
	link = strings.TrimSpace(link)
	if link == "" {
		link = "https://en.wikipedia.org/wiki/" + url.PathEscape(title)
	}
	return linking.Entity{Title: title, DisplayURL: link}, nil
}

// RunAnnotate links every paragraph of in and writes one JSON array of
// segments per paragraph.
func RunAnnotate(in io.Reader, out io.Writer, specs []string, window int) error {
	entities := make([]linking.Entity, 0, len(specs))
	for _, s := range specs {
		e, err := ParseEntity(s)
		if err != nil {
			return err
		}
		entities = append(entities, e)
	}
	idx := linking.NewIndex(entities...)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	scanner.Split(splitPara)

	enc := json.NewEncoder(out)
	for scanner.Scan() {
		text := strings.Join(strings.Fields(scanner.Text()), " ")
		if text == "" {
			continue
		}
		segs := linking.AnnotateWindow(text, idx, window)
		if err := enc.Encode(segs); err != nil {
			return fmt.Errorf("encode segments: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// AnnotateCmd returns the `everyday annotate` command.
func AnnotateCmd() *cobra.Command {
	var specs []string
	var window int
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Link known page titles in text read from stdin",
		Long: "Reads paragraphs (separated by blank lines) from stdin and prints one JSON\n" +
			"array of text/link segments per paragraph.",
		Example: `  echo "Paris, France." | everyday annotate --entity Paris`,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunAnnotate(c.InOrStdin(), c.OutOrStdout(), specs, window)
		},
	}
	cmd.Flags().StringArrayVarP(&specs, "entity", "e", nil, "known page as Title or Title=url (repeatable)")
	cmd.Flags().IntVarP(&window, "window", "w", linking.MaxWindow, "longest phrase in words that can become a link")
	return cmd
}
