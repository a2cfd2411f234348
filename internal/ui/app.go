package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/everyday/cli/internal/api"
	"github.com/gravitrone/everyday/cli/internal/browser"
	"github.com/gravitrone/everyday/cli/internal/logging"
	"github.com/gravitrone/everyday/cli/internal/onthisday"
	"github.com/gravitrone/everyday/cli/internal/ui/components"
)

const (
	fetchTimeout  = 30 * time.Second
	toastDuration = 3 * time.Second
	// Rough height of one event card, used to size the page.
	cardHeight = 7
)

// --- Messages ---

type feedLoadedMsg struct{ items []onthisday.Item }
type errMsg struct{ err error }
type linkOpenedMsg struct {
	url string
	err error
}
type clearToastMsg struct{}

// Options configure the TUI.
type Options struct {
	Query      api.FeedQuery
	Day        time.Time
	Theme      string
	Hyperlinks bool
	Opener     browser.Opener
}

// --- App Model ---

// App is the root TUI model: a scrollable list of annotated events.
type App struct {
	client  *api.Client
	query   api.FeedQuery
	day     time.Time
	open    browser.Opener
	keys    keyMap
	theme   Theme
	links   bool
	spinner spinner.Model

	loading bool
	items   []onthisday.Item
	list    *components.List
	// link is the selected link inside the focused item, -1 for none.
	link int

	width  int
	height int
	err    error

	toast    string
	toastErr bool
}

// NewApp creates the root application model.
func NewApp(client *api.Client, opts Options) App {
	day := opts.Day
	if day.IsZero() {
		day = time.Now()
	}
	opener := opts.Opener
	if opener == nil {
		opener = browser.Open
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return App{
		client:  client,
		query:   opts.Query,
		day:     day,
		open:    opener,
		keys:    defaultKeyMap(),
		theme:   NewTheme(opts.Theme),
		links:   opts.Hyperlinks,
		spinner: s,
		loading: client != nil,
		list:    components.NewList(5),
		link:    -1,
	}
}

func (a App) Init() tea.Cmd {
	if a.client == nil {
		return nil
	}
	return tea.Batch(a.spinner.Tick, a.loadFeed())
}

func (a App) loadFeed() tea.Cmd {
	client := a.client
	q := a.query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		log := logging.WithPrefix("feed")
		start := time.Now()
		feed, err := client.OnThisDay(ctx, q)
		if err != nil {
			log.Error("fetch failed", "path", q.Path(), "err", err)
			return errMsg{err}
		}
		items := onthisday.Build(feed.Items(q.Kind))
		log.Info("loaded", "path", q.Path(), "items", len(items), "took", time.Since(start))
		return feedLoadedMsg{items: items}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetPageSize(a.pageSize())
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case feedLoadedMsg:
		a.loading = false
		a.err = nil
		a.items = msg.items
		labels := make([]string, len(a.items))
		for i, it := range a.items {
			labels[i] = it.YearLabel()
		}
		a.list.SetItems(labels)
		a.link = -1
		return a, nil

	case errMsg:
		a.loading = false
		a.err = msg.err
		return a, nil

	case linkOpenedMsg:
		if msg.err != nil {
			logging.Warn("open link", "url", msg.url, "err", msg.err)
			return a, a.setToast(msg.err.Error(), true)
		}
		return a, a.setToast("opened "+msg.url, false)

	case clearToastMsg:
		a.toast = ""
		a.toastErr = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKeys(msg)
	}
	return a, nil
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Theme):
		a.theme = a.theme.Toggled()
		return a, nil
	case key.Matches(msg, a.keys.Reload):
		if a.loading || a.client == nil {
			return a, nil
		}
		a.loading = true
		a.err = nil
		return a, tea.Batch(a.spinner.Tick, a.loadFeed())
	}

	if a.loading || len(a.items) == 0 {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		a.list.Up()
		a.link = -1
	case key.Matches(msg, a.keys.Down):
		a.list.Down()
		a.link = -1
	case key.Matches(msg, a.keys.Top):
		a.list.Top()
		a.link = -1
	case key.Matches(msg, a.keys.Bottom):
		a.list.Bottom()
		a.link = -1
	case key.Matches(msg, a.keys.NextLink):
		if n := len(a.focused().Links); n > 0 {
			a.link = (a.link + 1) % n
		}
	case key.Matches(msg, a.keys.PrevLink):
		if n := len(a.focused().Links); n > 0 {
			if a.link <= 0 {
				a.link = n - 1
			} else {
				a.link--
			}
		}
	case key.Matches(msg, a.keys.Open):
		url := a.selectedURL()
		if url == "" {
			return a, a.setToast("no link to open", true)
		}
		return a, a.openCmd(url)
	}
	return a, nil
}

func (a App) focused() onthisday.Item {
	return a.items[a.list.Selected()]
}

// selectedURL is the selected link of the focused item, or its first link.
func (a App) selectedURL() string {
	links := a.focused().Links
	if len(links) == 0 {
		return ""
	}
	idx := a.link
	if idx < 0 || idx >= len(links) {
		idx = 0
	}
	return links[idx].DisplayURL
}

func (a App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: open(url)}
	}
}

func (a *App) setToast(text string, isErr bool) tea.Cmd {
	a.toast = text
	a.toastErr = isErr
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) pageSize() int {
	// Header, status bar and margins take about ten lines.
	avail := a.height - 10
	if avail < cardHeight {
		return 1
	}
	return avail / cardHeight
}

func (a App) View() string {
	sections := []string{RenderHeader(a.theme, a.day, a.width), ""}

	switch {
	case a.loading:
		sections = append(sections, a.spinner.View()+a.theme.Muted.Render(" Loading events…"))
	case a.err != nil:
		msg := a.err.Error() + "\n\n" + errorHint(a.err)
		sections = append(sections, components.ErrorBox("Could not load events", msg, a.width, a.theme.Palette))
	case len(a.items) == 0:
		sections = append(sections, a.theme.Muted.Render("No events for this day."))
	default:
		sections = append(sections, a.renderItems())
	}

	if a.toast != "" {
		style := a.theme.Muted
		if a.toastErr {
			style = a.theme.Error
		}
		sections = append(sections, "", style.Render(components.ClampTextWidth(a.toast, a.width)))
	}

	sections = append(sections, components.StatusBar(a.statusHints(), a.width, a.theme.Palette))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) renderItems() string {
	visible := a.list.Visible()
	cards := make([]string, 0, len(visible)+1)
	for rel := range visible {
		abs := a.list.RelToAbs(rel)
		focused := a.list.IsSelected(abs)
		selected := -1
		if focused {
			selected = a.link
		}
		cards = append(cards, RenderItem(a.items[abs], a.theme, RenderOptions{
			Width:        a.width,
			Hyperlinks:   a.links,
			Focused:      focused,
			SelectedLink: selected,
		}))
	}
	pos := fmt.Sprintf("%d/%d", a.list.Selected()+1, a.list.Len())
	cards = append(cards, a.theme.Muted.Render(pos))
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (a App) statusHints() []string {
	bindings := a.keys.hintBindings()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, components.Hint(h.Key, h.Desc, a.theme.Palette))
	}
	return hints
}

// errorHint suggests what to do about a failed fetch.
func errorHint(err error) string {
	if errors.Is(err, api.ErrInvalidQuery) {
		return "check the --date, --kind and --lang flags"
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "the API token was rejected; run 'everyday login'"
		case http.StatusTooManyRequests:
			return "rate limited; wait a moment, then press r"
		case http.StatusNotFound:
			return "no feed for this language or day"
		}
	}
	return "press r to retry"
}
