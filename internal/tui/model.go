// Package tui renders the search screen in a terminal with bubbletea.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/at-ishikawa/fwewterm/internal/dictionary"
	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
	"github.com/at-ishikawa/fwewterm/internal/screen"
)

// narrowWidth is the width below which the IPA and part of speech columns are hidden.
const narrowWidth = 80

type fetchedMsg struct {
	response screen.Response
}

// FetchFunc turns a request into a command that reports a fetchedMsg.
type FetchFunc func(request screen.Request) tea.Cmd

func FetchCmd(ctx context.Context, fetcher dictionary.Fetcher) FetchFunc {
	return func(request screen.Request) tea.Cmd {
		return func() tea.Msg {
			return fetchedMsg{response: screen.Fetch(ctx, fetcher, request)}
		}
	}
}

type Options struct {
	PageSize int
}

type Model struct {
	ctx    context.Context
	screen *screen.Screen
	fetch  FetchFunc

	keys      keyMap
	styles    styles
	input     textinput.Model
	spinner   spinner.Model
	paginator paginator.Model
	help      help.Model

	cursor int
	width  int
	height int
	status string
}

func New(ctx context.Context, s *screen.Screen, fetch FetchFunc, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = max(opts.PageSize, 1)
	p.ActiveDot = "•"
	p.InactiveDot = "·"

	m := &Model{
		ctx:       ctx,
		screen:    s,
		fetch:     fetch,
		keys:      newKeyMap(),
		styles:    newStyles(),
		input:     input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		paginator: p,
		help:      help.New(),
	}
	m.syncPlaceholder()
	return m
}

func (m *Model) Init() tea.Cmd {
	request := m.screen.Mount(m.ctx)
	m.syncPlaceholder()
	m.syncResults()
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetch(request))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchedMsg:
		m.screen.Complete(msg.response)
		m.cursor = 0
		m.paginator.Page = 0
		m.syncResults()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.screen.Unmount()
		return m, tea.Quit
	}

	if m.screen.State().ModalVisible {
		if key.Matches(msg, m.keys.Close, m.keys.Open) {
			m.screen.DismissModal()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		request, ok, err := m.screen.ToggleDirection(m.ctx)
		m.status = ""
		if err != nil {
			slog.Error("failed to save the search direction", "error", err)
			m.status = "Could not save the search direction"
		}
		m.syncPlaceholder()
		if !ok {
			return m, nil
		}
		m.syncResults()
		return m, m.fetch(request)

	case key.Matches(msg, m.keys.Refresh):
		request := m.screen.Refresh()
		m.syncResults()
		return m, m.fetch(request)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.paginator.PrevPage()
		m.cursor = m.paginator.Page * m.paginator.PerPage
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.paginator.NextPage()
		m.cursor = m.paginator.Page * m.paginator.PerPage
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.screen.SelectEntry(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Close):
		return m, nil
	}

	previous := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if m.input.Value() == previous {
		return m, inputCmd
	}

	request := m.screen.TextChanged(m.input.Value())
	m.syncResults()
	return m, tea.Batch(inputCmd, m.fetch(request))
}

func (m *Model) moveCursor(delta int) {
	results := m.screen.State().Results
	if len(results) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(results)-1)
	m.paginator.Page = m.cursor / m.paginator.PerPage
}

func (m *Model) syncResults() {
	total := len(m.screen.State().Results)
	pages := (total + m.paginator.PerPage - 1) / m.paginator.PerPage
	m.paginator.TotalPages = max(pages, 1)
	if m.paginator.Page >= m.paginator.TotalPages {
		m.paginator.Page = m.paginator.TotalPages - 1
	}
	if m.cursor >= total {
		m.cursor = max(total-1, 0)
	}
}

func (m *Model) syncPlaceholder() {
	m.input.Placeholder = placeholder(m.screen.State())
}

func placeholder(state screen.State) string {
	if state.IsReverseEnabled {
		return "Search in " + fwew.LanguageName(state.LanguageCode)
	}
	return "Search in Na'vi"
}
