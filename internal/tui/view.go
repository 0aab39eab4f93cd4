package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
	"github.com/at-ishikawa/fwewterm/internal/screen"
)

func (m *Model) View() string {
	state := m.screen.State()
	if state.ModalVisible && state.Selected != nil {
		return m.modalView(*state.Selected, state.LanguageCode)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("fwew"))
	b.WriteString("  ")
	b.WriteString(m.styles.Direction.Render(directionLabel(state)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.bodyView(state))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func directionLabel(state screen.State) string {
	language := fwew.LanguageName(state.LanguageCode)
	if state.IsReverseEnabled {
		return language + " → Na'vi"
	}
	return "Na'vi → " + language
}

func (m *Model) bodyView(state screen.State) string {
	switch state.Phase {
	case screen.PhaseLoading:
		return m.spinner.View() + " Loading..."
	case screen.PhaseErrored:
		message := ""
		if state.Err != nil {
			message = state.Err.String()
		}
		return m.styles.Error.Render(message)
	case screen.PhaseLoaded:
		if len(state.Results) == 0 {
			return m.styles.Dim.Render("No results")
		}
		return m.resultsView(state)
	}
	return ""
}

func (m *Model) narrow() bool {
	return m.width > 0 && m.width < narrowWidth
}

func (m *Model) resultsView(state screen.State) string {
	start, end := m.paginator.GetSliceBounds(len(state.Results))
	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		row := m.row(state.Results[i], state.LanguageCode)
		if i == m.cursor {
			row = m.styles.Selected.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	if m.paginator.TotalPages > 1 {
		rows = append(rows, "", "  "+m.paginator.View())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) row(word fwew.Word, languageCode string) string {
	navi := m.styles.Navi.Render(fmt.Sprintf("%-16s", word.Navi))
	definition := word.Definition(languageCode)
	if m.narrow() {
		return navi + " " + definition
	}

	ipa := ""
	if word.IPA != "" {
		ipa = "[" + word.IPA + "]"
	}
	return fmt.Sprintf("%s %s %-6s %s",
		navi,
		m.styles.IPA.Render(fmt.Sprintf("%-18s", ipa)),
		word.PartOfSpeech,
		definition,
	)
}

func (m *Model) modalView(word fwew.Word, languageCode string) string {
	lines := []string{
		m.styles.Navi.Render(word.Navi),
		word.Definition(languageCode),
		"",
	}
	for _, field := range word.Fields() {
		lines = append(lines, m.styles.FieldName.Render(field.Name+":")+" "+field.Value)
	}

	style := m.styles.Modal
	if m.width > 0 {
		style = style.Width(min(m.width-4, 72))
	}
	box := style.Render(strings.Join(lines, "\n"))
	box += "\n" + m.styles.Help.Render(m.help.View(modalKeyMap{m.keys}))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
