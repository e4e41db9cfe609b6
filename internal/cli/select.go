package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitscribe/internal/message"
)

type selectMode int

const (
	modeList selectMode = iota
	modeEdit
)

// selectModel lets the user pick a suggestion, optionally editing the subject
// line first. Edited messages go back through the validator before they can
// be accepted.
type selectModel struct {
	suggestions []message.Suggestion
	cursor      int
	mode        selectMode
	editInput   textinput.Model
	editErrs    []string
	choice      string
	aborted     bool
}

func newSelectModel(suggestions []message.Suggestion) selectModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	return selectModel{suggestions: suggestions, editInput: ti}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode == modeEdit {
		return m.updateEdit(key)
	}
	return m.updateList(key)
}

func (m selectModel) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
	case "e":
		m.mode = modeEdit
		m.editErrs = nil
		m.editInput.SetValue(subjectOf(m.suggestions[m.cursor].Message))
		m.editInput.CursorEnd()
		m.editInput.Focus()
	case "enter":
		m.choice = m.suggestions[m.cursor].Message
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) updateEdit(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeList
		m.editErrs = nil
		return m, nil
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		edited := replaceSubject(m.suggestions[m.cursor].Message, m.editInput.Value())
		if outcome := message.Validate(edited); !outcome.Valid {
			m.editErrs = outcome.Errors
			return m, nil
		}
		m.choice = edited
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(key)
	return m, cmd
}

func (m selectModel) View() string {
	if m.aborted || m.choice != "" {
		return ""
	}
	b := strings.Builder{}
	b.WriteString(titleStyle.Render("Pick a commit message") + "\n\n")
	for i, s := range m.suggestions {
		line := subjectOf(s.Message)
		if s.Kind == message.KindMultiLine {
			line += " " + bodyTag.Render("[body]")
		}
		if parsed := message.Parse(s.Message); parsed != nil && parsed.Breaking {
			line += " " + breakingTag.Render("[breaking]")
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› "+line) + "\n")
		} else {
			b.WriteString(normalStyle.Render("  "+line) + "\n")
		}
	}
	if m.mode == modeEdit {
		b.WriteString("\n" + dimStyle.Render("edit subject:") + "\n")
		b.WriteString(m.editInput.View() + "\n")
		for _, e := range m.editErrs {
			b.WriteString(errorStyle.Render("  ✗ "+e) + "\n")
		}
		b.WriteString(helpStyle.Render("enter: accept · esc: back") + "\n")
		return b.String()
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓: move · enter: commit · e: edit subject · q: quit") + "\n")
	return b.String()
}

func subjectOf(msg string) string {
	subject, _, _ := strings.Cut(msg, "\n")
	return subject
}

func replaceSubject(msg, subject string) string {
	_, rest, found := strings.Cut(msg, "\n")
	if !found {
		return subject
	}
	return subject + "\n" + rest
}

func pickInteractive(suggestions []message.Suggestion) (string, error) {
	final, err := tea.NewProgram(newSelectModel(suggestions)).Run()
	if err != nil {
		return "", fmt.Errorf("selector: %w", err)
	}
	m, ok := final.(selectModel)
	if !ok || m.aborted {
		return "", nil
	}
	return m.choice, nil
}
