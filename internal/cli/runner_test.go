package cli

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitscribe/internal/message"
)

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func sampleSuggestions() []message.Suggestion {
	return []message.Suggestion{
		message.NewSuggestion("feat: add cascade"),
		message.NewSuggestion("fix: handle nil\n\nguard the parser entry point"),
	}
}

func TestPickPlainSelectsByIndex(t *testing.T) {
	t.Parallel()

	out := bytes.Buffer{}
	got, err := pickPlain(strings.NewReader("2\n"), &out, sampleSuggestions())
	if err != nil {
		t.Fatalf("pick error: %v", err)
	}
	if !strings.HasPrefix(got, "fix: handle nil") {
		t.Fatalf("unexpected choice: %q", got)
	}
	if !strings.Contains(out.String(), "1  feat: add cascade") {
		t.Fatalf("expected numbered listing, got %q", out.String())
	}
	if !strings.Contains(out.String(), "2+ fix: handle nil") {
		t.Fatalf("expected body marker on multi-line entry, got %q", out.String())
	}
}

func TestPickPlainEmptyInputAborts(t *testing.T) {
	t.Parallel()

	got, err := pickPlain(strings.NewReader("\n"), &bytes.Buffer{}, sampleSuggestions())
	if err != nil {
		t.Fatalf("pick error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected abort, got %q", got)
	}
}

func TestPickPlainRejectsBadIndex(t *testing.T) {
	t.Parallel()

	if _, err := pickPlain(strings.NewReader("9\n"), &bytes.Buffer{}, sampleSuggestions()); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
	if _, err := pickPlain(strings.NewReader("abc\n"), &bytes.Buffer{}, sampleSuggestions()); err == nil {
		t.Fatalf("expected error for non-numeric input")
	}
}

func TestCheckReportsEveryViolation(t *testing.T) {
	t.Parallel()

	out := bytes.Buffer{}
	r := &Runner{out: &out}
	err := r.Check("wip: Bad subject\nnot blank")
	if err == nil {
		t.Fatalf("expected check to fail")
	}
	text := out.String()
	for _, want := range []string{"unknown commit type", "uppercase", "second line"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output, got %q", want, text)
		}
	}
}

func TestCheckAcceptsValidMessage(t *testing.T) {
	t.Parallel()

	out := bytes.Buffer{}
	r := &Runner{out: &out}
	if err := r.Check("feat(cli): add check command"); err != nil {
		t.Fatalf("expected valid message: %v", err)
	}
	if !strings.Contains(out.String(), "ok") {
		t.Fatalf("expected ok output, got %q", out.String())
	}
}

func TestReplaceSubjectKeepsBody(t *testing.T) {
	t.Parallel()

	got := replaceSubject("fix: old\n\nbody stays", "fix: new subject")
	if got != "fix: new subject\n\nbody stays" {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := replaceSubject("fix: old", "fix: new"); got != "fix: new" {
		t.Fatalf("unexpected result for single line: %q", got)
	}
}

func TestSelectModelNavigationAndChoice(t *testing.T) {
	t.Parallel()

	m := newSelectModel(sampleSuggestions())
	next, _ := m.updateList(keyMsg("down"))
	m = next.(selectModel)
	if m.cursor != 1 {
		t.Fatalf("expected cursor to move, got %d", m.cursor)
	}
	next, _ = m.updateList(keyMsg("enter"))
	m = next.(selectModel)
	if !strings.HasPrefix(m.choice, "fix: handle nil") {
		t.Fatalf("unexpected choice: %q", m.choice)
	}
}

func TestSelectModelEditRejectsInvalidSubject(t *testing.T) {
	t.Parallel()

	m := newSelectModel(sampleSuggestions())
	next, _ := m.updateList(keyMsg("e"))
	m = next.(selectModel)
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode")
	}
	m.editInput.SetValue("Broken subject line")
	next, _ = m.updateEdit(keyMsg("enter"))
	m = next.(selectModel)
	if m.choice != "" || len(m.editErrs) == 0 {
		t.Fatalf("expected validation errors to block acceptance, got %+v", m)
	}
}
