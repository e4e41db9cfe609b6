package suggest

import (
	"fmt"
	"strings"

	"gitscribe/internal/git"
)

// keyword groups in priority order; first hit picks the commit type.
var fallbackTypes = []struct {
	typ   string
	hints []string
}{
	{"fix", []string{"fix", "bug", "error"}},
	{"feat", []string{"feat", "add", "new"}},
	{"docs", []string{"doc", "readme"}},
	{"refactor", []string{"refactor"}},
}

// Synthesize deterministically produces a minimally valid message from the
// diff alone, with no generator call. It always returns a message today; the
// engine still guards the empty case.
func Synthesize(diff git.Diff) string {
	combined := strings.ToLower(diff.Staged + "\n" + diff.Unstaged)

	typ := "chore"
	for _, group := range fallbackTypes {
		if containsAny(combined, group.hints) {
			typ = group.typ
			break
		}
	}

	lines := strings.Split(combined, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		marker := strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---")
		if !marker {
			continue
		}
		path := strings.TrimSpace(line[3:])
		path = strings.TrimPrefix(path, "a/")
		path = strings.TrimPrefix(path, "b/")
		if idx := strings.LastIndex(path, "/"); idx >= 0 {
			path = path[idx+1:]
		}
		if path != "" {
			return fmt.Sprintf("%s: update %s", typ, path)
		}
	}
	return fmt.Sprintf("%s: update code", typ)
}

func containsAny(text string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}
