package extract

import (
	"regexp"
	"strings"

	"gitscribe/internal/message"
)

var (
	preambleLine = regexp.MustCompile(`(?i)^(here are|here is|here's|generated|commit messages?)\b[^\n]*$`)
	bulletPrefix = regexp.MustCompile(`^[-*\x{2022}]\s+`)
)

// Clean strips generator preamble noise from each candidate and discards
// anything that still does not start like a commit subject. This is a cheap
// pre-filter before full validation, not a replacement for it.
func Clean(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		cand = stripPreamble(cand)
		cand = strings.TrimSpace(bulletPrefix.ReplaceAllString(cand, ""))
		if cand == "" || !message.HasTypePrefix(cand) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// stripPreamble drops a leading editorial line such as "Here are 5 commit
// messages:" when present.
func stripPreamble(cand string) string {
	first, rest, found := strings.Cut(cand, "\n")
	if !found {
		return cand
	}
	if preambleLine.MatchString(strings.TrimSpace(first)) {
		return strings.TrimSpace(rest)
	}
	return cand
}
