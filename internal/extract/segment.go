// Package extract turns one raw generator response into validated commit
// message suggestions: segmentation into candidates, noise cleanup, and
// evaluation against the grammar and acceptance policy.
package extract

import (
	"regexp"
	"strings"

	"gitscribe/internal/message"
)

var (
	separatorLine = regexp.MustCompile(`(?m)^---$`)
	numberedItem  = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	blankRun      = regexp.MustCompile(`\n{2,}`)
)

// strategies is the ordered splitting cascade. Each entry runs only when the
// one before it failed to actually split the response (zero or one candidate
// after trimming).
var strategies = []func(string) []string{
	splitSeparatorLines,
	splitSeparatorTokens,
	splitNumberedList,
	splitBlankRuns,
	scanTypePrefixed,
	accumulateLines,
}

// Segment extracts candidate message strings from one raw response. An empty
// or whitespace-only response yields nothing without trying any strategy.
func Segment(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var last []string
	for _, strategy := range strategies {
		candidates := compact(strategy(raw))
		if len(candidates) > 1 {
			return candidates
		}
		if len(candidates) == 1 {
			last = candidates
		}
	}
	return last
}

func compact(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitSeparatorLines(text string) []string {
	return separatorLine.Split(text, -1)
}

func splitSeparatorTokens(text string) []string {
	return strings.Split(text, "---")
}

// splitNumberedList cuts at numbered-list markers and drops the numbering.
func splitNumberedList(text string) []string {
	locs := numberedItem.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		parts = append(parts, text[loc[1]:end])
	}
	return parts
}

// splitBlankRuns splits on runs of blank lines but keeps only segments that
// start like a commit subject, so an unrelated paragraph break is not taken
// for a message boundary.
func splitBlankRuns(text string) []string {
	var parts []string
	for _, part := range blankRun.Split(text, -1) {
		if message.HasTypePrefix(strings.TrimSpace(part)) {
			parts = append(parts, part)
		}
	}
	return parts
}

// scanTypePrefixed recovers concatenated messages with no explicit separator:
// every type-prefixed line starts a match that extends over following lines
// until the next type-prefixed line, a "---" line, or a numbered-list line.
func scanTypePrefixed(text string) []string {
	var (
		parts   []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			parts = append(parts, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case message.HasTypePrefix(trimmed):
			flush()
			current = []string{line}
		case trimmed == "---" || numberedItem.MatchString(line):
			flush()
		case len(current) > 0:
			current = append(current, line)
		}
	}
	flush()
	return parts
}

// accumulateLines is the last resort: a line walk where a type-prefixed line
// opens a new message, any other non-blank line extends the current one, and
// blank lines are kept inside a message so bodies survive. Lines before the
// first type-prefixed line are discarded.
func accumulateLines(text string) []string {
	var (
		parts   []string
		current []string
	)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case message.HasTypePrefix(trimmed):
			if len(current) > 0 {
				parts = append(parts, strings.Join(current, "\n"))
			}
			current = []string{line}
		case len(current) == 0:
			// noise before the first message
		default:
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		parts = append(parts, strings.Join(current, "\n"))
	}
	return parts
}
