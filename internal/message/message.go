// Package message defines the conventional commit message grammar: the
// Suggestion value handed to consumers, validation with accumulated errors,
// and decomposition of a valid message into its parts.
package message

import "strings"

type Kind string

const (
	KindSingleLine Kind = "single_line"
	KindMultiLine  Kind = "multi_line"
)

// Suggestion is a validated commit message. Kind is always derived from
// Message content; construct through NewSuggestion so the two cannot drift.
type Suggestion struct {
	Message string
	Kind    Kind
}

func NewSuggestion(msg string) Suggestion {
	return Suggestion{Message: msg, Kind: KindOf(msg)}
}

// ValidationOutcome carries every violation found in a message. Valid is true
// iff Errors is empty.
type ValidationOutcome struct {
	Valid  bool
	Errors []string
}

// Parsed is the decomposition of a valid message. It is recomputed from the
// message text on demand and never stored.
type Parsed struct {
	Type        string
	Scope       string
	Breaking    bool
	Description string
	Body        string
}

// IsSingleLine reports whether exactly one non-blank line remains after
// trimming each line and discarding blank ones.
func IsSingleLine(msg string) bool {
	return countNonBlank(msg) == 1
}

func KindOf(msg string) Kind {
	if countNonBlank(msg) > 1 {
		return KindMultiLine
	}
	return KindSingleLine
}

func countNonBlank(msg string) int {
	count := 0
	for _, line := range strings.Split(msg, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
