package message

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Types is the closed set of accepted commit types.
var Types = []string{"feat", "fix", "docs", "style", "refactor", "test", "chore", "perf", "ci", "build"}

var typeSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Types))
	for _, t := range Types {
		set[t] = struct{}{}
	}
	return set
}()

// MaxSubjectLength is the hard cap on the subject line, in runes.
const MaxSubjectLength = 72

// subjectPattern is the structural shape of a subject line. The type token is
// any lowercase word so that an unknown type is reported by name instead of
// failing the whole parse.
var subjectPattern = regexp.MustCompile(`^([a-z]+)(?:\(([a-z0-9-]+)\))?(!)?: (.*)$`)

// prefixPattern recognizes text that starts like a subject line with a known
// type. Used as a cheap pre-filter and as the segmentation boundary marker;
// full validation still happens afterwards.
var prefixPattern = regexp.MustCompile(`^(?:feat|fix|docs|style|refactor|test|chore|perf|ci|build)(?:\([a-z0-9-]+\))?!?: `)

// HasTypePrefix reports whether text begins with a known-type subject prefix.
func HasTypePrefix(text string) bool {
	return prefixPattern.MatchString(text)
}

// Validate checks msg against the commit grammar. A subject line that does
// not match the structural pattern short-circuits with a single error; every
// other check is independent and all violations are accumulated.
func Validate(msg string) ValidationOutcome {
	lines := strings.Split(msg, "\n")
	subject := lines[0]

	m := subjectPattern.FindStringSubmatch(subject)
	if m == nil {
		return ValidationOutcome{Errors: []string{
			"subject line must look like \"type(scope)?!: description\"",
		}}
	}

	var errs []string
	typ, desc := m[1], m[4]
	if _, ok := typeSet[typ]; !ok {
		errs = append(errs, fmt.Sprintf("unknown commit type %q", typ))
	}
	if desc == "" {
		errs = append(errs, "description is empty")
	} else if first, _ := utf8.DecodeRuneInString(desc); unicode.IsUpper(first) {
		errs = append(errs, "description must not start with an uppercase letter")
	}
	if n := utf8.RuneCountInString(subject); n > MaxSubjectLength {
		errs = append(errs, fmt.Sprintf("subject line is %d characters, limit is %d", n, MaxSubjectLength))
	}
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		errs = append(errs, "second line must be blank to separate subject and body")
	}
	return ValidationOutcome{Valid: len(errs) == 0, Errors: errs}
}

// Parse decomposes a message into its parts, or returns nil when the subject
// line does not match the structural pattern.
func Parse(msg string) *Parsed {
	lines := strings.Split(msg, "\n")
	m := subjectPattern.FindStringSubmatch(lines[0])
	if m == nil {
		return nil
	}
	parsed := &Parsed{
		Type:        m[1],
		Scope:       m[2],
		Breaking:    m[3] == "!",
		Description: m[4],
	}
	if len(lines) >= 3 {
		parsed.Body = strings.TrimSpace(strings.Join(lines[2:], "\n"))
	}
	return parsed
}
