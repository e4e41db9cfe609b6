package extract

import "gitscribe/internal/message"

// MaxSuggestions caps any returned suggestion set.
const MaxSuggestions = 5

// Evaluate validates every cleaned candidate and wraps the ones with zero
// errors as suggestions, in discovery order.
func Evaluate(candidates []string) []message.Suggestion {
	var out []message.Suggestion
	for _, cand := range candidates {
		if outcome := message.Validate(cand); !outcome.Valid {
			continue
		}
		out = append(out, message.NewSuggestion(cand))
	}
	return out
}

// MeetsPolicy is the acceptance gate the retry loop enforces: at least two
// suggestions with at least one single-line among them. The stricter count
// target sent to the generator lives in the prompt, not here.
func MeetsPolicy(suggestions []message.Suggestion) bool {
	if len(suggestions) < 2 {
		return false
	}
	for _, s := range suggestions {
		if s.Kind == message.KindSingleLine {
			return true
		}
	}
	return false
}

// Select orders single-line suggestions before multi-line ones, keeps the
// discovery order within each kind, and truncates to MaxSuggestions.
func Select(suggestions []message.Suggestion) []message.Suggestion {
	out := make([]message.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Kind == message.KindSingleLine {
			out = append(out, s)
		}
	}
	for _, s := range suggestions {
		if s.Kind == message.KindMultiLine {
			out = append(out, s)
		}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
