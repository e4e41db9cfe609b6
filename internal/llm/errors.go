package llm

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for the generator failure taxonomy. Rate-limit and auth
// failures must surface to the caller without retry or fallback; timeouts and
// everything else are absorbed by the retry loop.
var (
	ErrRateLimited = errors.New("generator rate limited")
	ErrAuthFailed  = errors.New("generator authentication failed")
	ErrTimedOut    = errors.New("generator timed out")
)

type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureRateLimited
	FailureAuthFailed
	FailureTimedOut
)

var (
	rateLimitHints = []string{"rate limit", "rate-limit", "ratelimit", "quota", "too many requests", "429"}
	authHints      = []string{"unauthorized", "authentication", "auth failed", "api key", "permission", "forbidden", "401", "403"}
	timeoutHints   = []string{"timed out", "timeout", "deadline exceeded"}
)

// Classify maps a generator failure onto the taxonomy by inspecting the error
// chain and message content. Providers do not agree on error shapes, so the
// message text is the only portable signal.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureOther
	}
	if errors.Is(err, ErrRateLimited) {
		return FailureRateLimited
	}
	if errors.Is(err, ErrAuthFailed) {
		return FailureAuthFailed
	}
	if errors.Is(err, ErrTimedOut) || errors.Is(err, context.DeadlineExceeded) {
		return FailureTimedOut
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, rateLimitHints):
		return FailureRateLimited
	case containsAny(msg, authHints):
		return FailureAuthFailed
	case containsAny(msg, timeoutHints):
		return FailureTimedOut
	}
	return FailureOther
}

func containsAny(msg string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
