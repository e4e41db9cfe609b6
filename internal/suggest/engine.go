// Package suggest drives commit message generation: the attempt-budgeted
// retry engine over an external generator, prompt construction, and the
// deterministic fallback synthesizer.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitscribe/internal/extract"
	"gitscribe/internal/git"
	"gitscribe/internal/llm"
	"gitscribe/internal/message"
)

// ErrNoValidSuggestions is the terminal failure: every attempt was exhausted
// and the fallback produced nothing (or was disabled).
var ErrNoValidSuggestions = errors.New("no valid suggestions could be produced")

// Generator is one text-generation invocation. The engine receives it ready
// to call; connection and auth details live elsewhere.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	defaultMaxAttempts = 3
	defaultTimeout     = 30 * time.Second
)

type Engine struct {
	Generator   Generator
	MaxAttempts int           // defaults to 3
	Timeout     time.Duration // per attempt, defaults to 30s

	// SkipFallback leaves the zero value with fallback synthesis enabled.
	SkipFallback bool
}

type Result struct {
	State       State
	Suggestions []message.Suggestion

	// Degraded marks a best-so-far set returned after exhaustion: an
	// explicitly accepted lesser outcome, not a hidden failure.
	Degraded bool
}

// Run performs up to MaxAttempts sequential generation attempts and returns
// the first set meeting the acceptance policy, or the best-effort outcome on
// exhaustion. Rate-limit and auth failures abort immediately.
func (e *Engine) Run(ctx context.Context, diff git.Diff) (Result, error) {
	maxAttempts := e.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	st := newRunState(maxAttempts)
	prompt := BuildPrompt(diff)
	for {
		raw, err := e.generateOnce(ctx, prompt, timeout)
		if err != nil {
			switch llm.Classify(err) {
			case llm.FailureRateLimited:
				st.to(StateFailed)
				return Result{State: StateFailed}, fmt.Errorf("%w: %v", llm.ErrRateLimited, err)
			case llm.FailureAuthFailed:
				st.to(StateFailed)
				return Result{State: StateFailed}, fmt.Errorf("%w: %v", llm.ErrAuthFailed, err)
			default:
				// Timeouts and everything else are retryable.
				if st.nextAttempt() {
					continue
				}
				return e.finish(st, diff)
			}
		}
		if strings.TrimSpace(raw) == "" {
			// An empty response is a failed attempt, not a failed run.
			if st.nextAttempt() {
				continue
			}
			return e.finish(st, diff)
		}

		st.to(StateEvaluating)
		suggestions := extract.Evaluate(extract.Clean(extract.Segment(raw)))
		if extract.MeetsPolicy(suggestions) {
			st.to(StateSucceeded)
			return Result{State: StateSucceeded, Suggestions: extract.Select(suggestions)}, nil
		}
		st.record(suggestions)
		if st.nextAttempt() {
			continue
		}
		return e.finish(st, diff)
	}
}

// finish resolves an exhausted run: degraded best-so-far, then fallback
// synthesis, then terminal failure.
func (e *Engine) finish(st *runState, diff git.Diff) (Result, error) {
	if len(st.best) > 0 {
		st.to(StateSucceeded)
		return Result{State: StateSucceeded, Suggestions: extract.Select(st.best), Degraded: true}, nil
	}
	if !e.SkipFallback {
		if msg := Synthesize(diff); msg != "" {
			st.to(StateFallbackUsed)
			return Result{
				State:       StateFallbackUsed,
				Suggestions: []message.Suggestion{message.NewSuggestion(msg)},
			}, nil
		}
	}
	st.to(StateFailed)
	return Result{State: StateFailed}, ErrNoValidSuggestions
}

// generateOnce races one generator call against the attempt timeout. On
// timeout the engine stops waiting; the generator may keep running, no
// cancellation beyond the context is signalled.
func (e *Engine) generateOnce(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		text, err := e.Generator.Generate(ctx, prompt)
		done <- outcome{text: text, err: err}
	}()

	select {
	case out := <-done:
		return out.text, out.err
	case <-ctx.Done():
		return "", fmt.Errorf("%w after %s", llm.ErrTimedOut, timeout)
	}
}
