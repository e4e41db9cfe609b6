package suggest

import (
	"fmt"

	"gitscribe/internal/message"
)

// State is the retry engine's explicit state. Keeping the transitions in one
// table makes the exhaustion/fallback path auditable instead of scattered
// boolean flags.
type State string

const (
	StateAttempting   State = "attempting"
	StateEvaluating   State = "evaluating"
	StateSucceeded    State = "succeeded"
	StateFallbackUsed State = "fallback_used"
	StateFailed       State = "failed"
)

var allowedTransitions = map[State]map[State]struct{}{
	StateAttempting: {
		StateAttempting:   {},
		StateEvaluating:   {},
		StateSucceeded:    {},
		StateFallbackUsed: {},
		StateFailed:       {},
	},
	StateEvaluating: {
		StateAttempting:   {},
		StateSucceeded:    {},
		StateFallbackUsed: {},
		StateFailed:       {},
	},
	StateSucceeded:    {},
	StateFallbackUsed: {},
	StateFailed:       {},
}

func ValidateState(state State) error {
	if _, ok := allowedTransitions[state]; !ok {
		return fmt.Errorf("invalid state: %q", state)
	}
	return nil
}

func ValidateTransition(from, to State) error {
	if err := ValidateState(from); err != nil {
		return err
	}
	if err := ValidateState(to); err != nil {
		return err
	}
	if _, ok := allowedTransitions[from][to]; !ok {
		return fmt.Errorf("invalid transition: %s -> %s", from, to)
	}
	return nil
}

// runState tracks one run: the attempt counter and the largest valid set seen
// so far. It is owned by the engine for the duration of a run and never
// escapes it.
type runState struct {
	state   State
	attempt int
	max     int
	best    []message.Suggestion
}

func newRunState(max int) *runState {
	return &runState{state: StateAttempting, attempt: 1, max: max}
}

func (s *runState) to(next State) {
	if err := ValidateTransition(s.state, next); err != nil {
		panic(err)
	}
	s.state = next
}

// nextAttempt advances to the next attempt when any remain.
func (s *runState) nextAttempt() bool {
	if s.attempt >= s.max {
		return false
	}
	s.attempt++
	s.to(StateAttempting)
	return true
}

// record keeps suggestions only when the set is strictly larger than the best
// seen across earlier attempts.
func (s *runState) record(suggestions []message.Suggestion) {
	if len(suggestions) > len(s.best) {
		s.best = suggestions
	}
}
