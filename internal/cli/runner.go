// Package cli holds the user-facing run flow: read the diff, drive the
// suggestion engine with a spinner, let the user pick, commit.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"gitscribe/internal/config"
	"gitscribe/internal/git"
	"gitscribe/internal/llm"
	"gitscribe/internal/message"
	"gitscribe/internal/suggest"
)

type Runner struct {
	cfg config.Config
	out io.Writer
	in  io.Reader
}

func NewRunner(cfg config.Config) *Runner {
	return &Runner{cfg: cfg, out: os.Stdout, in: os.Stdin}
}

// Suggest runs the full flow once: diff, generate, select, commit.
func (r *Runner) Suggest(ctx context.Context) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	if !git.IsRepository(ctx) {
		return errors.New("not inside a git repository")
	}
	if r.cfg.AutoStage {
		if err := git.StageAll(ctx); err != nil {
			return err
		}
	}
	diff, err := git.ReadDiff(ctx)
	if err != nil {
		return err
	}
	if !diff.HasChanges {
		return errors.New("no changes to commit")
	}

	engine := &suggest.Engine{
		Generator: suggest.ClientGenerator{
			Client: llm.New(r.cfg),
			Model:  r.cfg.Model,
		},
		MaxAttempts:  r.cfg.MaxAttempts,
		Timeout:      r.cfg.Timeout(),
		SkipFallback: !r.cfg.Fallback,
	}

	result, err := r.runEngine(ctx, engine, diff)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			return fmt.Errorf("generator rate limit or quota hit; not retried to avoid wasting quota: %w", err)
		case errors.Is(err, llm.ErrAuthFailed):
			return fmt.Errorf("generator rejected the credentials; check api_key: %w", err)
		default:
			return err
		}
	}

	switch result.State {
	case suggest.StateFallbackUsed:
		fmt.Fprintln(r.out, dimStyle.Render("generator produced nothing usable; fell back to a synthesized message"))
	case suggest.StateSucceeded:
		if result.Degraded {
			fmt.Fprintf(r.out, "%s\n", dimStyle.Render(fmt.Sprintf("best effort: %d suggestion(s) after all attempts", len(result.Suggestions))))
		}
	}

	choice, err := r.pick(result.Suggestions)
	if err != nil {
		return err
	}
	if choice == "" {
		fmt.Fprintln(r.out, "aborted, nothing committed")
		return nil
	}
	if err := git.Commit(ctx, choice); err != nil {
		return err
	}
	branch, err := git.CurrentBranch(ctx)
	if err != nil {
		branch = "?"
	}
	fmt.Fprintf(r.out, "committed to %s: %s\n", branch, subjectOf(choice))
	return nil
}

func (r *Runner) runEngine(ctx context.Context, engine *suggest.Engine, diff git.Diff) (suggest.Result, error) {
	if !interactive() {
		return engine.Run(ctx, diff)
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Generating commit messages..."
	s.Start()
	defer s.Stop()
	return engine.Run(ctx, diff)
}

func (r *Runner) pick(suggestions []message.Suggestion) (string, error) {
	if len(suggestions) == 0 {
		return "", suggest.ErrNoValidSuggestions
	}
	if interactive() {
		return pickInteractive(suggestions)
	}
	return pickPlain(r.in, r.out, suggestions)
}

// pickPlain is the non-TTY path: numbered list on stdout, index on stdin.
// Empty input or EOF aborts.
func pickPlain(in io.Reader, out io.Writer, suggestions []message.Suggestion) (string, error) {
	for i, s := range suggestions {
		marker := " "
		if s.Kind == message.KindMultiLine {
			marker = "+"
		}
		fmt.Fprintf(out, "%d%s %s\n", i+1, marker, subjectOf(s.Message))
	}
	fmt.Fprintf(out, "pick [1-%d], empty to abort: ", len(suggestions))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(suggestions) {
		return "", fmt.Errorf("invalid selection %q", line)
	}
	return suggestions[n-1].Message, nil
}

// Check validates a single message and reports every violation; used by the
// check subcommand.
func (r *Runner) Check(msg string) error {
	outcome := message.Validate(msg)
	if outcome.Valid {
		fmt.Fprintln(r.out, "ok")
		return nil
	}
	for _, e := range outcome.Errors {
		fmt.Fprintf(r.out, "✗ %s\n", e)
	}
	return fmt.Errorf("message has %d problem(s)", len(outcome.Errors))
}
