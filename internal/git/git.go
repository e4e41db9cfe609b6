// Package git is the thin version-control collaborator: it reads the diff
// the core consumes and executes the commit the user picks.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Diff is the immutable input to prompt construction and to the fallback
// synthesizer.
type Diff struct {
	Staged     string
	Unstaged   string
	HasChanges bool
}

func IsRepository(ctx context.Context) bool {
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree").Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// ReadDiff captures the staged and unstaged diff text in one pass.
func ReadDiff(ctx context.Context) (Diff, error) {
	staged, err := exec.CommandContext(ctx, "git", "diff", "--cached").Output()
	if err != nil {
		return Diff{}, fmt.Errorf("git diff --cached: %w", err)
	}
	unstaged, err := exec.CommandContext(ctx, "git", "diff").Output()
	if err != nil {
		return Diff{}, fmt.Errorf("git diff: %w", err)
	}
	status, err := exec.CommandContext(ctx, "git", "status", "--porcelain").Output()
	if err != nil {
		return Diff{}, fmt.Errorf("git status: %w", err)
	}
	return Diff{
		Staged:     string(staged),
		Unstaged:   string(unstaged),
		HasChanges: hasChangesOutput(string(status)),
	}, nil
}

func hasChangesOutput(status string) bool {
	return strings.TrimSpace(status) != ""
}

func StageAll(ctx context.Context) error {
	if out, err := exec.CommandContext(ctx, "git", "add", ".").CombinedOutput(); err != nil {
		return fmt.Errorf("git add: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Commit records the message verbatim; the caller guarantees it already
// passed validation.
func Commit(ctx context.Context, message string) error {
	if out, err := exec.CommandContext(ctx, "git", "commit", "-m", message).CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func CurrentBranch(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
