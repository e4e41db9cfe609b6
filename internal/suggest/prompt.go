package suggest

import (
	"strings"

	"gitscribe/internal/git"
)

// SystemPrompt asks for more than the acceptance policy requires (5 messages,
// 3 single-line) on purpose: the count target is a request parameter, the
// acceptance gate lives in extract.MeetsPolicy.
const SystemPrompt = "You write git commit messages in the conventional commit format: " +
	"type(scope)?!: description, where type is one of feat, fix, docs, style, refactor, " +
	"test, chore, perf, ci, build. The description starts lowercase and the subject line " +
	"stays under 72 characters. Produce exactly 5 suggestions for the diff you are given: " +
	"3 as a single subject line and 2 with a body separated from the subject by one blank " +
	"line. Separate suggestions with a line containing only ---. Output the messages only, " +
	"no numbering, no bullets, no introduction."

// maxDiffBytes bounds the request size; large diffs are cut at a line
// boundary where possible.
const maxDiffBytes = 12000

func BuildPrompt(diff git.Diff) string {
	builder := strings.Builder{}
	builder.WriteString("Write commit message suggestions for the following changes.\n")
	if strings.TrimSpace(diff.Staged) != "" {
		builder.WriteString("\nStaged changes:\n")
		builder.WriteString(truncateDiff(diff.Staged, maxDiffBytes))
		builder.WriteString("\n")
	}
	if strings.TrimSpace(diff.Unstaged) != "" {
		builder.WriteString("\nUnstaged changes:\n")
		builder.WriteString(truncateDiff(diff.Unstaged, maxDiffBytes))
		builder.WriteString("\n")
	}
	return builder.String()
}

func truncateDiff(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	if idx := strings.LastIndex(cut, "\n"); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "\n[diff truncated]"
}
