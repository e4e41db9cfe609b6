package extract

import (
	"reflect"
	"testing"
)

func TestSegmentEmptyResponse(t *testing.T) {
	t.Parallel()

	if got := Segment(""); len(got) != 0 {
		t.Fatalf("expected no candidates for empty input, got %v", got)
	}
	if got := Segment("  \n\t\n "); len(got) != 0 {
		t.Fatalf("expected no candidates for whitespace input, got %v", got)
	}
}

func TestSegmentSeparatorLines(t *testing.T) {
	t.Parallel()

	got := Segment("feat: a\n---\nfix: b\n---\ndocs: c")
	want := []string{"feat: a", "fix: b", "docs: c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestSegmentSeparatorKeepsBodies(t *testing.T) {
	t.Parallel()

	got := Segment("feat: a\n\nbody of a\n---\nfix: b")
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	if got[0] != "feat: a\n\nbody of a" {
		t.Fatalf("expected body to survive separator split, got %q", got[0])
	}
}

func TestSegmentBareSeparatorToken(t *testing.T) {
	t.Parallel()

	// no separator on a line of its own, but the token appears inline
	got := Segment("feat: a --- fix: b")
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	if got[0] != "feat: a" || got[1] != "fix: b" {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestSegmentNumberedList(t *testing.T) {
	t.Parallel()

	got := Segment("1. feat: add thing\n2. fix: repair thing\n3. docs: describe thing")
	want := []string{"feat: add thing", "fix: repair thing", "docs: describe thing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("numbering must be discarded, got %v", got)
	}
}

func TestSegmentBlankRunsGatedOnTypePrefix(t *testing.T) {
	t.Parallel()

	raw := "feat: first change\n\nfix: second change\n\nthis paragraph is not a message"
	got := Segment(raw)
	if len(got) != 2 {
		t.Fatalf("expected the unrelated paragraph to be dropped, got %v", got)
	}
	if got[0] != "feat: first change" || got[1] != "fix: second change" {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestSegmentConcatenatedMessages(t *testing.T) {
	t.Parallel()

	// no separators at all: consecutive type-prefixed lines
	got := Segment("feat: one\nfix: two\ndocs: three")
	want := []string{"feat: one", "fix: two", "docs: three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestSegmentLineWalkDiscardsLeadingNoise(t *testing.T) {
	t.Parallel()

	raw := "Sure! Based on the diff I suggest:\nfeat: add parser\nsome trailing note\nfix: handle nil"
	got := Segment(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	if got[0] != "feat: add parser\nsome trailing note" {
		t.Fatalf("non-matching line must extend the current message, got %q", got[0])
	}
	if got[1] != "fix: handle nil" {
		t.Fatalf("unexpected second candidate: %q", got[1])
	}
}

func TestSegmentSingleMessagePassesThrough(t *testing.T) {
	t.Parallel()

	got := Segment("fix: the only suggestion")
	if len(got) != 1 || got[0] != "fix: the only suggestion" {
		t.Fatalf("unexpected candidates: %v", got)
	}
}

func TestSegmentKeepsEarlierSingleCandidateWhenLaterStrategiesFindNothing(t *testing.T) {
	t.Parallel()

	// the line walk finds no type-prefixed line, but the whole blob is still
	// worth handing to the cleaner
	got := Segment("- feat: bulleted single suggestion")
	if len(got) != 1 || got[0] != "- feat: bulleted single suggestion" {
		t.Fatalf("unexpected candidates: %v", got)
	}
}
