package extract

import (
	"reflect"
	"testing"
)

func TestCleanStripsPreambleLine(t *testing.T) {
	t.Parallel()

	got := Clean([]string{"Here are some commit messages:\nfeat: add widget"})
	if len(got) != 1 || got[0] != "feat: add widget" {
		t.Fatalf("unexpected cleaned candidates: %v", got)
	}
}

func TestCleanStripsBulletMarkers(t *testing.T) {
	t.Parallel()

	got := Clean([]string{"- feat: dashed", "* fix: starred", "• docs: bulleted"})
	want := []string{"feat: dashed", "fix: starred", "docs: bulleted"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected cleaned candidates: %v", got)
	}
}

func TestCleanDiscardsNonMessages(t *testing.T) {
	t.Parallel()

	got := Clean([]string{
		"feat: kept",
		"I hope these help!",
		"Commit messages:",
		"unknown: not a real type",
	})
	if len(got) != 1 || got[0] != "feat: kept" {
		t.Fatalf("expected only the real message to survive, got %v", got)
	}
}

func TestCleanKeepsBodies(t *testing.T) {
	t.Parallel()

	got := Clean([]string{"- fix: subject\n\nbody stays attached"})
	if len(got) != 1 || got[0] != "fix: subject\n\nbody stays attached" {
		t.Fatalf("unexpected cleaned candidates: %v", got)
	}
}
