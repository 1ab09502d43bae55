package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/adventure-clicker/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteScoresEmpty(t *testing.T) {
	store := openTestStore(t)

	var out bytes.Buffer
	if err := writeScores(&out, store, 10); err != nil {
		t.Fatalf("writeScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No runs recorded yet.") {
		t.Errorf("output = %q, expected the empty message", out.String())
	}
	if strings.Contains(out.String(), "Last played") {
		t.Error("empty history should not print a last played date")
	}
}

func TestWriteScoresListsRunsAndStats(t *testing.T) {
	store := openTestStore(t)
	for _, run := range [][2]int{{50, 1}, {120, 4}, {80, 2}} {
		if _, err := store.SaveRun(run[0], run[1]); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := writeScores(&out, store, 2); err != nil {
		t.Fatalf("writeScores() failed: %v", err)
	}
	got := out.String()

	first := strings.Index(got, "120")
	second := strings.Index(got, "80")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected runs ordered 120 then 80, got %q", got)
	}
	if strings.Contains(got, "  3     ") {
		t.Errorf("limit 2 printed a third rank: %q", got)
	}

	for _, want := range []string{"Best: 120", "Runs: 3", "Gold nuggets: 7", "Last played: "} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
