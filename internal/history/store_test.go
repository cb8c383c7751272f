package history

import (
	"path/filepath"
	"testing"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), DefaultFileName))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	result := &model.Result{
		FolderPath: "/downloads/session_x/item1",
		Title:      "Reel 1",
	}
	if err := store.RecordCompleted("run-1", "https://www.instagram.com/reel/a/", result); err != nil {
		t.Fatalf("RecordCompleted failed: %v", err)
	}
	if err := store.RecordError("run-1", "https://www.instagram.com/reel/b/", "Both downloaders failed: x | y"); err != nil {
		t.Fatalf("RecordError failed: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	// Most recent first
	if entries[0].Status != model.StatusError {
		t.Errorf("Expected newest entry to be the error, got %s", entries[0].Status)
	}
	if entries[0].ErrorMessage != "Both downloaders failed: x | y" {
		t.Errorf("Unexpected error message: %q", entries[0].ErrorMessage)
	}

	if entries[1].Status != model.StatusCompleted {
		t.Errorf("Expected completed entry, got %s", entries[1].Status)
	}
	if entries[1].Title != "Reel 1" {
		t.Errorf("Unexpected title: %q", entries[1].Title)
	}
	if entries[1].FolderPath != "/downloads/session_x/item1" {
		t.Errorf("Unexpected folder path: %q", entries[1].FolderPath)
	}
}

func TestStore_CountBySession(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if err := store.RecordError("run-a", "https://www.instagram.com/reel/x/", "failed"); err != nil {
			t.Fatalf("RecordError failed: %v", err)
		}
	}
	if err := store.RecordError("run-b", "https://www.instagram.com/reel/y/", "failed"); err != nil {
		t.Fatalf("RecordError failed: %v", err)
	}

	count, err := store.CountBySession("run-a")
	if err != nil {
		t.Fatalf("CountBySession failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 entries for run-a, got %d", count)
	}

	count, err = store.CountBySession("missing")
	if err != nil {
		t.Fatalf("CountBySession failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 entries for unknown session, got %d", count)
	}
}

func TestStore_RecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.RecordError("run-a", "https://www.instagram.com/reel/x/", "failed"); err != nil {
			t.Fatalf("RecordError failed: %v", err)
		}
	}

	entries, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected limit of 2 entries, got %d", len(entries))
	}
}
