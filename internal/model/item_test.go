package model

import "testing"

func TestNewReelItem(t *testing.T) {
	item := NewReelItem("https://www.instagram.com/reel/Cxyz123/")

	if item.URL != "https://www.instagram.com/reel/Cxyz123/" {
		t.Errorf("Expected URL to be preserved, got '%s'", item.URL)
	}

	if item.Status != StatusPending {
		t.Errorf("Expected status Pending, got %s", item.Status)
	}

	if item.Progress != 0 {
		t.Errorf("Expected progress 0, got %d", item.Progress)
	}
}

func TestReelItem_ApplyResult(t *testing.T) {
	item := NewReelItem("https://www.instagram.com/reel/Cxyz123/")
	item.Status = StatusDownloading
	item.ErrorMessage = "previous attempt failed"

	result := &Result{
		FolderPath:    "/downloads/session_x/item1",
		VideoPath:     "/downloads/session_x/item1/video1.mp4",
		ThumbnailPath: "/downloads/session_x/item1/thumbnail1.jpg",
		Caption:       "Fake caption",
		Title:         "Reel 1",
	}

	item.ApplyResult(result)

	if item.Status != StatusCompleted {
		t.Errorf("Expected status Completed, got %s", item.Status)
	}

	if item.Progress != 100 {
		t.Errorf("Expected progress 100, got %d", item.Progress)
	}

	if item.VideoPath != result.VideoPath {
		t.Errorf("Expected video path '%s', got '%s'", result.VideoPath, item.VideoPath)
	}

	if item.Caption != "Fake caption" {
		t.Errorf("Expected caption to be applied, got '%s'", item.Caption)
	}

	if item.Title != "Reel 1" {
		t.Errorf("Expected title 'Reel 1', got '%s'", item.Title)
	}

	if item.ErrorMessage != "" {
		t.Errorf("Expected error message to be cleared, got '%s'", item.ErrorMessage)
	}
}

func TestReelItem_ApplyResult_Nil(t *testing.T) {
	item := NewReelItem("https://www.instagram.com/reel/Cxyz123/")
	item.ApplyResult(nil)

	if item.Status != StatusPending {
		t.Errorf("Expected nil result to be ignored, got status %s", item.Status)
	}
}

func TestReelItem_SetError(t *testing.T) {
	item := NewReelItem("https://www.instagram.com/reel/Cxyz123/")
	item.SetError("Both downloaders failed: a | b")

	if item.Status != StatusError {
		t.Errorf("Expected status Error, got %s", item.Status)
	}

	if item.ErrorMessage != "Both downloaders failed: a | b" {
		t.Errorf("Unexpected error message: '%s'", item.ErrorMessage)
	}
}

func TestReelItem_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Reel 1", "https://www.instagram.com/reel/abc/", "Reel 1"},
		{"", "https://www.instagram.com/reel/abc/", "https://www.instagram.com/reel/abc/"},
		{"https://elsewhere", "https://www.instagram.com/reel/abc/", "https://www.instagram.com/reel/abc/"},
	}

	for _, test := range tests {
		item := &ReelItem{Title: test.title, URL: test.url}
		result := item.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q url=%q = %q, expected %q", test.title, test.url, result, test.expected)
		}
	}
}
