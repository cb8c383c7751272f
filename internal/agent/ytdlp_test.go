package agent

import "testing"

func TestParseMetadata(t *testing.T) {
	raw := `{"thumbnail":"https://cdn.example/t.jpg","description":"A reel","title":"My Reel","extra":"ignored"}`

	meta, err := parseMetadata(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if meta.Thumbnail != "https://cdn.example/t.jpg" {
		t.Errorf("Unexpected thumbnail: %s", meta.Thumbnail)
	}
	if meta.Description != "A reel" {
		t.Errorf("Unexpected description: %s", meta.Description)
	}
	if meta.Title != "My Reel" {
		t.Errorf("Unexpected title: %s", meta.Title)
	}
}

func TestParseMetadata_Invalid(t *testing.T) {
	if _, err := parseMetadata("not json"); err == nil {
		t.Error("Expected error for malformed metadata")
	}
}

func TestYTDLPAgent_Name(t *testing.T) {
	ag := NewYTDLPAgent(noAudioExtractor{})
	if ag.Name() != "yt-dlp" {
		t.Errorf("Expected agent name 'yt-dlp', got %q", ag.Name())
	}
}
