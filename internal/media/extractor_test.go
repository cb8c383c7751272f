package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildExtractArgs(t *testing.T) {
	extractor := NewExtractor()
	args := extractor.BuildExtractArgs("/tmp/video1.mp4", "/tmp/audio1.mp3")

	expected := []string{
		"-y",
		"-i", "/tmp/video1.mp4",
		"-vn",
		"-acodec", AudioCodec,
		"-b:a", AudioBitrate,
		"-loglevel", FFprobeLogLevel,
		"/tmp/audio1.mp3",
	}

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(args), args)
	}

	for i, arg := range expected {
		if args[i] != arg {
			t.Errorf("Arg %d: expected %q, got %q", i, arg, args[i])
		}
	}
}

func TestParseStreamProbe(t *testing.T) {
	tests := []struct {
		output   string
		expected bool
	}{
		{"audio\n", true},
		{"audio\naudio\n", true},
		{"", false},
		{"\n", false},
		{"   \n  \n", false},
	}

	for _, test := range tests {
		result := parseStreamProbe(test.output)
		if result != test.expected {
			t.Errorf("parseStreamProbe(%q) = %v, expected %v", test.output, result, test.expected)
		}
	}
}

func TestExtract_MissingVideo(t *testing.T) {
	extractor := NewExtractor()
	audioPath := filepath.Join(t.TempDir(), "audio1.mp3")

	ok, err := extractor.Extract(context.Background(), "/nonexistent/video1.mp4", audioPath)
	if err == nil {
		t.Error("Expected error for missing video file")
	}
	if ok {
		t.Error("Expected ok=false for missing video file")
	}

	// No output file may be left behind
	if _, err := os.Stat(audioPath); !os.IsNotExist(err) {
		t.Error("Expected no audio file to be created")
	}
}
