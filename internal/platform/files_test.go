package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "downloads")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error creating directory, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestOpenFolderInManager_MissingFolder(t *testing.T) {
	err := OpenFolderInManager(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Expected error for missing folder, got nil")
	}
}

func TestDependencyReport_Summary(t *testing.T) {
	tests := []struct {
		report   DependencyReport
		expected string
	}{
		{DependencyReport{YTDLPFound: true, FFmpegFound: true}, ""},
		{DependencyReport{YTDLPFound: true, FFmpegFound: true, WhisperFound: false}, ""},
		{DependencyReport{FFmpegFound: true}, "Missing tools: yt-dlp"},
		{DependencyReport{}, "Missing tools: yt-dlp, ffmpeg"},
	}

	for _, test := range tests {
		result := test.report.Summary()
		if result != test.expected {
			t.Errorf("Summary() = %q, expected %q", result, test.expected)
		}
	}
}
