package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
)

// Sentinel errors distinguishing failure causes in combined error messages
var (
	// ErrInvalidURL means the URL matched no known post pattern
	ErrInvalidURL = errors.New("invalid Instagram URL")

	// ErrToolMissing means the external downloader executable was not found
	ErrToolMissing = errors.New("yt-dlp executable not found")
)

// ProgressFunc reports progress for an item; an empty url signals run-wide status
type ProgressFunc func(url string, percent int, status string)

// AudioExtractor extracts an audio track from a video file on disk.
// Implemented by media.Extractor.
type AudioExtractor interface {
	Extract(ctx context.Context, videoPath, audioPath string) (bool, error)
}

// Agent retrieves one post's media and metadata into the item folder.
// Download returns an error only on unrecoverable failure; optional stages
// (thumbnail, caption, audio) degrade to absent result fields.
type Agent interface {
	Name() string
	Download(ctx context.Context, item *model.ReelItem, n int, sessionFolder string, opts model.DownloadOptions, progress ProgressFunc) (*model.Result, error)
}

// Artifact file naming, shared by both agents and the orchestrator so
// transient files can be located by convention.
func ItemDirName(n int) string        { return fmt.Sprintf("item%d", n) }
func VideoFileName(n int) string      { return fmt.Sprintf("video%d.mp4", n) }
func ThumbnailFileName(n int) string  { return fmt.Sprintf("thumbnail%d.jpg", n) }
func CaptionFileName(n int) string    { return fmt.Sprintf("caption%d.txt", n) }
func AudioFileName(n int) string      { return fmt.Sprintf("audio%d.mp3", n) }
func TranscriptFileName(n int) string { return fmt.Sprintf("transcript%d.txt", n) }
func TempAudioFileName(n int) string  { return fmt.Sprintf("temp_audio%d.mp3", n) }

// EnsureItemDir creates and returns the per-item directory under the session folder
func EnsureItemDir(sessionFolder string, n int) (string, error) {
	dir := filepath.Join(sessionFolder, ItemDirName(n))
	if err := os.MkdirAll(dir, platform.DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create item folder: %w", err)
	}
	return dir, nil
}
