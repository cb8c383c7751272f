package agent

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
)

// HTTP constants for media fetches
const (
	MediaFetchTimeout = 30 * time.Second
	UserAgentHeader   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// DefaultCaption is stored when a post carries no caption text
	DefaultCaption = "No caption available"
)

// newMediaClient returns the HTTP client both agents use for binary fetches
func newMediaClient() *http.Client {
	return &http.Client{Timeout: MediaFetchTimeout}
}

// fetchToFile streams an HTTP GET response body into the target file
func fetchToFile(ctx context.Context, client *http.Client, rawURL, targetPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgentHeader)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, rawURL)
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(targetPath)
		return fmt.Errorf("failed to write %s: %w", targetPath, err)
	}

	return file.Close()
}

// writeCaption stores the caption text in the item folder and returns its path
func writeCaption(dir string, n int, caption string) (string, error) {
	captionPath := filepath.Join(dir, CaptionFileName(n))
	if err := os.WriteFile(captionPath, []byte(caption), platform.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("caption save failed: %w", err)
	}
	return captionPath, nil
}

// extractAudio runs the extractor against the item's video and records the
// audio path on success. Extraction failures are logged, never propagated:
// the item still completes without audio.
func extractAudio(ctx context.Context, extractor AudioExtractor, res *model.Result, dir string, n int, url string, progress ProgressFunc) {
	progress(url, 60, "Extracting audio...")

	videoPath := res.VideoPath
	if videoPath == "" {
		videoPath = filepath.Join(dir, VideoFileName(n))
	}
	if _, err := os.Stat(videoPath); err != nil {
		return
	}

	audioPath := filepath.Join(dir, AudioFileName(n))
	ok, err := extractor.Extract(ctx, videoPath, audioPath)
	if err != nil {
		log.Printf("Audio extraction failed for %s: %v", videoPath, err)
		return
	}
	if ok {
		res.AudioPath = audioPath
	}
}
