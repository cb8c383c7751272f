package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
)

// YTDLPAgentName is the display name used in progress and error messages
const YTDLPAgentName = "yt-dlp"

// videoMetadata mirrors the fields we need from yt-dlp --dump-json output
type videoMetadata struct {
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Title       string `json:"title"`
}

// YTDLPAgent downloads posts by driving the yt-dlp executable. The binary
// fetches the video and dumps post metadata as JSON; the thumbnail is fetched
// separately over HTTP from the URL the metadata names.
type YTDLPAgent struct {
	client    *http.Client
	extractor AudioExtractor
}

// NewYTDLPAgent creates the yt-dlp backed agent
func NewYTDLPAgent(extractor AudioExtractor) *YTDLPAgent {
	return &YTDLPAgent{
		client:    newMediaClient(),
		extractor: extractor,
	}
}

// Name returns the agent display name
func (a *YTDLPAgent) Name() string {
	return YTDLPAgentName
}

// Download fetches one post via yt-dlp and writes the requested artifacts.
// A missing binary and the two yt-dlp invocations are unrecoverable and carry
// distinct messages so the combined fallback error stays diagnostic.
func (a *YTDLPAgent) Download(ctx context.Context, item *model.ReelItem, n int, sessionFolder string, opts model.DownloadOptions, progress ProgressFunc) (*model.Result, error) {
	if _, err := exec.LookPath(platform.YTDLPBinary); err != nil {
		return nil, fmt.Errorf("%w: install it or place it on PATH", ErrToolMissing)
	}

	dir, err := EnsureItemDir(sessionFolder, n)
	if err != nil {
		return nil, err
	}
	res := &model.Result{FolderPath: dir}

	if opts.NeedsVideo() {
		progress(item.URL, 10, "Downloading with yt-dlp...")
		videoPath := filepath.Join(dir, VideoFileName(n))

		dl := ytdlp.New().
			ForceOverwrites().
			Quiet().
			NoWarnings().
			Output(videoPath)

		if _, err := dl.Run(ctx, item.URL); err != nil {
			return nil, fmt.Errorf("yt-dlp download failed: %w", err)
		}
		if opts.Video {
			res.VideoPath = videoPath
		}
	}

	progress(item.URL, 30, "Fetching post metadata...")
	meta, err := a.fetchMetadata(ctx, item.URL)
	if err != nil {
		return nil, err
	}

	if opts.Thumbnail && meta.Thumbnail != "" {
		progress(item.URL, 40, "Downloading thumbnail...")
		thumbPath := filepath.Join(dir, ThumbnailFileName(n))
		if err := fetchToFile(ctx, a.client, meta.Thumbnail, thumbPath); err != nil {
			log.Printf("Thumbnail download failed: %v", err)
		} else {
			res.ThumbnailPath = thumbPath
		}
	}

	if opts.Caption {
		caption := meta.Description
		if caption == "" {
			caption = DefaultCaption
		}
		res.Caption = caption
		if captionPath, err := writeCaption(dir, n, caption); err != nil {
			log.Printf("Caption save failed: %v", err)
		} else {
			res.CaptionPath = captionPath
		}
	}

	if opts.Audio {
		extractAudio(ctx, a.extractor, res, dir, n, item.URL, progress)
	}

	res.Title = meta.Title
	if res.Title == "" {
		res.Title = fmt.Sprintf("Reel %d", n)
	}
	progress(item.URL, 100, "Completed")
	return res, nil
}

// fetchMetadata runs yt-dlp in dump-json mode and decodes the description
func (a *YTDLPAgent) fetchMetadata(ctx context.Context, url string) (*videoMetadata, error) {
	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		DumpJSON()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp metadata fetch failed: %w", err)
	}
	return parseMetadata(result.Stdout)
}

// parseMetadata decodes one --dump-json payload
func parseMetadata(raw string) (*videoMetadata, error) {
	var meta videoMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp metadata: %w", err)
	}
	return &meta, nil
}
