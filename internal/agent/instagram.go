package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
)

// Instagram web API constants
const (
	InstagramAgentName = "Instagram"

	// DefaultAPIBaseURL is the web endpoint serving post JSON by shortcode
	DefaultAPIBaseURL = "https://www.instagram.com"

	apiQuerySuffix = "?__a=1&__d=dis"
)

// Post holds the metadata needed to produce every artifact of one post
type Post struct {
	VideoURL     string
	ThumbnailURL string
	Caption      string
}

// PostFetcher resolves a shortcode to post metadata
type PostFetcher interface {
	FetchPost(ctx context.Context, shortcode string) (*Post, error)
}

// InstagramAgent downloads posts through Instagram's web API and direct HTTP
type InstagramAgent struct {
	fetcher   PostFetcher
	client    *http.Client
	extractor AudioExtractor
}

// NewInstagramAgent creates the web-API backed agent
func NewInstagramAgent(extractor AudioExtractor) *InstagramAgent {
	client := newMediaClient()
	return &InstagramAgent{
		fetcher:   &webAPIFetcher{client: client, baseURL: DefaultAPIBaseURL},
		client:    client,
		extractor: extractor,
	}
}

// NewInstagramAgentWithFetcher creates the agent with a custom post fetcher
func NewInstagramAgentWithFetcher(fetcher PostFetcher, extractor AudioExtractor) *InstagramAgent {
	return &InstagramAgent{
		fetcher:   fetcher,
		client:    newMediaClient(),
		extractor: extractor,
	}
}

// Name returns the agent display name used in progress and error messages
func (a *InstagramAgent) Name() string {
	return InstagramAgentName
}

// Download fetches one post and writes the requested artifacts.
// Shortcode resolution, metadata fetch, and the video download are
// unrecoverable; thumbnail, audio, and caption degrade to absent fields.
func (a *InstagramAgent) Download(ctx context.Context, item *model.ReelItem, n int, sessionFolder string, opts model.DownloadOptions, progress ProgressFunc) (*model.Result, error) {
	shortcode := platform.ExtractShortcode(item.URL)
	if shortcode == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, item.URL)
	}

	progress(item.URL, 10, "Fetching reel data...")
	post, err := a.fetcher.FetchPost(ctx, shortcode)
	if err != nil {
		return nil, fmt.Errorf("post lookup failed: %w", err)
	}

	dir, err := EnsureItemDir(sessionFolder, n)
	if err != nil {
		return nil, err
	}
	res := &model.Result{FolderPath: dir}

	if opts.NeedsVideo() {
		progress(item.URL, 20, "Downloading video...")
		videoPath := filepath.Join(dir, VideoFileName(n))
		if err := fetchToFile(ctx, a.client, post.VideoURL, videoPath); err != nil {
			return nil, fmt.Errorf("video download failed: %w", err)
		}
		if opts.Video {
			res.VideoPath = videoPath
		}
	}

	if opts.Thumbnail {
		progress(item.URL, 40, "Downloading thumbnail...")
		thumbPath := filepath.Join(dir, ThumbnailFileName(n))
		if err := fetchToFile(ctx, a.client, post.ThumbnailURL, thumbPath); err != nil {
			log.Printf("Thumbnail download failed: %v", err)
		} else {
			res.ThumbnailPath = thumbPath
		}
	}

	if opts.Audio {
		extractAudio(ctx, a.extractor, res, dir, n, item.URL, progress)
	}

	if opts.Caption {
		progress(item.URL, 80, "Getting caption...")
		caption := post.Caption
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

	res.Title = fmt.Sprintf("Reel %d", n)
	progress(item.URL, 100, "Completed")
	return res, nil
}

// webAPIFetcher fetches post JSON from the Instagram web endpoint
type webAPIFetcher struct {
	client  *http.Client
	baseURL string
}

// webAPIResponse mirrors the fields we need from the post JSON payload
type webAPIResponse struct {
	Items []struct {
		VideoVersions []struct {
			URL string `json:"url"`
		} `json:"video_versions"`
		ImageVersions struct {
			Candidates []struct {
				URL string `json:"url"`
			} `json:"candidates"`
		} `json:"image_versions2"`
		Caption *struct {
			Text string `json:"text"`
		} `json:"caption"`
	} `json:"items"`
}

// FetchPost retrieves and decodes post metadata for the shortcode
func (f *webAPIFetcher) FetchPost(ctx context.Context, shortcode string) (*Post, error) {
	endpoint := fmt.Sprintf("%s/p/%s/%s", f.baseURL, shortcode, apiQuerySuffix)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgentHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for shortcode %s", resp.Status, shortcode)
	}

	var payload webAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode post metadata: %w", err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("no post found for shortcode %s", shortcode)
	}

	post := &Post{}
	entry := payload.Items[0]
	if len(entry.VideoVersions) > 0 {
		post.VideoURL = entry.VideoVersions[0].URL
	}
	if len(entry.ImageVersions.Candidates) > 0 {
		post.ThumbnailURL = entry.ImageVersions.Candidates[0].URL
	}
	if entry.Caption != nil {
		post.Caption = entry.Caption.Text
	}

	if post.VideoURL == "" {
		return nil, fmt.Errorf("post %s has no video", shortcode)
	}
	return post, nil
}
