package model

import "strings"

// ReelItem represents a single queued reel download.
// Result fields stay empty until the corresponding stage succeeds.
type ReelItem struct {
	URL           string
	Title         string
	Status        ItemStatus
	Progress      int // 0 to 100
	ThumbnailPath string
	VideoPath     string
	AudioPath     string
	Caption       string
	Transcript    string
	ErrorMessage  string
	FolderPath    string
}

// NewReelItem creates a pending item for the given URL
func NewReelItem(url string) *ReelItem {
	return &ReelItem{
		URL:    url,
		Status: StatusPending,
	}
}

// ApplyResult copies a completed run's artifacts into the item and marks it completed
func (ri *ReelItem) ApplyResult(r *Result) {
	if r == nil {
		return
	}
	ri.FolderPath = r.FolderPath
	ri.VideoPath = r.VideoPath
	ri.ThumbnailPath = r.ThumbnailPath
	ri.AudioPath = r.AudioPath
	ri.Caption = r.Caption
	ri.Transcript = r.Transcript
	if r.Title != "" {
		ri.Title = r.Title
	}
	ri.Status = StatusCompleted
	ri.Progress = 100
	ri.ErrorMessage = ""
}

// SetError marks the item failed with the given message
func (ri *ReelItem) SetError(message string) {
	ri.Status = StatusError
	ri.ErrorMessage = message
}

// GetDisplayTitle returns title or URL in order of preference
func (ri *ReelItem) GetDisplayTitle() string {
	if ri.Title != "" && !strings.HasPrefix(ri.Title, "http") {
		return ri.Title
	}
	return ri.URL
}
