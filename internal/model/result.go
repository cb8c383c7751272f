package model

// Result is the per-item output bag assembled during processing. FolderPath is
// always set once the item folder exists; every other field is populated only
// if the corresponding stage succeeded. An empty VideoPath with Audio or
// Transcribe enabled means the video was fetched transiently and not retained.
type Result struct {
	FolderPath     string
	VideoPath      string
	ThumbnailPath  string
	AudioPath      string
	Caption        string
	CaptionPath    string
	Transcript     string
	TranscriptPath string
	Title          string
}
