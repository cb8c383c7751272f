package model

// AgentKind identifies one of the two retrieval backends
type AgentKind string

const (
	// AgentInstagram is the web-API backed agent
	AgentInstagram AgentKind = "Instagram"

	// AgentYTDLP is the yt-dlp backed agent
	AgentYTDLP AgentKind = "yt-dlp"
)

// String returns the string representation of AgentKind
func (ak AgentKind) String() string {
	return string(ak)
}

// Other returns the opposite agent, used for fallback selection
func (ak AgentKind) Other() AgentKind {
	if ak == AgentInstagram {
		return AgentYTDLP
	}
	return AgentInstagram
}

// DownloadOptions holds per-run download preferences.
// Immutable for the duration of one processing run.
type DownloadOptions struct {
	Video          bool // keep the video file
	Thumbnail      bool // save the thumbnail image
	Audio          bool // extract and keep the audio track
	Caption        bool // save the caption text
	Transcribe     bool // run speech-to-text on the audio
	PreferredAgent AgentKind
}

// DefaultDownloadOptions returns the options preselected in the UI
func DefaultDownloadOptions() DownloadOptions {
	return DownloadOptions{
		Video:          true,
		Thumbnail:      true,
		Audio:          true,
		Caption:        true,
		Transcribe:     false,
		PreferredAgent: AgentInstagram,
	}
}

// NeedsVideo reports whether the video file must be fetched, either for
// retention or because a later stage (audio, transcription) consumes it.
func (o DownloadOptions) NeedsVideo() bool {
	return o.Video || o.Audio || o.Transcribe
}
