package config

import (
	"fyne.io/fyne/v2"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/transcribe"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyPreferredAgent     = "preferred_downloader"
	KeyWhisperModelPath   = "whisper_model_path"
	KeyOptionVideo        = "opt_video"
	KeyOptionThumbnail    = "opt_thumbnail"
	KeyOptionAudio        = "opt_audio"
	KeyOptionCaption      = "opt_caption"
	KeyOptionTranscribe   = "opt_transcribe"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultAutoRevealComplete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured base download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the base download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetPreferredAgent returns the downloader tried first for each reel
func (s *Settings) GetPreferredAgent() model.AgentKind {
	kind := model.AgentKind(s.app.Preferences().String(KeyPreferredAgent))
	if kind != model.AgentInstagram && kind != model.AgentYTDLP {
		s.SetPreferredAgent(model.AgentInstagram)
		return model.AgentInstagram
	}
	return kind
}

// SetPreferredAgent sets the downloader tried first
func (s *Settings) SetPreferredAgent(kind model.AgentKind) {
	s.app.Preferences().SetString(KeyPreferredAgent, kind.String())
}

// GetWhisperModelPath returns the speech model location
func (s *Settings) GetWhisperModelPath() string {
	path := s.app.Preferences().String(KeyWhisperModelPath)
	if path == "" {
		s.SetWhisperModelPath(transcribe.DefaultModelFile)
		return transcribe.DefaultModelFile
	}
	return path
}

// SetWhisperModelPath sets the speech model location
func (s *Settings) SetWhisperModelPath(path string) {
	if path == "" {
		path = transcribe.DefaultModelFile
	}
	s.app.Preferences().SetString(KeyWhisperModelPath, path)
}

// GetDownloadOptions returns the persisted per-artifact option defaults
func (s *Settings) GetDownloadOptions() model.DownloadOptions {
	prefs := s.app.Preferences()
	defaults := model.DefaultDownloadOptions()
	return model.DownloadOptions{
		Video:          prefs.BoolWithFallback(KeyOptionVideo, defaults.Video),
		Thumbnail:      prefs.BoolWithFallback(KeyOptionThumbnail, defaults.Thumbnail),
		Audio:          prefs.BoolWithFallback(KeyOptionAudio, defaults.Audio),
		Caption:        prefs.BoolWithFallback(KeyOptionCaption, defaults.Caption),
		Transcribe:     prefs.BoolWithFallback(KeyOptionTranscribe, defaults.Transcribe),
		PreferredAgent: s.GetPreferredAgent(),
	}
}

// SetDownloadOptions persists the per-artifact option defaults
func (s *Settings) SetDownloadOptions(opts model.DownloadOptions) {
	prefs := s.app.Preferences()
	prefs.SetBool(KeyOptionVideo, opts.Video)
	prefs.SetBool(KeyOptionThumbnail, opts.Thumbnail)
	prefs.SetBool(KeyOptionAudio, opts.Audio)
	prefs.SetBool(KeyOptionCaption, opts.Caption)
	prefs.SetBool(KeyOptionTranscribe, opts.Transcribe)
	s.SetPreferredAgent(opts.PreferredAgent)
}

// GetAutoRevealOnComplete returns whether to open the session folder when a run finishes
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the session folder when a run finishes
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetAgentOptions returns the selectable retrieval agents
func (s *Settings) GetAgentOptions() []model.AgentKind {
	return []model.AgentKind{model.AgentInstagram, model.AgentYTDLP}
}
