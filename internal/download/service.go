package download

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/agent"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/model"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/transcribe"
)

// Callbacks bundles the event sinks one run reports through. Any callback may
// be nil. All callbacks are invoked from the worker goroutine; the UI layer is
// responsible for marshaling onto its own thread.
type Callbacks struct {
	// OnProgress carries (url, percent, status); an empty url is run-wide status
	OnProgress func(url string, percent int, status string)

	// OnCompleted delivers the populated result for one item
	OnCompleted func(url string, result *model.Result)

	// OnError delivers a per-item or, with empty url, run-fatal error message
	OnError func(url string, message string)

	// OnFinished fires exactly once when the worker ends
	OnFinished func()
}

// TranscriberFactory loads the speech model. Invoked once per run, only when
// transcription is enabled; a load failure downgrades transcription to a
// no-op instead of aborting the run.
type TranscriberFactory func() (transcribe.Transcriber, error)

// Service processes one queue snapshot against a fixed set of options on a
// single background worker. Construct a new Service per run.
type Service struct {
	items     []model.ReelItem
	opts      model.DownloadOptions
	agents    map[model.AgentKind]agent.Agent
	extractor agent.AudioExtractor

	loadTranscriber TranscriberFactory
	transcriber     transcribe.Transcriber

	session   *Session
	callbacks Callbacks
	stopping  atomic.Bool
}

// NewService creates a download run over a snapshot of the queue. The items
// are copied so the worker never races with UI-driven queue mutations.
func NewService(items []*model.ReelItem, opts model.DownloadOptions, agents map[model.AgentKind]agent.Agent, extractor agent.AudioExtractor, loadTranscriber TranscriberFactory, baseDir string, callbacks Callbacks) *Service {
	snapshot := make([]model.ReelItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, *item)
	}

	return &Service{
		items:           snapshot,
		opts:            opts,
		agents:          agents,
		extractor:       extractor,
		loadTranscriber: loadTranscriber,
		session:         NewSession(baseDir),
		callbacks:       callbacks,
	}
}

// Start launches the worker goroutine
func (s *Service) Start() {
	go s.Run()
}

// Stop requests a cooperative stop. The flag is checked between items; an
// item already in progress finishes or fails naturally.
func (s *Service) Stop() {
	s.stopping.Store(true)
}

// SessionID returns the unique identifier of this run
func (s *Service) SessionID() string {
	return s.session.ID
}

// SessionFolder returns the session directory, empty before Run sets it up
func (s *Service) SessionFolder() string {
	return s.session.Folder
}

// Run executes the whole queue on the calling goroutine. Session setup
// failure is the only run-fatal condition; every per-item failure is
// converted to an item-level error event and the queue continues.
func (s *Service) Run() {
	defer s.emitFinished()

	ctx := context.Background()

	if err := s.session.Setup(); err != nil {
		s.emitError("", fmt.Sprintf("Session setup failed: %v", err))
		return
	}

	s.loadDependencies()

	for i, item := range s.items {
		if s.stopping.Load() {
			log.Printf("Stop requested, %d of %d items processed", i, len(s.items))
			break
		}
		s.processItem(ctx, item, i+1)
	}
}

// loadDependencies loads the speech model when transcription is enabled
func (s *Service) loadDependencies() {
	s.emitProgress("", 0, "Loading dependencies...")

	if !s.opts.Transcribe {
		return
	}
	if s.loadTranscriber == nil {
		log.Printf("Transcription enabled but no transcriber factory configured")
		return
	}

	s.emitProgress("", 5, "Loading speech model...")
	transcriber, err := s.loadTranscriber()
	if err != nil {
		log.Printf("Speech model load failed: %v", err)
		s.emitProgress("", 0, fmt.Sprintf("Speech model load failed: %v. Transcription disabled for this run.", err))
		return
	}
	s.transcriber = transcriber
}

// processItem runs the two-level fallback pipeline for one queued item
func (s *Service) processItem(ctx context.Context, item model.ReelItem, n int) {
	primary := s.agents[s.opts.PreferredAgent]
	fallback := s.agents[s.opts.PreferredAgent.Other()]

	s.emitProgress(item.URL, 0, fmt.Sprintf("Starting download with %s...", primary.Name()))

	result, primaryErr := primary.Download(ctx, &item, n, s.session.Folder, s.opts, s.emitProgress)
	if primaryErr != nil {
		s.emitProgress(item.URL, 0, fmt.Sprintf("%s failed: %v. Trying fallback %s...", primary.Name(), primaryErr, fallback.Name()))

		var fallbackErr error
		result, fallbackErr = fallback.Download(ctx, &item, n, s.session.Folder, s.opts, s.emitProgress)
		if fallbackErr != nil {
			s.emitError(item.URL, fmt.Sprintf("Both downloaders failed: %v | %v", primaryErr, fallbackErr))
			return
		}
	}

	if s.opts.Transcribe {
		s.transcribeResult(ctx, item.URL, result, n)
	}
	s.removeTransientVideo(result, n)

	s.emitCompleted(item.URL, result)
}

// transcribeResult runs the transcription post-step. When the result carries
// no audio, audio is extracted temporarily from the video and removed again
// whatever the transcription outcome.
func (s *Service) transcribeResult(ctx context.Context, url string, result *model.Result, n int) {
	if s.transcriber == nil {
		return
	}

	s.emitProgress(url, 90, "Transcribing audio...")

	audioSource := result.AudioPath
	tempAudio := ""
	if audioSource == "" {
		audioSource, tempAudio = s.extractTempAudio(ctx, result, n)
	}
	if tempAudio != "" {
		defer s.safeRemove(tempAudio)
	}

	if audioSource == "" {
		return
	}
	if _, err := os.Stat(audioSource); err != nil {
		return
	}

	text, err := s.transcriber.Transcribe(ctx, audioSource)
	if err != nil {
		log.Printf("Transcription error: %v", err)
		result.Transcript = fmt.Sprintf("Transcription failed: %v", err)
		return
	}
	result.Transcript = text

	transcriptPath := filepath.Join(result.FolderPath, agent.TranscriptFileName(n))
	if err := os.WriteFile(transcriptPath, []byte(text), platform.DefaultFilePermissions); err != nil {
		log.Printf("Could not write transcript file: %v", err)
		return
	}
	result.TranscriptPath = transcriptPath
}

// extractTempAudio extracts audio solely for transcription. Returns the audio
// source to transcribe and the temp path to delete afterwards; either may be
// empty. A temp path is returned even on failed extraction so partial output
// is cleaned up.
func (s *Service) extractTempAudio(ctx context.Context, result *model.Result, n int) (string, string) {
	videoPath := result.VideoPath
	if videoPath == "" {
		videoPath = filepath.Join(result.FolderPath, agent.VideoFileName(n))
	}
	if _, err := os.Stat(videoPath); err != nil {
		return "", ""
	}

	tempPath := filepath.Join(result.FolderPath, agent.TempAudioFileName(n))
	ok, err := s.extractor.Extract(ctx, videoPath, tempPath)
	if err != nil {
		log.Printf("Temporary audio extraction failed: %v", err)
		return "", tempPath
	}
	if !ok {
		return "", ""
	}
	return tempPath, tempPath
}

// removeTransientVideo deletes a video fetched only for audio or
// transcription. A retained video keeps its VideoPath set and is skipped.
func (s *Service) removeTransientVideo(result *model.Result, n int) {
	if s.opts.Video || result.VideoPath != "" {
		return
	}
	videoPath := filepath.Join(result.FolderPath, agent.VideoFileName(n))
	if _, err := os.Stat(videoPath); err != nil {
		return
	}
	s.safeRemove(videoPath)
}

// safeRemove deletes a file, logging instead of failing on error
func (s *Service) safeRemove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not remove file %s: %v", path, err)
	}
}

func (s *Service) emitProgress(url string, percent int, status string) {
	if s.callbacks.OnProgress != nil {
		s.callbacks.OnProgress(url, percent, status)
	}
}

func (s *Service) emitCompleted(url string, result *model.Result) {
	if s.callbacks.OnCompleted != nil {
		s.callbacks.OnCompleted(url, result)
	}
}

func (s *Service) emitError(url string, message string) {
	if s.callbacks.OnError != nil {
		s.callbacks.OnError(url, message)
	}
}

func (s *Service) emitFinished() {
	if s.callbacks.OnFinished != nil {
		s.callbacks.OnFinished()
	}
}
