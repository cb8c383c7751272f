package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// FFmpeg constants for audio extraction
const (
	// Audio codec settings
	AudioCodec   = "libmp3lame"
	AudioBitrate = "192k"

	// Executable and probe constants
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeAudioStreams = "a"
	FFprobeShowEntries  = "stream=codec_type"
	FFprobeOutputFormat = "csv=p=0"
)

// Extractor extracts the audio track of a video file using ffmpeg.
// The zero value is not usable; construct it with NewExtractor.
type Extractor struct {
	ffmpegPath  string
	ffprobePath string
}

// NewExtractor creates an extractor using ffmpeg/ffprobe from PATH
func NewExtractor() *Extractor {
	return &Extractor{
		ffmpegPath:  FFmpegCommand,
		ffprobePath: FFprobeCommand,
	}
}

// Extract writes the audio track of videoPath to audioPath as mp3.
// Returns true only when an audio stream was found and written; a video with
// no audio stream yields (false, nil) and creates no file. Partial output is
// removed when ffmpeg fails, so repeated invocations never leak files.
func (e *Extractor) Extract(ctx context.Context, videoPath, audioPath string) (bool, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return false, fmt.Errorf("video file not readable: %w", err)
	}

	hasAudio, err := e.hasAudioStream(ctx, videoPath)
	if err != nil {
		return false, err
	}
	if !hasAudio {
		return false, nil
	}

	args := e.BuildExtractArgs(videoPath, audioPath)
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Remove partial output file
		os.Remove(audioPath)
		return false, fmt.Errorf("ffmpeg extraction failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return true, nil
}

// BuildExtractArgs builds the ffmpeg command arguments for audio extraction
func (e *Extractor) BuildExtractArgs(videoPath, audioPath string) []string {
	return []string{
		"-y",            // Overwrite output file
		"-i", videoPath, // Input file
		"-vn",               // Drop the video stream
		"-acodec", AudioCodec, // Audio codec
		"-b:a", AudioBitrate, // Audio bitrate
		"-loglevel", FFprobeLogLevel, // Quiet output
		audioPath, // Output file
	}
}

// hasAudioStream checks for an audio stream in the file using ffprobe
func (e *Extractor) hasAudioStream(ctx context.Context, videoPath string) (bool, error) {
	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", FFprobeLogLevel,
		"-select_streams", FFprobeAudioStreams,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		videoPath)

	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	return parseStreamProbe(string(output)), nil
}

// parseStreamProbe interprets ffprobe csv output listing audio streams
func parseStreamProbe(output string) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
