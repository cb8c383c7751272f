package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Whisper invocation constants
const (
	WhisperCommand = "whisper-cli"

	// DefaultModelFile is the bundled base model expected next to the app
	DefaultModelFile = "whisper/ggml-base.bin"
)

// Transcriber produces transcript text from an audio file on disk
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// WhisperTranscriber runs the whisper.cpp CLI against a local model file
type WhisperTranscriber struct {
	binPath   string
	modelPath string
}

// LoadWhisper resolves the whisper binary and verifies the model file exists.
// Both checks happen once per run so a broken install fails before the first
// item rather than per transcription.
func LoadWhisper(modelPath string) (*WhisperTranscriber, error) {
	binPath, err := exec.LookPath(WhisperCommand)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", WhisperCommand, err)
	}

	info, err := os.Stat(modelPath)
	if err != nil {
		return nil, fmt.Errorf("whisper model not found at %s: %w", modelPath, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("whisper model at %s is empty", modelPath)
	}

	return &WhisperTranscriber{
		binPath:   binPath,
		modelPath: modelPath,
	}, nil
}

// Transcribe runs speech-to-text on the audio file and returns the text
func (w *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file not readable: %w", err)
	}

	args := w.BuildArgs(audioPath)
	cmd := exec.CommandContext(ctx, w.binPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("whisper failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", fmt.Errorf("whisper produced no output for %s", audioPath)
	}
	return text, nil
}

// BuildArgs builds the whisper-cli command arguments
func (w *WhisperTranscriber) BuildArgs(audioPath string) []string {
	return []string{
		"-m", w.modelPath, // Model file
		"-f", audioPath, // Input audio
		"-nt", // No timestamps, plain text to stdout
		"-np", // No progress prints on stderr
	}
}
