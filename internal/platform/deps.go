package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// External binary names
const (
	YTDLPBinary   = "yt-dlp"
	FFmpegBinary  = "ffmpeg"
	FFprobeBinary = "ffprobe"
	WhisperBinary = "whisper-cli"
)

// DependencyReport describes which external binaries were found on PATH
type DependencyReport struct {
	YTDLPFound   bool   `json:"yt_dlp_found"`
	YTDLPPath    string `json:"yt_dlp_path,omitempty"`
	FFmpegFound  bool   `json:"ffmpeg_found"`
	FFmpegPath   string `json:"ffmpeg_path,omitempty"`
	WhisperFound bool   `json:"whisper_found"`
	WhisperPath  string `json:"whisper_path,omitempty"`
}

// DependencyStatus probes PATH for the external tools the app can use
func DependencyStatus() DependencyReport {
	report := DependencyReport{}
	if path, err := exec.LookPath(YTDLPBinary); err == nil {
		report.YTDLPFound = true
		report.YTDLPPath = path
	}
	if path, err := exec.LookPath(FFmpegBinary); err == nil {
		report.FFmpegFound = true
		report.FFmpegPath = path
	}
	if path, err := exec.LookPath(WhisperBinary); err == nil {
		report.WhisperFound = true
		report.WhisperPath = path
	}
	return report
}

// Summary returns a one-line description of missing tools, empty if all found.
// Whisper is reported only as optional since transcription degrades gracefully.
func (r DependencyReport) Summary() string {
	var missing []string
	if !r.YTDLPFound {
		missing = append(missing, YTDLPBinary)
	}
	if !r.FFmpegFound {
		missing = append(missing, FFmpegBinary)
	}
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("Missing tools: %s", strings.Join(missing, ", "))
}
