package download

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/UKR-PROJECTS/instaloader-gui/internal/agent"
	"github.com/UKR-PROJECTS/instaloader-gui/internal/platform"
)

// Session directory constants
const (
	DefaultBaseDir    = "downloads"
	SessionPrefix     = "session_"
	SessionTimeFormat = "20060102_150405"
	RunIDPrefix       = "run-"
)

// Session is one queue-processing run's top-level output directory. Folders
// are timestamp-named and never reused across runs; every artifact for item N
// lives under Folder/item{N}.
type Session struct {
	BaseDir string
	Folder  string
	ID      string
}

// NewSession prepares a session rooted at baseDir without touching the disk
func NewSession(baseDir string) *Session {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return &Session{
		BaseDir: baseDir,
		ID:      generateRunID(),
	}
}

// Setup creates the timestamped session folder
func (s *Session) Setup() error {
	timestamp := time.Now().Format(SessionTimeFormat)
	s.Folder = filepath.Join(s.BaseDir, SessionPrefix+timestamp)
	if err := os.MkdirAll(s.Folder, platform.DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create session folder: %w", err)
	}
	return nil
}

// ItemDir returns the per-item directory path for the Nth item (1-based)
func (s *Session) ItemDir(n int) string {
	return filepath.Join(s.Folder, agent.ItemDirName(n))
}

// generateRunID generates a unique run ID using UUID v7 so history rows sort
// chronologically; falls back to a timestamp if UUID generation fails
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
