package download

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSession_Setup(t *testing.T) {
	base := filepath.Join(t.TempDir(), "downloads")
	session := NewSession(base)

	if err := session.Setup(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if session.Folder == "" {
		t.Fatal("Expected session folder to be set")
	}

	name := filepath.Base(session.Folder)
	if !strings.HasPrefix(name, SessionPrefix) {
		t.Errorf("Expected session folder name to start with %q, got %q", SessionPrefix, name)
	}

	info, err := os.Stat(session.Folder)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected session folder on disk: %v", err)
	}
}

func TestSession_ItemDir(t *testing.T) {
	session := NewSession(t.TempDir())
	if err := session.Setup(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dir := session.ItemDir(3)
	if dir != filepath.Join(session.Folder, "item3") {
		t.Errorf("Unexpected item dir: %s", dir)
	}
}

func TestNewSession_DefaultBaseDir(t *testing.T) {
	session := NewSession("")
	if session.BaseDir != DefaultBaseDir {
		t.Errorf("Expected base dir %q, got %q", DefaultBaseDir, session.BaseDir)
	}
}

func TestGenerateRunID(t *testing.T) {
	id1 := generateRunID()
	id2 := generateRunID()

	if id1 == id2 {
		t.Error("Expected different run IDs")
	}
	if !strings.HasPrefix(id1, RunIDPrefix) {
		t.Errorf("Expected ID to start with %q, got %q", RunIDPrefix, id1)
	}
}
