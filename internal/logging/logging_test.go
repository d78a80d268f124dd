package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/slider-pong/internal/pong"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("config loaded", "source", "embedded")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "config loaded") || !strings.Contains(out, "pong") {
		t.Errorf("info line missing message or prefix: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestAnnouncer(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnnouncer(&buf)

	a.Announce(pong.ScoreEvent{Scorer: pong.Right, Score: pong.Score{Left: 0, Right: 1}})

	if got := strings.TrimSpace(buf.String()); got != "Right player scores! Score: 0 - 1" {
		t.Errorf("announcement = %q", got)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pong.log")

	w, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("file contents = %q", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	w, err := OpenFile("")
	if err != nil {
		t.Fatalf("OpenFile(\"\") failed: %v", err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Errorf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
