package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	cases := []struct {
		level     string
		wantDebug bool
	}{
		{"debug", true},
		{"INFO", false},
		{"bogus", false},
	}

	for _, c := range cases {
		t.Run(c.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, Options{Level: c.level})
			logger.Debug("goto screen", "index", 1)
			if got := strings.Contains(buf.String(), "goto screen"); got != c.wantDebug {
				t.Fatalf("expected debug output=%v, got %q", c.wantDebug, buf.String())
			}
		})
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Format: "json", Prefix: "dlg"})
	logger.Info("shown", "label", "start")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "shown" || entry["label"] != "start" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DIALOG_LOG_LEVEL", "debug")
	t.Setenv("DIALOG_LOG_FORMAT", "")
	t.Setenv("DIALOG_LOG_FILE", "/tmp/dialog.log")

	opts := FromEnv()
	if opts.Level != "debug" || opts.Format != "text" || opts.File != "/tmp/dialog.log" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestNewFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialog.log")
	logger, closer := NewFileOnly(Options{File: path})
	logger.Info("hidden", "label", "end")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hidden") {
		t.Fatalf("expected log line in file, got %q", data)
	}

	logger, closer = NewFileOnly(Options{})
	logger.Info("discarded")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewToTeesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tee.log")
	var buf bytes.Buffer
	logger, closer := NewTo(&buf, Options{File: path})
	logger.Info("shown")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(string(data), "shown") {
		t.Fatalf("expected line in both sinks, got %q and %q", buf.String(), data)
	}
}
