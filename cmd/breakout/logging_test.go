package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")
	logger, err := setupLogger(path, "debug")
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	defer closeLogger()

	logger.Debug("hello", "k", 1)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestSetupLoggerBadLevel(t *testing.T) {
	if _, err := setupLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSetupLoggerNoFile(t *testing.T) {
	logger, err := setupLogger("", "info")
	if err != nil || logger == nil {
		t.Fatalf("setupLogger = (%v, %v)", logger, err)
	}
}
