package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupAndCleanup(t *testing.T) {
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Output: &buf})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	L().Info("server.listening", "addr", ":8000")
	L().Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "server.listening") || !strings.Contains(out, "addr=:8000") {
		t.Fatalf("expected info record, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level")
	}

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	before := buf.Len()
	L().Info("after.cleanup")
	if buf.Len() != before {
		t.Fatalf("expected records to be discarded after cleanup")
	}
}

func TestDiscardBeforeSetup(t *testing.T) {
	setDiscard()
	if L() == nil {
		t.Fatalf("expected a usable logger before Setup")
	}
	L().Info("dropped")
}
