package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesWorkspaceLog(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	want := filepath.Join(root, ".cookiecalc", "logs", "cookiecalc.log")
	if Path() != want {
		t.Fatalf("expected path=%s, got=%s", want, Path())
	}

	L().Info("convert.done", "unit", "g")

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"convert.done"`) {
		t.Fatalf("expected record in log, got:\n%s", b)
	}
}

func TestSetup_DebugLevelAndWriter(t *testing.T) {
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	L().Debug("catalog.loaded", "count", 21)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected init + debug record, got %d lines:\n%s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec["level"] != "DEBUG" || rec["msg"] != "catalog.loaded" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source attr in debug mode: %v", rec)
	}
}

func TestCleanup_RestoresDiscard(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	before := buf.Len()
	L().Info("after.cleanup")
	if buf.Len() != before {
		t.Fatalf("expected no writes after cleanup")
	}
	if IsReady() == nil {
		t.Fatalf("expected logger not ready after cleanup")
	}
}
