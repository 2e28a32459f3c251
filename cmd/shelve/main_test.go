package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelve/internal/faults"
	"shelve/internal/report"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	// Point at a nonexistent config so user machines never leak state in.
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--config", configPath))
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootOrganizesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "photo.jpg"), "img")
	writeFixture(t, filepath.Join(dir, "notes.txt"), "txt")

	output, err := executeRoot(t, dir, "--log-level", "error")
	if err != nil {
		t.Fatalf("Execute: %v\noutput: %s", err, output)
	}

	if _, err := os.Stat(filepath.Join(dir, "Images", "photo.jpg")); err != nil {
		t.Fatalf("photo.jpg not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Documents", "notes.txt")); err != nil {
		t.Fatalf("notes.txt not moved: %v", err)
	}
	for _, fragment := range []string{"Documents: 1 file(s) moved", "Images: 1 file(s) moved", "Total: 2 file(s) moved"} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, output)
		}
	}
}

func TestRootDryRunLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "song.mp3"), "audio")

	output, err := executeRoot(t, dir, "--dry-run", "--log-level", "error")
	if err != nil {
		t.Fatalf("Execute: %v\noutput: %s", err, output)
	}

	if _, err := os.Stat(filepath.Join(dir, "song.mp3")); err != nil {
		t.Fatalf("dry run moved a file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Audio")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("dry run created a folder: %v", err)
	}
	if !strings.Contains(output, "Dry run: nothing was moved.") {
		t.Fatalf("expected dry-run notice in output:\n%s", output)
	}
	if !strings.Contains(output, "Audio: 1 file(s) would move") {
		t.Fatalf("expected planned counts in output:\n%s", output)
	}
}

func TestRootJSONReport(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "main.go"), "package main")

	output, err := executeRoot(t, dir, "--json")
	if err != nil {
		t.Fatalf("Execute: %v\noutput: %s", err, output)
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(output), &rep); err != nil {
		t.Fatalf("invalid JSON report: %v\noutput: %s", err, output)
	}
	if rep.Moved["Code"] != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestRootMissingDirectoryFails(t *testing.T) {
	_, err := executeRoot(t, filepath.Join(t.TempDir(), "missing"), "--log-level", "error")
	if !errors.Is(err, faults.ErrNotADirectory) {
		t.Fatalf("expected ErrNotADirectory, got %v", err)
	}
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	output, err := executeRoot(t)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(output, "Usage:") {
		t.Fatalf("expected help text, got:\n%s", output)
	}
}

func TestCategoriesCommand(t *testing.T) {
	output, err := executeRoot(t, "categories")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, fragment := range []string{"Images", ".jpg", "Other: (everything else)"} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, output)
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	output, err := executeRoot(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("Execute: %v\noutput: %s", err, output)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// A second init without --overwrite refuses to clobber.
	if _, err := executeRoot(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error for existing config")
	}
}
