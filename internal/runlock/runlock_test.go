package runlock_test

import (
	"errors"
	"testing"

	"shelve/internal/faults"
	"shelve/internal/runlock"
)

func TestAcquireAndRelease(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	lock, err := runlock.Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if lock.Path() == "" {
		t.Fatal("expected lock path")
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// Released locks can be taken again.
	again, err := runlock.Acquire(dir)
	if err != nil {
		t.Fatalf("re-Acquire: %v", err)
	}
	if err := again.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestSecondAcquireFails(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	lock, err := runlock.Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer lock.Release()

	if _, err := runlock.Acquire(dir); !errors.Is(err, faults.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestDistinctDirectoriesDoNotContend(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	first, err := runlock.Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire first: %v", err)
	}
	defer first.Release()

	second, err := runlock.Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire second: %v", err)
	}
	defer second.Release()
}

func TestReleaseNil(t *testing.T) {
	var lock *runlock.Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil Release: %v", err)
	}
}
