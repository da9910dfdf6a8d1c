package fs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt", "c.md")

	got, err := Candidates(dir, ".txt", "a.txt")
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	want := []string{"b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidatesSortedAndExcludesDirs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "z.go", "a.go", "m.go")
	if err := os.Mkdir(filepath.Join(dir, "sub.go"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	// Files under subdirectories are out of scope even with a matching extension.
	writeFiles(t, filepath.Join(dir, "sub.go"), "nested.go")

	got, err := Candidates(dir, ".go", "m.go")
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	want := []string{"a.go", "z.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidatesNoExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Makefile", "LICENSE", "main.go")

	got, err := Candidates(dir, "", "Makefile")
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	want := []string{"LICENSE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidatesMissingFolder(t *testing.T) {
	if _, err := Candidates(filepath.Join(t.TempDir(), "gone"), ".txt", "a.txt"); err == nil {
		t.Fatal("expected an error for a missing folder")
	}
}

func TestParentDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	t.Run("resolvable", func(t *testing.T) {
		got, ok := ParentDir(filepath.Join(dir, "a.txt"))
		if !ok || got != dir {
			t.Errorf("ParentDir = %q, %v; want %q, true", got, ok, dir)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, ok := ParentDir(""); ok {
			t.Error("expected no folder for an empty path")
		}
	})

	t.Run("root", func(t *testing.T) {
		if _, ok := ParentDir("/"); ok {
			t.Error("expected no folder for the filesystem root")
		}
	})

	t.Run("missing parent", func(t *testing.T) {
		if _, ok := ParentDir(filepath.Join(dir, "gone", "a.txt")); ok {
			t.Error("expected no folder when the parent does not exist")
		}
	})
}
