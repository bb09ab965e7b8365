package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/studio"
)

func readEntries(t *testing.T, archive []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(data)
	}
	return entries
}

func TestArchiveBundlesFinishedRun(t *testing.T) {
	snap := studio.Snapshot{
		ID:     "s1",
		Script: "hook line",
		Metadata: domain.PlanMetadata{
			Description: "serum promo",
			Keywords:    []string{"serum", "glow"},
		},
		Shots: []domain.Shot{
			{Number: 1, VisualPrompt: "close up", Narration: "Ini dia", Image: []byte("png1"), Audio: []byte("pcm1")},
			{Number: 2, VisualPrompt: "apply", Error: "render failed"},
			{Number: 3, VisualPrompt: "macro", Image: []byte("png3")},
		},
		TrendReport: "SECTION 1: CLEAN OUTPUT RULES",
	}

	archive, err := Archive(snap, "google_flow", "Hype")
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	entries := readEntries(t, archive)

	for _, name := range []string{"script.txt", "metadata.txt", "trend_report.txt", "shots/shot_01.png", "shots/shot_03.png", "audio/shot_01.pcm", "prompts.txt", "manifest.txt"} {
		if _, ok := entries[name]; !ok {
			t.Fatalf("archive missing %s (have %v)", name, keys(entries))
		}
	}
	if _, ok := entries["shots/shot_02.png"]; ok {
		t.Fatal("failed shot must not produce an image entry")
	}
	if !strings.Contains(entries["manifest.txt"], "shot_02.png MISSING (render failed)") {
		t.Fatalf("manifest does not flag the failed shot: %q", entries["manifest.txt"])
	}
	if !strings.Contains(entries["prompts.txt"], "GOOGLE FLOW VIDEO PROMPT - SCENE 1") {
		t.Fatalf("prompts missing flow scene prompt: %q", entries["prompts.txt"])
	}
	if !strings.Contains(entries["metadata.txt"], "serum, glow") {
		t.Fatalf("metadata keywords missing: %q", entries["metadata.txt"])
	}
}

func TestArchiveEmptySessionIsValidationError(t *testing.T) {
	if _, err := Archive(studio.Snapshot{ID: "s"}, "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	key, err := fs.Save(context.Background(), "session-1", []byte("zipdata"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != "session-1.zip" {
		t.Fatalf("key = %q", key)
	}

	if _, err := fs.Save(context.Background(), "../escape", []byte("x")); err == nil {
		t.Fatal("traversal key must be rejected")
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
