// Package export assembles downloadable bundles from finished sessions so
// the operator can drop straight into an editing tool.
package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/promptbuild"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/studio"
)

// Archive builds a zip of everything a finished production run yielded:
// shot images, narration audio, scripts, video tool prompts, and the raw
// trend report when one exists. Shots without an image are skipped; their
// absence is visible in the manifest.
func Archive(snap studio.Snapshot, videoTool, scriptStyle string) ([]byte, error) {
	if len(snap.Shots) == 0 && snap.TrendReport == "" {
		return nil, fmt.Errorf("%w: session has nothing to export", domain.ErrValidation)
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	var manifest strings.Builder
	manifest.WriteString("CONTENT BUNDLE\n\n")
	if snap.Script != "" {
		writeEntry(zw, "script.txt", []byte(snap.Script))
		manifest.WriteString("script.txt\n")
	}
	if snap.Metadata.Description != "" || len(snap.Metadata.Keywords) > 0 {
		meta := snap.Metadata.Description + "\n\n" + strings.Join(snap.Metadata.Keywords, ", ")
		writeEntry(zw, "metadata.txt", []byte(meta))
		manifest.WriteString("metadata.txt\n")
	}
	if snap.TrendReport != "" {
		writeEntry(zw, "trend_report.txt", []byte(snap.TrendReport))
		manifest.WriteString("trend_report.txt\n")
	}

	var prompts strings.Builder
	for i, shot := range snap.Shots {
		if shot.Image != nil {
			name := fmt.Sprintf("shots/shot_%02d.png", i+1)
			writeEntry(zw, name, shot.Image)
			manifest.WriteString(name + "\n")
		} else {
			manifest.WriteString(fmt.Sprintf("shots/shot_%02d.png MISSING (%s)\n", i+1, shot.Error))
		}
		if shot.Audio != nil {
			name := fmt.Sprintf("audio/shot_%02d.pcm", i+1)
			writeEntry(zw, name, shot.Audio)
			manifest.WriteString(name + "\n")
		}
		if shot.Narration != "" {
			prompts.WriteString(fmt.Sprintf("SHOT %d NARRATION:\n%s\n\n", i+1, shot.Narration))
		}
		if videoTool != "" {
			prompts.WriteString(fmt.Sprintf("SHOT %d VIDEO PROMPT (%s):\n%s\n\n",
				i+1, videoTool, promptbuild.PlatformPrompt(videoTool, shot, i, scriptStyle)))
		}
	}
	if prompts.Len() > 0 {
		writeEntry(zw, "prompts.txt", []byte(prompts.String()))
		manifest.WriteString("prompts.txt\n")
	}
	writeEntry(zw, "manifest.txt", []byte(manifest.String()))

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) {
	w, err := zw.Create(name)
	if err != nil {
		return
	}
	_, _ = w.Write(data)
}
