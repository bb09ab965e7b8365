// Package report converts the loosely structured text of a trend analysis
// into a typed pack. Parsing is best effort: missing or reordered sections
// lower the success signal instead of failing.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

var (
	sectionHeaderRe = regexp.MustCompile(`SECTION \d+:\s*([A-Z][A-Z\s\(\)-]*)`)
	sceneSplitRe    = regexp.MustCompile(`SCENE \d+:`)
	visualPromptRe  = regexp.MustCompile(`VISUAL PROMPT:[ \t]*(.*)`)
	fieldLineRe     = regexp.MustCompile(`^[A-Z][A-Z\s]*:`)
	legacyTitleRe   = regexp.MustCompile(`^\d\)[ \t]+([A-Z][A-Z ]*)`)
	legacySplitRe   = regexp.MustCompile(`(?m)^\d\)[ \t]+[A-Z][A-Z ]*`)
)

// Parse converts raw analysis text into a TrendPack. Empty input is a
// distinct error; text without recognizable headers parses successfully with
// every field empty and Successful false.
func Parse(raw string) (*domain.TrendPack, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: nothing to parse", domain.ErrEmptyReport)
	}

	pack := &domain.TrendPack{}
	for _, sec := range splitSections(raw) {
		header := sec.Title
		content := sec.Body
		switch {
		case strings.Contains(header, "STORYBOARD"):
			pack.Storyboard = content
		case strings.Contains(header, "VIDEO PROMPT"):
			pack.VideoPrompt = content
		case strings.Contains(header, "VOICE OVER"):
			pack.VoiceOver = content
		case strings.Contains(header, "CLEAN OUTPUT RULES"):
			pack.Rules = content
		case strings.Contains(header, "REFERENCE LOCK"):
			pack.ReferenceLock = content
		}
	}

	if pack.Storyboard != "" {
		pack.ScenePrompts = extractScenePrompts(pack.Storyboard)
	}
	pack.ExtraSections = salvageLegacySections(raw)
	pack.Successful = len(pack.ScenePrompts) > 0 && pack.VideoPrompt != ""
	return pack, nil
}

// splitSections locates SECTION headers and slices the text between them.
// Go regexps have no lookahead, so content boundaries come from the index of
// the following header rather than a single capturing pattern.
func splitSections(raw string) []domain.TitledText {
	idx := sectionHeaderRe.FindAllStringSubmatchIndex(raw, -1)
	sections := make([]domain.TitledText, 0, len(idx))
	for i, m := range idx {
		title := strings.TrimSpace(raw[m[2]:m[3]])
		end := len(raw)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw[m[1]:end]), ":"))
		sections = append(sections, domain.TitledText{Title: title, Body: body})
	}
	return sections
}

// extractScenePrompts splits the storyboard on scene markers and pulls the
// VISUAL PROMPT content out of each block. A prompt runs until the next
// all-caps field label (ACTION:, CAMERA:, ...) or the end of the block.
func extractScenePrompts(storyboard string) []string {
	var prompts []string
	for _, scene := range sceneSplitRe.Split(storyboard, -1) {
		lines := strings.Split(scene, "\n")
		var collected []string
		collecting := false
		for _, line := range lines {
			if m := visualPromptRe.FindStringSubmatch(line); m != nil {
				collecting = true
				if s := strings.TrimSpace(m[1]); s != "" {
					collected = append(collected, s)
				}
				continue
			}
			if collecting {
				if fieldLineRe.MatchString(strings.TrimSpace(line)) {
					break
				}
				if s := strings.TrimSpace(line); s != "" {
					collected = append(collected, s)
				}
			}
		}
		if len(collected) > 0 {
			prompts = append(prompts, strings.Join(collected, "\n"))
		}
	}
	return prompts
}

// salvageLegacySections recovers numbered-list sections ("1) HEADER") from
// reports produced by older analysis revisions. SECTION-format blocks are
// already handled by the primary pass and are skipped here.
func salvageLegacySections(raw string) []domain.TitledText {
	var sections []domain.TitledText
	titles := legacySplitRe.FindAllString(raw, -1)
	bodies := legacySplitRe.Split(raw, -1)
	for i, title := range titles {
		body := ""
		if i+1 < len(bodies) {
			body = bodies[i+1]
		}
		// Trailing SECTION blocks bleed into the last legacy body.
		if idx := strings.Index(body, "SECTION "); idx >= 0 {
			body = body[:idx]
		}
		body = strings.TrimSpace(body)
		if len(body) < 5 {
			continue
		}
		name := title
		if m := legacyTitleRe.FindStringSubmatch(title); m != nil {
			name = strings.TrimSpace(m[1])
		}
		sections = append(sections, domain.TitledText{Title: name, Body: body})
	}
	return sections
}
