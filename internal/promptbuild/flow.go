package promptbuild

import (
	"fmt"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// VideoFlow builds the per-scene video continuation prompt handed to the
// user for image-to-video tools. Scene index 3 gets the macro texture hook,
// matching the planner's mandatory texture shot.
func VideoFlow(shot domain.Shot, index int) string {
	focus := "model face"
	if index == 3 {
		focus = "product texture"
	}
	return strings.Join([]string{
		fmt.Sprintf("[GOOGLE FLOW VIDEO PROMPT - SCENE %d]", index+1),
		"PRIMARY IMAGE PREFERENCE: Use the generated image as a strict visual lock for model, product, wardrobe, lighting, and background.",
		"STRICT CONTINUITY: Do not reinterpret visual elements.",
		"",
		"TIMELINE:",
		fmt.Sprintf("0-2s: Hook - Gentle zoom in on %s.", focus),
		"2-5s: Demo - Subtle handheld motion of model interacting with product.",
		"5-8s: Reaction/Result - Authentic expression, showing efficacy.",
		"8-12s: CTA - Natural gesture towards the bottom of the frame.",
		"",
		"MOTION CONSTRAINTS:",
		"- Slow push-in movement.",
		"- Gentle camera pan.",
		"- Micro handheld smartphone drift.",
		"- Realistic physics.",
		"- NO cinematic movie camera movements.",
	}, "\n")
}

// FallbackPlatform is the generic prompt used when a shot carries no variant
// for the requested video tool.
func FallbackPlatform(tool string, shot domain.Shot, scriptStyle string) string {
	return fmt.Sprintf("Viral video for %s. %s. Vibe: %s. 9:16 Vertical.",
		strings.ToUpper(tool), shot.VisualPrompt, scriptStyle)
}

// PlatformPrompt resolves the prompt variant for a video tool, preferring
// the planner-supplied variant and falling back to the generic template when
// the variant is missing or a placeholder.
func PlatformPrompt(tool string, shot domain.Shot, index int, scriptStyle string) string {
	if tool == "google_flow" {
		return VideoFlow(shot, index)
	}
	p := shot.PlatformPrompts[tool]
	if p == "" || strings.Contains(p, "...") {
		return FallbackPlatform(tool, shot, scriptStyle)
	}
	return p
}
