package promptbuild

import (
	"fmt"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

const ugcNegatives = "no random bottle, no generic serum, no product substitution, no extra hands, no extra fingers, no floating product, no shopping cart icon, no UI overlay, no watermark, no missing legs, no deformed anatomy."

const ugcReferenceLock = `[REFERENCE LOCK - MANDATORY]
- Use uploaded images as immutable references; match identity, product, and wardrobe exactly.
- CATEGORY LOCK: Do not reinterpret category. Fashion remains fashion, skincare remains skincare. No substitution.
- WEARABLE LOGIC: If Image B is clothing, model MUST wear it. Remove previous outfit. Match fabric, print, and cut 1:1.
- OBJECT LOGIC: If Image B is an object, model holds/demonstrates it. Match label and shape exactly.
- VISUAL FIDELITY: Preserve product color, shape, texture, and text. No redesign. No shopping cart icons.`

// UGC assembles the full render prompt for the UGC review pipeline. Preset
// ids that do not match a known option resolve to their generic default
// clause, and background mode "uploaded_lock" without an uploaded background
// degrades to the studio clause.
func UGC(settings domain.UGCSettings, consistencyProfile, basePrompt string, hasUploadedBG bool) string {
	lightingRule := "Natural side window light, late afternoon, soft shadows."
	if opt, ok := domain.FindOption(domain.UGCLightingPresets, settings.LightingPreset); ok {
		lightingRule = fmt.Sprintf("Lighting: %s preset. Professional but realistic.", opt.Name)
	}

	cameraRule := "Handheld smartphone perspective."
	if opt, ok := domain.FindOption(domain.UGCCameraAngles, settings.CameraAngle); ok {
		cameraRule = fmt.Sprintf("Perspective: %s camera angle.", opt.Name)
	}
	if opt, ok := domain.FindOption(domain.UGCCameraStyles, settings.CameraStyle); ok {
		cameraRule += fmt.Sprintf(" Shot style: %s.", opt.Name)
	}

	moodRule := ""
	if opt, ok := domain.FindOption(domain.UGCMoodLocks, settings.MoodLock); ok {
		moodRule = fmt.Sprintf("Mood: %s.", opt.Name)
	}

	bgRule := backgroundRule(settings, hasUploadedBG)

	lines := []string{
		"VERTICAL 9:16, captured photo realism. Smartphone camera.",
		ugcReferenceLock,
		bgRule,
		lightingRule,
		cameraRule,
	}
	if moodRule != "" {
		lines = append(lines, moodRule)
	}
	lines = append(lines,
		"Identity Anchor: "+consistencyProfile,
		"ACTION: "+basePrompt,
		"--negative_prompt "+ugcNegatives+", cinematic, 3d render, anime, cartoon, text.",
	)
	return strings.Join(lines, "\n")
}

func backgroundRule(settings domain.UGCSettings, hasUploadedBG bool) string {
	switch settings.BackgroundMode {
	case domain.BackgroundUploadedLock:
		if hasUploadedBG {
			return "BACKGROUND LOCK: STRICTLY preserve the provided background image (Image C). Do not regenerate walls, floor, or geometry."
		}
	case domain.BackgroundAIGenerate:
		if strings.TrimSpace(settings.BackgroundPrompt) != "" {
			return "BACKGROUND: " + settings.BackgroundPrompt + "."
		}
	case domain.BackgroundPreset:
		name := "Room"
		if opt, ok := domain.FindOption(domain.UGCBackgroundPresets, settings.BackgroundPreset); ok {
			name = opt.Name
		}
		return fmt.Sprintf("BACKGROUND: %s. Realistic creator environment.", name)
	}
	return "BACKGROUND: Minimal professional studio environment."
}
