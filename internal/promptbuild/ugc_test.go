package promptbuild

import (
	"strings"
	"testing"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

func TestRealismDNALockClausesMatchPresence(t *testing.T) {
	cases := []struct {
		name string
		refs RefSet
	}{
		{"none", RefSet{}},
		{"product", RefSet{HasProduct: true}},
		{"model", RefSet{HasModel: true}},
		{"background", RefSet{HasBackground: true}},
		{"product_model", RefSet{HasProduct: true, HasModel: true}},
		{"all", RefSet{HasProduct: true, HasModel: true, HasBackground: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := RealismDNA(tc.refs)
			if out == "" {
				t.Fatal("RealismDNA returned empty output")
			}
			if got := strings.Contains(out, "STRICT IDENTITY LOCK"); got != tc.refs.HasModel {
				t.Fatalf("identity lock present = %v, want %v", got, tc.refs.HasModel)
			}
			if got := strings.Contains(out, "STRICT PRODUCT LOCK"); got != tc.refs.HasProduct {
				t.Fatalf("product lock present = %v, want %v", got, tc.refs.HasProduct)
			}
			if got := strings.Contains(out, "IMMUTABLE BACKGROUND PLATE"); got != tc.refs.HasBackground {
				t.Fatalf("background lock present = %v, want %v", got, tc.refs.HasBackground)
			}
		})
	}
}

func TestUGCPromptResolvesKnownPresets(t *testing.T) {
	settings := domain.UGCSettings{
		BackgroundMode:   domain.BackgroundPreset,
		BackgroundPreset: "cafe",
		LightingPreset:   "studio_softbox",
		CameraAngle:      "low_angle_power",
		MoodLock:         "luxury_premium",
	}
	out := UGC(settings, "Creator profile", "holds the serum up", false)
	if !strings.Contains(out, "Studio Softbox (Terang)") {
		t.Fatalf("lighting preset not resolved: %q", out)
	}
	if !strings.Contains(out, "Sudut Bawah (Kesan Kokoh)") {
		t.Fatalf("camera angle not resolved: %q", out)
	}
	if !strings.Contains(out, "Mood: Mewah & Premium.") {
		t.Fatalf("mood lock not resolved: %q", out)
	}
	if !strings.Contains(out, "BACKGROUND: Suasana Kafe Santai. Realistic creator environment.") {
		t.Fatalf("background preset not resolved: %q", out)
	}
	if !strings.Contains(out, "ACTION: holds the serum up") {
		t.Fatalf("base prompt missing: %q", out)
	}
}

func TestUGCPromptFailsClosedOnUnknownPresets(t *testing.T) {
	settings := domain.UGCSettings{
		BackgroundMode: domain.BackgroundAuto,
		LightingPreset: "does_not_exist",
		CameraAngle:    "also_missing",
		MoodLock:       "nope",
	}
	out := UGC(settings, "profile", "action", false)
	if out == "" {
		t.Fatal("UGC returned empty output")
	}
	if !strings.Contains(out, "Natural side window light") {
		t.Fatalf("lighting default missing: %q", out)
	}
	if !strings.Contains(out, "Handheld smartphone perspective.") {
		t.Fatalf("camera default missing: %q", out)
	}
	if strings.Contains(out, "Mood: ") {
		t.Fatalf("unknown mood should be omitted, got %q", out)
	}
}

func TestUGCPromptUploadedLockDegradesWithoutUpload(t *testing.T) {
	settings := domain.UGCSettings{BackgroundMode: domain.BackgroundUploadedLock}

	locked := UGC(settings, "p", "a", true)
	if !strings.Contains(locked, "BACKGROUND LOCK: STRICTLY preserve") {
		t.Fatalf("expected lock clause with uploaded background: %q", locked)
	}

	degraded := UGC(settings, "p", "a", false)
	if strings.Contains(degraded, "BACKGROUND LOCK") {
		t.Fatalf("lock clause emitted without uploaded background: %q", degraded)
	}
	if !strings.Contains(degraded, "Minimal professional studio environment.") {
		t.Fatalf("expected studio fallback clause: %q", degraded)
	}
}

func TestUGCPromptAppliesCameraStyle(t *testing.T) {
	settings := domain.DefaultUGCSettings()
	out := UGC(settings, "profile", "action", false)
	if !strings.Contains(out, "Shot style: Handheld (Getaran Mikro).") {
		t.Fatalf("camera style not resolved: %q", out)
	}

	settings.CameraStyle = "steadicam_rig"
	out = UGC(settings, "profile", "action", false)
	if strings.Contains(out, "Shot style:") {
		t.Fatalf("unknown camera style should be omitted: %q", out)
	}
}

func TestPlanInstructionRegisterFollowsMode(t *testing.T) {
	ugc := PlanInstruction(RefSet{HasProduct: true}, domain.ModeUGC)
	if !strings.Contains(ugc, "TikTok Creative Director") {
		t.Fatalf("ugc register wrong: %q", ugc)
	}
	if strings.Contains(ugc, "Polished commercial register") {
		t.Fatalf("ads rule leaked into ugc mode: %q", ugc)
	}

	ads := PlanInstruction(RefSet{HasProduct: true}, domain.ModeAds)
	if !strings.Contains(ads, "Advertising Creative Director") {
		t.Fatalf("ads register wrong: %q", ads)
	}
	if !strings.Contains(ads, "Polished commercial register") {
		t.Fatalf("ads planning rule missing: %q", ads)
	}
}

func TestPlanBriefEmbedsTrendContext(t *testing.T) {
	plain := PlanBrief("Serum Glow", "Indonesian", "Hype", "")
	if strings.Contains(plain, "TREND REPORT") {
		t.Fatalf("unexpected trend block: %q", plain)
	}

	briefed := PlanBrief("Serum Glow", "Indonesian", "Hype", "SECTION 1: CLEAN OUTPUT RULES")
	if !strings.Contains(briefed, "TREND REPORT:\nSECTION 1: CLEAN OUTPUT RULES") {
		t.Fatalf("trend context missing: %q", briefed)
	}
	if !strings.HasSuffix(briefed, "Return JSON only.") {
		t.Fatalf("brief must end with the JSON directive: %q", briefed)
	}
}

func TestUGCPromptDeterministic(t *testing.T) {
	settings := domain.DefaultUGCSettings()
	a := UGC(settings, "profile", "action", false)
	b := UGC(settings, "profile", "action", false)
	if a != b {
		t.Fatal("UGC output differs between identical calls")
	}
}

func TestTryOnPromptFramingAndBackground(t *testing.T) {
	settings := domain.DefaultTryOnSettings()

	out := TryOn(settings, "Fashion Model", "macro", false)
	if !strings.Contains(out, "Macro extreme close-up of fabric texture") {
		t.Fatalf("compliance frame instruction missing: %q", out)
	}
	if !strings.Contains(out, "Environment: Studio Minimal.") {
		t.Fatalf("environment clause missing: %q", out)
	}
	if strings.Contains(out, "IMMUTABLE BACKGROUND PLATE") {
		t.Fatalf("background lock emitted without upload: %q", out)
	}

	withBG := TryOn(settings, "Fashion Model", "", true)
	if !strings.Contains(withBG, "ACTION: Use Image C as immutable background.") {
		t.Fatalf("uploaded background clause missing: %q", withBG)
	}
	if !strings.Contains(withBG, "IMMUTABLE BACKGROUND PLATE") {
		t.Fatalf("background lock missing with upload: %q", withBG)
	}
}

func TestPlatformPromptFallsBack(t *testing.T) {
	shot := domain.Shot{VisualPrompt: "macro of bottle", PlatformPrompts: map[string]string{"dreamina": "Prompt loading..."}}

	got := PlatformPrompt("dreamina", shot, 0, "Hype")
	if !strings.Contains(got, "Viral video for DREAMINA") {
		t.Fatalf("expected fallback prompt, got %q", got)
	}

	shot.PlatformPrompts["meta"] = "stable wide shot of the bottle"
	if got := PlatformPrompt("meta", shot, 0, "Hype"); got != "stable wide shot of the bottle" {
		t.Fatalf("expected planner variant, got %q", got)
	}

	flow := PlatformPrompt("google_flow", shot, 3, "Hype")
	if !strings.Contains(flow, "SCENE 4") || !strings.Contains(flow, "product texture") {
		t.Fatalf("google flow prompt wrong: %q", flow)
	}
}
