package report

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

const canonicalReport = `TITLE:
TREND ENGINE VIRAL PACK

SECTION 1:
CLEAN OUTPUT RULES:
- NO ON-SCREEN TEXT. CLEAN PLATE FOR CAPCUT.
- Keep realistic physics and creator smartphone look.

SECTION 2:
REFERENCE LOCK:
- Use Image A as strict identity anchor.
- Lock background plate.

SECTION 3:
STORYBOARD (SCENE 1-6):
SCENE 1:
VISUAL PROMPT: Close-up of hands unboxing the serum on a wooden desk
ACTION: Hands open the box
CAMERA: Slow push in
SCENE 2:
VISUAL PROMPT: Model applies serum near a bright window
ACTION: Gentle application
CAMERA: Static tripod

SECTION 4:
VIDEO PROMPT (PROVIDER-AGNOSTIC):
One continuous paragraph covering the entire sequence with handheld drift.

SECTION 5:
VOICE OVER (INDONESIAN):
SCENE 1: Ini dia serum viral itu.
SCENE 2: Teksturnya ringan banget.`

func TestParseCanonicalReport(t *testing.T) {
	pack, err := Parse(canonicalReport)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !pack.Successful {
		t.Fatal("Successful = false, want true")
	}
	if pack.Rules == "" || pack.ReferenceLock == "" || pack.Storyboard == "" || pack.VideoPrompt == "" || pack.VoiceOver == "" {
		t.Fatalf("expected all named fields populated, got %+v", pack)
	}
	if len(pack.ScenePrompts) != 2 {
		t.Fatalf("ScenePrompts = %d, want 2", len(pack.ScenePrompts))
	}
	if !strings.Contains(pack.ScenePrompts[0], "unboxing the serum") {
		t.Fatalf("scene 1 prompt wrong: %q", pack.ScenePrompts[0])
	}
	if strings.Contains(pack.ScenePrompts[0], "Hands open the box") {
		t.Fatalf("scene prompt leaked ACTION line: %q", pack.ScenePrompts[0])
	}
	if !strings.Contains(pack.VoiceOver, "serum viral") {
		t.Fatalf("voice over wrong: %q", pack.VoiceOver)
	}
}

func TestParseNoHeadersSucceedsWithLowSignal(t *testing.T) {
	pack, err := Parse("the model just rambled about lighting for a while")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if pack.Successful {
		t.Fatal("Successful = true for header-less input")
	}
	if pack.Rules != "" || pack.Storyboard != "" || pack.VideoPrompt != "" {
		t.Fatalf("expected empty fields, got %+v", pack)
	}
}

func TestParseEmptyInputIsDistinctError(t *testing.T) {
	for _, raw := range []string{"", "   \n\t"} {
		if _, err := Parse(raw); !errors.Is(err, domain.ErrEmptyReport) {
			t.Fatalf("Parse(%q) error = %v, want ErrEmptyReport", raw, err)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(canonicalReport)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := Parse(canonicalReport)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Parse is not idempotent")
	}
}

func TestParseMissingVideoPromptLowersSignal(t *testing.T) {
	raw := `SECTION 3:
STORYBOARD (SCENE 1-6):
SCENE 1:
VISUAL PROMPT: A clean flatlay of the product
ACTION: none`
	pack, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(pack.ScenePrompts) != 1 {
		t.Fatalf("ScenePrompts = %d, want 1", len(pack.ScenePrompts))
	}
	if pack.Successful {
		t.Fatal("Successful = true without a video prompt")
	}
}

func TestParseSalvagesLegacySections(t *testing.T) {
	raw := `1) HOOK ANALYSIS
The first two seconds rely on a hard jump cut onto the product.

2) AUDIO NOTES
Music only, no voice over detected.`
	pack, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(pack.ExtraSections) != 2 {
		t.Fatalf("ExtraSections = %d, want 2", len(pack.ExtraSections))
	}
	if pack.ExtraSections[0].Title != "HOOK ANALYSIS" {
		t.Fatalf("first title = %q", pack.ExtraSections[0].Title)
	}
	if pack.Successful {
		t.Fatal("legacy salvage must not raise the success signal")
	}
}
