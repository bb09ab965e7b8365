package promptbuild

import (
	"fmt"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// PlanInstruction is the system role for the upfront storyboard planning
// call. The macro shot rule keeps one guaranteed texture close-up in every
// six-shot sequence. Ads mode swaps the creator-review register for a
// polished commercial one.
func PlanInstruction(refs RefSet, mode domain.ProductionMode) string {
	lines := []string{
		"You are a Senior TikTok Creative Director for Indonesian UMKM brands.",
		"",
		RealismDNA(refs),
		"PLANNING RULES:",
		"- Plan exactly 6 shots forming one continuous selling narrative.",
		"- Shot 4 MUST be a macro texture close-up of the product.",
		"- Keep the same model, outfit, and location across every shot.",
		"- shotScripts entries are short spoken lines matching each shot.",
		"- consistency_profile describes the creator persona in one paragraph for reuse in later renders.",
	}
	if mode == domain.ModeAds {
		lines[0] = "You are a Senior Advertising Creative Director for Indonesian UMKM brands."
		lines = append(lines,
			"- Polished commercial register: studio-grade product hero framing, confident claims, clear call to action.")
	}
	return strings.Join(lines, "\n")
}

// PlanBrief is the user-facing half of the planning call. A non-empty trend
// context pins the storyboard to a previously analyzed viral anatomy.
func PlanBrief(topic, language, scriptStyle, trendContext string) string {
	brief := fmt.Sprintf("Topic: %s.\nSpoken language: %s.\nScript style: %s.",
		topic, language, scriptStyle)
	if strings.TrimSpace(trendContext) != "" {
		brief += "\n\nFollow the shot structure and pacing of this analyzed trend:\nTREND REPORT:\n" + trendContext
	}
	return brief + "\nReturn JSON only."
}

// TrendInstruction is the system role for viral video analysis. The output
// contract mirrors what the report parser expects: numbered SECTION blocks
// with all-caps titles.
func TrendInstruction(refs RefSet) string {
	sb := &strings.Builder{}
	sb.WriteString("You are a Viral Trend Reverse-Engineer. Rebuild the anatomy of the supplied video as a production pack.\n\n")
	sb.WriteString(RealismDNA(refs))
	sb.WriteString("\nOUTPUT FORMAT (mandatory, plain text, no markdown):\n")
	sb.WriteString("SECTION 1: CLEAN OUTPUT RULES\n")
	sb.WriteString("SECTION 2: REFERENCE LOCK\n")
	sb.WriteString("SECTION 3: STORYBOARD (SCENE 1-6) - each scene with VISUAL PROMPT:, ACTION:, CAMERA: lines\n")
	sb.WriteString("SECTION 4: VIDEO PROMPT - one continuous paragraph for image-to-video tools\n")
	sb.WriteString("SECTION 5: VOICE OVER - per-scene spoken lines\n")
	return sb.String()
}

// TrendBrief asks for the rebuild targeted at a content style.
func TrendBrief(targetStyle string) string {
	return fmt.Sprintf("Analyze this video and rebuild its viral anatomy adapted for the %q style. Swap the subject for my references where provided.", targetStyle)
}

// DescribeProductBrief asks the model for a short marketing-ready product
// description from a single reference image.
func DescribeProductBrief() string {
	return "Describe this product for a marketing brief in 2-3 sentences: what it is, its visible materials and colors, and the impression it gives. Plain text only."
}

// CampaignBrief asks for a lightweight campaign draft around a topic.
func CampaignBrief(product, audience, goal string) string {
	return fmt.Sprintf("Draft a short TikTok campaign concept.\nProduct: %s.\nAudience: %s.\nGoal: %s.\nReturn 3 hook ideas and a posting cadence, plain text.",
		product, audience, goal)
}
