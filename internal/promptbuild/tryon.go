package promptbuild

import (
	"fmt"
	"strings"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// TryOn assembles the render prompt for one fashion try-on shot. A try-on
// render always carries a product and a model reference; the background lock
// clause is included only when an uploaded background plate accompanies the
// call.
func TryOn(settings domain.TryOnSettings, consistencyProfile, frameID string, hasUploadedBG bool) string {
	framingPrompt := ""
	if frame, ok := domain.FindComplianceFrame(frameID); ok {
		framingPrompt = fmt.Sprintf("Framing: %s.", frame.Instruction)
	}

	bgInstruction := "Environment: " + settings.Environment + "."
	if hasUploadedBG {
		bgInstruction = "ACTION: Use Image C as immutable background."
	}

	dna := RealismDNA(RefSet{HasProduct: true, HasModel: true, HasBackground: hasUploadedBG})

	sb := &strings.Builder{}
	sb.WriteString(dna)
	sb.WriteString("MASTERPIECE FASHION RENDER. ")
	if framingPrompt != "" {
		sb.WriteString(framingPrompt + " ")
	}
	sb.WriteString(bgInstruction + " ")
	sb.WriteString(settings.Lighting + " lighting.\n")
	sb.WriteString("Model identity: " + consistencyProfile + ". Model is wearing the exact garment from product reference.")
	if extra := strings.TrimSpace(settings.Instructions); extra != "" {
		sb.WriteString(" " + extra + ".")
	}
	sb.WriteString("\n--negative_prompt digital painting, anime, cinematic render, perfect skin, 3d, watermark, text.")
	return sb.String()
}
