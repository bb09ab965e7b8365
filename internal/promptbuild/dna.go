// Package promptbuild composes the deterministic prompt text sent to the
// render model. Every builder is a pure function over settings and asset
// presence flags; unknown preset ids degrade to a generic clause instead of
// failing.
package promptbuild

import "strings"

// RefSet flags which reference images accompany a render call. The realism
// block emits a lock clause only for assets that are present.
type RefSet struct {
	HasProduct    bool
	HasModel      bool
	HasBackground bool
}

const (
	modelLockClause      = "  * MODEL (Image A): STRICT IDENTITY LOCK. Face, hair, makeup, and proportions must match 1:1."
	productLockClause    = "  * PRODUCT (Image B): STRICT PRODUCT LOCK. Logo, color, shape, and texture must match 1:1. No redesign."
	backgroundLockClause = "  * BACKGROUND (Image C): IMMUTABLE BACKGROUND PLATE. DO NOT change geometry, walls, floor, furniture, or perspective."
)

// RealismDNA returns the mandatory realism policy block shared by every
// production mode, with reference-lock clauses for the assets present in
// refs. The result is never empty.
func RealismDNA(refs RefSet) string {
	sb := &strings.Builder{}
	sb.WriteString("[GLOBAL VIRAL REALISM DNA - MANDATORY ENFORCEMENT]\n")
	sb.WriteString("- VISUAL: Smartphone realism (35-50mm lens), handheld micro-drift (3-5%). Captured phone look, NOT AI render.\n")
	sb.WriteString("- TEXTURE: Visible skin pores, real fabric wrinkles, natural reflections, neutral contrast. No plastic skin or AI-glow.\n")
	sb.WriteString("- LIGHTING: Soft side-window key light. Enforce clean grounded contact shadows. Match lighting to reference plates.\n")
	sb.WriteString("- COMPOSITION: Vertical 9:16, tight-crop, scroll-stopper framing.\n")
	sb.WriteString("- REFERENCE LOCK:\n")
	if refs.HasModel {
		sb.WriteString(modelLockClause + "\n")
	}
	if refs.HasProduct {
		sb.WriteString(productLockClause + "\n")
	}
	if refs.HasBackground {
		sb.WriteString(backgroundLockClause + "\n")
	}
	return sb.String()
}
