package domain

// Shot is one frame of a storyboard. Shots are created in bulk by the
// orchestrator, mutated in place as renders arrive, and regenerated rather
// than deleted.
type Shot struct {
	Number          int               `json:"shot_number"`
	VisualPrompt    string            `json:"visual_prompt"`
	Narration       string            `json:"voiceover_script"`
	Image           []byte            `json:"image,omitempty"`
	Audio           []byte            `json:"audio,omitempty"`
	InFlight        bool              `json:"is_loading"`
	Error           string            `json:"error,omitempty"`
	PlatformPrompts map[string]string `json:"platform_prompts,omitempty"`
	ProductRefIndex int               `json:"product_ref_index"`
	FrameType       string            `json:"frame_type,omitempty"`
}

// Clone returns a deep copy so callers can publish whole-slice snapshots
// without sharing mutable state.
func (s Shot) Clone() Shot {
	out := s
	if s.Image != nil {
		out.Image = append([]byte(nil), s.Image...)
	}
	if s.Audio != nil {
		out.Audio = append([]byte(nil), s.Audio...)
	}
	if s.PlatformPrompts != nil {
		out.PlatformPrompts = make(map[string]string, len(s.PlatformPrompts))
		for k, v := range s.PlatformPrompts {
			out.PlatformPrompts[k] = v
		}
	}
	return out
}

// CloneShots deep-copies a storyboard slice.
func CloneShots(shots []Shot) []Shot {
	if shots == nil {
		return nil
	}
	out := make([]Shot, len(shots))
	for i, s := range shots {
		out[i] = s.Clone()
	}
	return out
}

// CreativePlan is the structured result of the upfront planning call.
// ShotPrompts and ShotScripts are parallel; a missing script entry is
// substituted with an empty string by the orchestrator, never an error.
type CreativePlan struct {
	Script             string              `json:"tiktokScript"`
	ShotPrompts        []string            `json:"shotPrompts"`
	ShotScripts        []string            `json:"shotScripts"`
	ConsistencyProfile string              `json:"consistency_profile"`
	Metadata           PlanMetadata        `json:"tiktokMetadata"`
	PlatformPrompts    []map[string]string `json:"platformPrompts,omitempty"`
}

// PlanMetadata carries descriptive publishing hints from the planner.
type PlanMetadata struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ScriptFor returns the narration for shot i, tolerating short script lists.
func (p *CreativePlan) ScriptFor(i int) string {
	if p == nil || i < 0 || i >= len(p.ShotScripts) {
		return ""
	}
	return p.ShotScripts[i]
}
