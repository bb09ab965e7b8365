package domain

// TrendReport is the output of a media-analysis run. The orchestrator stores
// the raw text and defers structuring; the report parser is the single
// conversion point from raw to parsed. Exactly one of the two views is set.
type TrendReport struct {
	Raw    string     `json:"raw,omitempty"`
	Parsed *TrendPack `json:"parsed,omitempty"`
}

// RawTrendReport wraps unprocessed analysis text.
func RawTrendReport(text string) *TrendReport {
	return &TrendReport{Raw: text}
}

// TrendPack is the best-effort structured view of a trend report.
type TrendPack struct {
	Rules         string       `json:"clean_rules"`
	ReferenceLock string       `json:"reference_lock"`
	Storyboard    string       `json:"storyboard"`
	VideoPrompt   string       `json:"video_prompt"`
	VoiceOver     string       `json:"voice_over"`
	ScenePrompts  []string     `json:"scene_prompts"`
	ExtraSections []TitledText `json:"extra_sections,omitempty"`
	Successful    bool         `json:"successful"`
}

// TitledText is a salvaged legacy-format section that did not map to a named
// field.
type TitledText struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
