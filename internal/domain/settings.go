package domain

// ProductionMode selects which pipeline shape a production run takes.
type ProductionMode string

const (
	ModeUGC         ProductionMode = "ugc"
	ModeAds         ProductionMode = "ads"
	ModeTryOn       ProductionMode = "tryon"
	ModeTrendEngine ProductionMode = "trend_engine"
)

// BackgroundMode picks one of four mutually exclusive background strategies
// for UGC renders.
type BackgroundMode string

const (
	BackgroundUploadedLock BackgroundMode = "uploaded_lock"
	BackgroundPreset       BackgroundMode = "preset_select"
	BackgroundAuto         BackgroundMode = "auto"
	BackgroundAIGenerate   BackgroundMode = "ai_generate"
)

// UGCSettings are the per-mode option groups for the UGC review pipeline.
// Values reference preset ids; the prompt builder falls back to a default
// description for ids it does not recognize.
type UGCSettings struct {
	BackgroundMode   BackgroundMode `json:"background_mode"`
	BackgroundPreset string         `json:"background_preset"`
	BackgroundPrompt string         `json:"background_prompt"`
	LightingPreset   string         `json:"lighting_preset"`
	CameraStyle      string         `json:"camera_style"`
	CameraAngle      string         `json:"camera_angle"`
	MoodLock         string         `json:"mood_lock"`
}

// DefaultUGCSettings mirrors the initial selection the client starts with.
func DefaultUGCSettings() UGCSettings {
	return UGCSettings{
		BackgroundMode:   BackgroundPreset,
		BackgroundPreset: "room",
		LightingPreset:   "natural_window_soft",
		CameraStyle:      "handheld_micro",
		CameraAngle:      "eye_level_medium",
		MoodLock:         "fresh_clean",
	}
}

// TryOnSettings configure the fixed-batch fashion pipeline.
type TryOnSettings struct {
	Environment    string `json:"environment"`
	Lighting       string `json:"lighting"`
	Quantity       int    `json:"quantity"`
	Instructions   string `json:"instructions"`
	UploadedBG     bool   `json:"uploaded_background"`
	ComplianceMode bool   `json:"compliance_mode"`
}

// DefaultTryOnSettings mirrors the client defaults.
func DefaultTryOnSettings() TryOnSettings {
	return TryOnSettings{
		Environment: "Studio Minimal",
		Lighting:    "Soft Natural",
		Quantity:    5,
	}
}
