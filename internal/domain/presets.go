package domain

// Option is a selectable preset with a stable id and a display name.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ComplianceFrame pairs a preset with the framing instruction injected into
// try-on prompts.
type ComplianceFrame struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Instruction string `json:"instruction"`
}

var Languages = []Option{
	{ID: "Indonesian", Name: "Bahasa Indonesia (ID)"},
	{ID: "Malay", Name: "Bahasa Melayu (MY)"},
	{ID: "English", Name: "English (US)"},
}

var ScriptStyles = []Option{
	{ID: "Direct & Clear", Name: "Langsung & Jelas"},
	{ID: "Poetic", Name: "Puitis & Menyentuh"},
	{ID: "Casual", Name: "Santai & Akrab"},
	{ID: "Professional", Name: "Resmi & Terpercaya"},
	{ID: "Hype", Name: "Semangat (Racun Belanja)"},
}

var TrendTargetStyles = []Option{
	{ID: "shopee", Name: "Shopee Product Listing"},
	{ID: "tiktok_affiliate", Name: "TikTok Affiliate Style"},
	{ID: "insta_editorial", Name: "Instagram Editorial"},
	{ID: "magazine_luxury", Name: "Magazine Luxury"},
}

var UGCLightingPresets = []Option{
	{ID: "natural_window_soft", Name: "Cahaya Jendela Natural (Lembut)"},
	{ID: "studio_softbox", Name: "Studio Softbox (Terang)"},
	{ID: "cinematic_contrast", Name: "Kontras Sinematik (Mewah)"},
	{ID: "product_high_key", Name: "Produk High Key (Tajam)"},
	{ID: "warm_sunset", Name: "Nuansa Matahari Terbenam (Hangat)"},
}

var UGCCameraAngles = []Option{
	{ID: "eye_level_medium", Name: "Sejajar Mata (Natural)"},
	{ID: "top_down_product", Name: "Dari Atas Produk (Flatlay)"},
	{ID: "low_angle_power", Name: "Sudut Bawah (Kesan Kokoh)"},
	{ID: "side_3_4_portrait", Name: "Sudut Samping 3/4 (Estetik)"},
	{ID: "macro_texture", Name: "Makro Tekstur (Detail)"},
}

var UGCCameraStyles = []Option{
	{ID: "handheld_micro", Name: "Handheld (Getaran Mikro)"},
	{ID: "tripod_locked", Name: "Tripod Statis (Stabil)"},
	{ID: "selfie_pov", Name: "Selfie POV (Vlog)"},
}

var UGCMoodLocks = []Option{
	{ID: "fresh_clean", Name: "Cerah & Bersih"},
	{ID: "luxury_premium", Name: "Mewah & Premium"},
	{ID: "playful", Name: "Ceria & Menyenangkan"},
	{ID: "serious_review", Name: "Review Serius (Detail)"},
	{ID: "cozy_home", Name: "Suasana Rumah Nyaman"},
}

var UGCBackgroundPresets = []Option{
	{ID: "room", Name: "Ruangan Dalam Rumah (Sederhana)"},
	{ID: "vanity", Name: "Meja Rias (Estetik)"},
	{ID: "studio", Name: "Studio Bersih Minimalis"},
	{ID: "cafe", Name: "Suasana Kafe Santai"},
	{ID: "outdoor", Name: "Luar Ruangan (Golden Hour)"},
}

var VoiceOptions = []Option{
	{ID: "Puck", Name: "Pria - Ramah"},
	{ID: "Fenrir", Name: "Pria - Berat & Berwibawa"},
	{ID: "Charon", Name: "Pria - Narator Kalem"},
	{ID: "Kore", Name: "Wanita - Ceria & Semangat"},
	{ID: "Aoede", Name: "Wanita - Elegan & Mewah"},
	{ID: "Leda", Name: "Wanita - Gaya Bercerita"},
}

var TryOnEnvironments = []string{
	"Studio Minimal", "Studio High-End", "Kamar Estetik", "Jalanan Kota",
	"Cafe Modern", "Fashion Store", "Outdoor Park", "Runway Lights",
}

var TryOnLighting = []string{
	"Soft Natural", "Studio Softbox", "Dramatic Cinematic", "High-Key Clean",
	"Golden Hour", "Neon Night",
}

var ComplianceFrames = []ComplianceFrame{
	{ID: "hook", Name: "Tight Beauty Portrait (Hook)", Instruction: "Tight beauty portrait framing face and upper torso. Focus on natural skin and features."},
	{ID: "authority", Name: "Full Body Front Authority", Instruction: "Full body wide shot, centered, model standing straight. Handheld perspective."},
	{ID: "power", Name: "Low Angle Power", Instruction: "Low angle shot looking up at the model. Heroic stance, handheld drift."},
	{ID: "profile", Name: "Side Compression Profile", Instruction: "Side profile shot showing garment fit and seams. Soft side lighting."},
	{ID: "editorial", Name: "Intimate Editorial Offset", Instruction: "Editorial pose, slightly offset, leaning posture. Real environment interaction."},
	{ID: "macro", Name: "Macro Fabric Detail", Instruction: "Macro extreme close-up of fabric texture, seams, and material quality. Real tactile feel."},
}

// FindOption looks an id up in a preset group. The second return is false
// when the id is unknown so callers can fail closed.
func FindOption(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// FindComplianceFrame resolves a frame tag.
func FindComplianceFrame(id string) (ComplianceFrame, bool) {
	for _, f := range ComplianceFrames {
		if f.ID == id {
			return f, true
		}
	}
	return ComplianceFrame{}, false
}
