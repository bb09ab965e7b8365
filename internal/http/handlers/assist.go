package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

type describeRequest struct {
	ProductIndex int `json:"product_index"`
}

// AssistDescribe drafts a topic from one of the attached product images.
func (a *App) AssistDescribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	text, err := a.Orchestrator.DescribeProduct(r.Context(), id, req.ProductIndex)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"description": text})
}

type campaignRequest struct {
	Audience string `json:"audience"`
	Goal     string `json:"goal"`
}

// AssistCampaign sketches a campaign concept around the session topic.
func (a *App) AssistCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	text, err := a.Orchestrator.DraftCampaign(r.Context(), id, req.Audience, req.Goal)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"draft": text})
}

type presetsResponse struct {
	Languages        []domain.Option          `json:"languages"`
	ScriptStyles     []domain.Option          `json:"script_styles"`
	TrendStyles      []domain.Option          `json:"trend_target_styles"`
	Lighting         []domain.Option          `json:"ugc_lighting"`
	CameraAngles     []domain.Option          `json:"ugc_camera_angles"`
	CameraStyles     []domain.Option          `json:"ugc_camera_styles"`
	MoodLocks        []domain.Option          `json:"ugc_mood_locks"`
	Backgrounds      []domain.Option          `json:"ugc_backgrounds"`
	Voices           []domain.Option          `json:"voices"`
	TryOnEnvs        []string                 `json:"tryon_environments"`
	TryOnLighting    []string                 `json:"tryon_lighting"`
	ComplianceFrames []domain.ComplianceFrame `json:"compliance_frames"`
}

// Presets exposes the selectable option catalogs so clients never hardcode
// preset ids.
func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, presetsResponse{
		Languages:        domain.Languages,
		ScriptStyles:     domain.ScriptStyles,
		TrendStyles:      domain.TrendTargetStyles,
		Lighting:         domain.UGCLightingPresets,
		CameraAngles:     domain.UGCCameraAngles,
		CameraStyles:     domain.UGCCameraStyles,
		MoodLocks:        domain.UGCMoodLocks,
		Backgrounds:      domain.UGCBackgroundPresets,
		Voices:           domain.VoiceOptions,
		TryOnEnvs:        domain.TryOnEnvironments,
		TryOnLighting:    domain.TryOnLighting,
		ComplianceFrames: domain.ComplianceFrames,
	})
}

// Health is the liveness probe.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
