package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/studio"
)

func (a *App) SessionCreate(w http.ResponseWriter, r *http.Request) {
	sess := a.Store.Create()
	a.json(w, http.StatusCreated, sess.Snapshot())
}

func (a *App) SessionGet(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, sess.Snapshot())
}

func (a *App) SessionDelete(w http.ResponseWriter, r *http.Request) {
	a.Store.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

type inputsRequest struct {
	Topic       *string `json:"topic"`
	Language    *string `json:"language"`
	ScriptStyle *string `json:"script_style"`
	Mode        *string `json:"mode"`
	Voice       *string `json:"voice"`
	VideoTool   *string `json:"video_tool"`
	HighQuality *bool   `json:"high_quality"`

	UGC   *domain.UGCSettings   `json:"ugc_settings"`
	TryOn *domain.TryOnSettings `json:"tryon_settings"`
}

// SessionSetInputs merges the payload onto the current configuration.
// Attached assets are never touched here; only scalar settings move.
func (a *App) SessionSetInputs(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	var req inputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	in := sess.InputsCopy()
	applyInputs(&in, req)
	if err := sess.SetInputs(in); err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, sess.Snapshot())
}

func applyInputs(in *studio.Inputs, req inputsRequest) {
	if req.Topic != nil {
		in.Topic = *req.Topic
	}
	if req.Language != nil {
		in.Language = *req.Language
	}
	if req.ScriptStyle != nil {
		in.ScriptStyle = *req.ScriptStyle
	}
	if req.Mode != nil {
		in.Mode = domain.ProductionMode(*req.Mode)
	}
	if req.Voice != nil {
		in.Voice = *req.Voice
	}
	if req.VideoTool != nil {
		in.VideoTool = *req.VideoTool
	}
	if req.HighQuality != nil {
		in.HighQuality = *req.HighQuality
	}
	if req.UGC != nil {
		in.UGC = *req.UGC
	}
	if req.TryOn != nil {
		in.TryOn = *req.TryOn
	}
}
