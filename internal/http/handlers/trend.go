package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/report"
)

type analyzeRequest struct {
	TargetStyle string `json:"target_style"`
}

// TrendAnalyze runs the viral rebuild over the session video and stores the
// raw report.
func (a *App) TrendAnalyze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := a.Store.Get(id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	if err := a.Orchestrator.AnalyzeTrend(r.Context(), id, req.TargetStyle); err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, domain.RawTrendReport(sess.TrendReport()))
}

// TrendReport returns the raw view of the report, exactly as the model
// wrote it.
func (a *App) TrendReport(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, domain.RawTrendReport(sess.TrendReport()))
}

// TrendPack returns the parsed view, structured on demand. Reparsing is
// free, so the session only ever holds the raw text.
func (a *App) TrendPack(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	pack, err := report.Parse(sess.TrendReport())
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, domain.TrendReport{Parsed: pack})
}
