package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// Produce runs the full pipeline synchronously and replies with the final
// snapshot. Per-shot failures live inside the snapshot, not the status code.
func (a *App) Produce(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := a.Store.Get(id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}

	mode := sess.InputsCopy().Mode
	if mode == domain.ModeTryOn {
		err = a.Orchestrator.ProduceTryOn(r.Context(), id)
	} else {
		err = a.Orchestrator.Produce(r.Context(), id)
	}
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, sess.Snapshot())
}

// ShotRegenerate re-renders one shot and replies with the snapshot. A
// render failure still answers 200; the shot carries its own error.
func (a *App) ShotRegenerate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	index, err := shotIndex(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid shot index")
		return
	}
	sess, err := a.Store.Get(id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}

	if err := a.Orchestrator.RegenerateShot(r.Context(), id, index); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.domainError(w, r, err)
			return
		}
		// Render failures are already recorded on the shot; reply with the
		// state so the client can offer a per-shot retry.
	}
	a.json(w, http.StatusOK, sess.Snapshot())
}

type narrationRequest struct {
	Script string `json:"script"`
}

// NarrationSync updates a shot's script and voices it.
func (a *App) NarrationSync(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	index, err := shotIndex(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid shot index")
		return
	}
	var req narrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	sess, err := a.Store.Get(id)
	if err != nil {
		a.domainError(w, r, err)
		return
	}

	if err := a.Orchestrator.SyncNarration(r.Context(), id, index, req.Script); err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, sess.Snapshot())
}

func shotIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}
