package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/export"
)

// Export bundles the session output into a zip. When an export directory
// is configured, a copy is kept on disk keyed by session id.
func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	in := sess.InputsCopy()

	archive, err := export.Archive(sess.Snapshot(), in.VideoTool, in.ScriptStyle)
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	if a.Exports != nil {
		if _, err := a.Exports.Save(r.Context(), sess.ID, archive); err != nil {
			a.Logger.Warn().Err(err).Str("session", sess.ID).Msg("failed to persist export copy")
		}
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="content-bundle-`+sess.ID+`.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
