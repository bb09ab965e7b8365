package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/gateway"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/studio"
)

// maxProducts caps how many product references a session can carry. More
// than this stops helping the render model and bloats every call.
const maxProducts = 6

type mediaRequest struct {
	Data        string `json:"data"` // base64
	MimeType    string `json:"mime_type"`
	DisplayName string `json:"display_name"`
}

// ProductAdd attaches another product reference image to the session.
func (a *App) ProductAdd(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	var req mediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	asset, err := domain.NewLocalAsset(req.Data, req.MimeType)
	if err != nil {
		a.domainError(w, r, err)
		return
	}

	in := sess.InputsCopy()
	if len(in.Products) >= maxProducts {
		a.error(w, http.StatusUnprocessableEntity, "validation_error", "product limit reached")
		return
	}
	in.Products = append(in.Products, asset)
	if err := sess.SetInputs(in); err != nil {
		a.domainError(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]int{"products": len(in.Products)})
}

// ProductsClear removes every product reference.
func (a *App) ProductsClear(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	in := sess.InputsCopy()
	in.Products = nil
	if err := sess.SetInputs(in); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ModelSet attaches the identity reference (Image A).
func (a *App) ModelSet(w http.ResponseWriter, r *http.Request) {
	a.setSingleAsset(w, r, func(in *studio.Inputs, asset *domain.Asset) {
		in.Model = asset
	})
}

// BackgroundSet attaches the background plate (Image C).
func (a *App) BackgroundSet(w http.ResponseWriter, r *http.Request) {
	a.setSingleAsset(w, r, func(in *studio.Inputs, asset *domain.Asset) {
		in.Background = asset
	})
}

func (a *App) setSingleAsset(w http.ResponseWriter, r *http.Request, assign func(*studio.Inputs, *domain.Asset)) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	var req mediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	asset, err := domain.NewLocalAsset(req.Data, req.MimeType)
	if err != nil {
		a.domainError(w, r, err)
		return
	}

	in := sess.InputsCopy()
	assign(&in, asset)
	if err := sess.SetInputs(in); err != nil {
		a.domainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type videoResponse struct {
	FileURI  string `json:"file_uri"`
	MimeType string `json:"mime_type"`
	State    string `json:"state"`
}

// VideoUpload pushes the trend video through the remote files API. The
// handler blocks through upload and processing; clients should treat this
// as a long call.
func (a *App) VideoUpload(w http.ResponseWriter, r *http.Request) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	var req mediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	asset, err := a.Uploader.Upload(r.Context(), gateway.UploadRequest{
		Data:        req.Data,
		MimeType:    req.MimeType,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		a.domainError(w, r, err)
		return
	}
	sess.SetVideo(asset)
	a.json(w, http.StatusCreated, videoResponse{
		FileURI:  asset.FileURI,
		MimeType: asset.MimeType,
		State:    string(asset.State),
	})
}
