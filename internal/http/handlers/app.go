// Package handlers adapts the studio pipeline to HTTP. Handlers stay thin:
// decode, delegate, map domain errors onto the status taxonomy.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/export"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/gateway"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/middleware"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/studio"
)

// Uploader is the slice of the gateway the media endpoints need.
type Uploader interface {
	Upload(ctx context.Context, req gateway.UploadRequest) (*domain.Asset, error)
}

type App struct {
	Store        *studio.Store
	Orchestrator *studio.Orchestrator
	Uploader     Uploader
	Exports      *export.FileStore
	Logger       zerolog.Logger
}

func NewApp(store *studio.Store, orch *studio.Orchestrator, up Uploader, logger zerolog.Logger) *App {
	return &App{Store: store, Orchestrator: orch, Uploader: up, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	var body errorBody
	body.Error.Code = errCode
	body.Error.Message = message
	a.json(w, code, body)
}

// domainError maps the error taxonomy onto HTTP statuses with a message in
// the request locale.
func (a *App) domainError(w http.ResponseWriter, r *http.Request, err error) {
	locale := middleware.LocaleFromContext(r.Context())
	status, code := classifyDomainError(err)
	if status >= http.StatusInternalServerError {
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	a.error(w, status, code, localizedMessage(locale, code))
}

func classifyDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAuthentication):
		return http.StatusUnauthorized, "auth_error"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "quota_exceeded"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation_error"
	case errors.Is(err, domain.ErrAnalysisTimeout):
		return http.StatusGatewayTimeout, "analysis_timeout"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrBusy):
		return http.StatusConflict, "busy"
	case errors.Is(err, domain.ErrEmptyReport):
		return http.StatusNotFound, "no_report"
	case errors.Is(err, context.Canceled):
		return 499, "client_closed_request"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

var messages = map[string]map[string]string{
	"auth_error": {
		"id": "Kunci API tidak valid atau kedaluwarsa. Silakan pilih ulang kunci API Anda.",
		"en": "The API key is invalid or expired. Please reselect your API key.",
	},
	"quota_exceeded": {
		"id": "Kuota layanan AI habis. Coba lagi dalam beberapa menit.",
		"en": "The AI service quota is exhausted. Try again in a few minutes.",
	},
	"validation_error": {
		"id": "Input belum lengkap atau tidak valid.",
		"en": "The input is incomplete or invalid.",
	},
	"analysis_timeout": {
		"id": "Analisis video melebihi batas waktu. Coba video yang lebih pendek.",
		"en": "Video analysis exceeded the time limit. Try a shorter video.",
	},
	"not_found": {
		"id": "Data tidak ditemukan.",
		"en": "Resource not found.",
	},
	"busy": {
		"id": "Produksi sedang berjalan. Tunggu sampai selesai.",
		"en": "A production run is already in progress. Wait for it to finish.",
	},
	"no_report": {
		"id": "Belum ada hasil analisis untuk sesi ini.",
		"en": "No analysis result exists for this session yet.",
	},
	"client_closed_request": {
		"id": "Permintaan dibatalkan.",
		"en": "The request was cancelled.",
	},
	"internal": {
		"id": "Terjadi kesalahan internal. Coba lagi.",
		"en": "An internal error occurred. Please try again.",
	},
}

func localizedMessage(locale, code string) string {
	byLocale, ok := messages[code]
	if !ok {
		byLocale = messages["internal"]
	}
	if msg, ok := byLocale[locale]; ok {
		return msg
	}
	return byLocale["en"]
}
