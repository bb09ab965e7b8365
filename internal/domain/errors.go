package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
	ErrAuthentication  = errors.New("api key invalid or not found")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrEmptyRender     = errors.New("image generation returned no data")
	ErrEmptyAnalysis   = errors.New("analysis returned no usable text")
	ErrAnalysisTimeout = errors.New("analysis deadline exceeded")
	ErrPlanParse       = errors.New("creative plan could not be decoded")
	ErrEmptyReport     = errors.New("report text is empty")
	ErrBusy            = errors.New("production already in progress")
)
