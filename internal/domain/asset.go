package domain

import (
	"fmt"
	"strings"
)

// AssetState tracks the lifecycle of media that goes through the remote
// upload pipeline. Images attached inline stay in StateLocal forever.
type AssetState string

const (
	StateLocal      AssetState = "LOCAL"
	StateUploading  AssetState = "UPLOADING"
	StateProcessing AssetState = "PROCESSING"
	StateReady      AssetState = "READY"
	StateFailed     AssetState = "FAILED"
)

// Asset is a user-supplied reference image or video. It holds either inline
// base64 data or a remote file handle, never neither. The gateway borrows
// assets for the duration of a call and must not mutate them.
type Asset struct {
	Data     string
	FileURI  string
	MimeType string
	Name     string
	Size     int64
	State    AssetState
	Error    string
}

// NewLocalAsset wraps base64-encoded bytes held in memory.
func NewLocalAsset(data, mimeType string) (*Asset, error) {
	if strings.TrimSpace(data) == "" {
		return nil, fmt.Errorf("%w: asset requires inline data", ErrValidation)
	}
	if strings.TrimSpace(mimeType) == "" {
		return nil, fmt.Errorf("%w: asset requires a mime type", ErrValidation)
	}
	return &Asset{Data: data, MimeType: mimeType, State: StateLocal}, nil
}

// NewRemoteAsset wraps a file handle returned by the upload pipeline.
func NewRemoteAsset(fileURI, mimeType string, state AssetState) (*Asset, error) {
	if strings.TrimSpace(fileURI) == "" {
		return nil, fmt.Errorf("%w: asset requires a file handle", ErrValidation)
	}
	if strings.TrimSpace(mimeType) == "" {
		return nil, fmt.Errorf("%w: asset requires a mime type", ErrValidation)
	}
	return &Asset{FileURI: fileURI, MimeType: mimeType, State: state}, nil
}

// Remote reports whether the asset is referenced by handle rather than held
// inline.
func (a *Asset) Remote() bool {
	return a != nil && a.FileURI != ""
}

// Ready reports whether the asset can be attached to a gateway call.
func (a *Asset) Ready() bool {
	if a == nil {
		return false
	}
	if a.Remote() {
		return a.State == StateReady
	}
	return a.Data != ""
}
