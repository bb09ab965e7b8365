package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// maxUploadBytes caps reference videos at 50MB, the largest clip the
// analysis model accepts without chunking.
const maxUploadBytes = 50 << 20

// UploadRequest carries a media payload destined for the remote files API.
type UploadRequest struct {
	Data        string // base64
	MimeType    string
	DisplayName string
}

// Upload pushes media through the resumable files API and polls until the
// remote side finishes processing. The only bound on the polling loop is
// ctx; callers own the deadline.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*domain.Asset, error) {
	raw, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: upload data is not base64", domain.ErrValidation)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: upload data is empty", domain.ErrValidation)
	}
	if len(raw) > maxUploadBytes {
		return nil, fmt.Errorf("%w: upload exceeds %dMB", domain.ErrValidation, maxUploadBytes>>20)
	}

	uploadURL, err := c.startUpload(ctx, req, len(raw))
	if err != nil {
		return nil, err
	}
	file, err := c.finalizeUpload(ctx, uploadURL, req.MimeType, raw)
	if err != nil {
		return nil, err
	}

	for file.State == "PROCESSING" {
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
		file, err = c.getFile(ctx, file.Name)
		if err != nil {
			return nil, err
		}
	}
	switch file.State {
	case "ACTIVE":
		return domain.NewRemoteAsset(file.URI, coalesce(file.MimeType, req.MimeType), domain.StateReady)
	case "FAILED":
		return nil, fmt.Errorf("remote processing failed: %s", coalesce(file.Error.Message, "no detail"))
	default:
		return nil, fmt.Errorf("remote file in unexpected state %q", file.State)
	}
}

// startUpload opens a resumable session and returns the session URL from
// the X-Goog-Upload-URL header.
func (c *Client) startUpload(ctx context.Context, req UploadRequest, size int) (string, error) {
	meta, err := json.Marshal(map[string]any{
		"file": map[string]string{"display_name": coalesce(req.DisplayName, "reference-media")},
	})
	if err != nil {
		return "", fmt.Errorf("encode upload metadata: %w", err)
	}

	endpoint := fmt.Sprintf("%s/upload/%s/files", c.baseURL, c.apiVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(meta))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("X-Goog-Upload-Protocol", "resumable")
	httpReq.Header.Set("X-Goog-Upload-Command", "start")
	httpReq.Header.Set("X-Goog-Upload-Header-Content-Length", strconv.Itoa(size))
	httpReq.Header.Set("X-Goog-Upload-Header-Content-Type", req.MimeType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("start upload: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return "", decodeAPIError(resp)
	}
	uploadURL := resp.Header.Get("X-Goog-Upload-URL")
	if uploadURL == "" {
		return "", fmt.Errorf("upload session missing continuation url")
	}
	return uploadURL, nil
}

// finalizeUpload sends the payload bytes to the session URL in one shot.
func (c *Client) finalizeUpload(ctx context.Context, uploadURL, mimeType string, raw []byte) (remoteFile, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(raw))
	if err != nil {
		return remoteFile{}, fmt.Errorf("build finalize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mimeType)
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("X-Goog-Upload-Command", "upload, finalize")
	httpReq.Header.Set("X-Goog-Upload-Offset", "0")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return remoteFile{}, fmt.Errorf("finalize upload: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return remoteFile{}, decodeAPIError(resp)
	}
	var out uploadFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return remoteFile{}, fmt.Errorf("decode upload response: %w", err)
	}
	return out.File, nil
}

// getFile fetches the current processing state. name is the full resource
// path returned by the upload ("files/abc123").
func (c *Client) getFile(ctx context.Context, name string) (remoteFile, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiVersion, name)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return remoteFile{}, fmt.Errorf("build file request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return remoteFile{}, fmt.Errorf("poll file: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return remoteFile{}, decodeAPIError(resp)
	}
	var file remoteFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return remoteFile{}, fmt.Errorf("decode file response: %w", err)
	}
	return file, nil
}
