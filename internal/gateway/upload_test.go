package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

func uploadStartResponse(uploadURL string) *http.Response {
	resp := jsonResponse(http.StatusOK, `{}`)
	resp.Header.Set("X-Goog-Upload-URL", uploadURL)
	return resp
}

func TestUploadPollsUntilActive(t *testing.T) {
	var delays []time.Duration
	var calls []string
	polls := 0
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/upload/"):
			if r.Header.Get("X-Goog-Upload-Protocol") != "resumable" {
				t.Fatalf("upload protocol = %q", r.Header.Get("X-Goog-Upload-Protocol"))
			}
			return uploadStartResponse("https://generativelanguage.googleapis.com/session/abc"), nil
		case r.Method == http.MethodPost && r.URL.Path == "/session/abc":
			return jsonResponse(http.StatusOK,
				`{"file":{"name":"files/abc","uri":"https://files.example/abc","mimeType":"video/mp4","state":"PROCESSING"}}`), nil
		case r.Method == http.MethodGet && r.URL.Path == "/v1beta/files/abc":
			polls++
			state := "PROCESSING"
			if polls >= 2 {
				state = "ACTIVE"
			}
			return jsonResponse(http.StatusOK,
				`{"name":"files/abc","uri":"https://files.example/abc","mimeType":"video/mp4","state":"`+state+`"}`), nil
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			return nil, nil
		}
	}, recordSleeps(&delays))

	data := base64.StdEncoding.EncodeToString([]byte("fake video bytes"))
	asset, err := c.Upload(context.Background(), UploadRequest{Data: data, MimeType: "video/mp4", DisplayName: "trend.mp4"})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if !asset.Ready() || asset.FileURI != "https://files.example/abc" {
		t.Fatalf("asset = %+v, want READY remote handle", asset)
	}
	if polls != 2 {
		t.Fatalf("polls = %d, want 2", polls)
	}
	if len(delays) != 2 {
		t.Fatalf("delays = %d, want one sleep before each poll", len(delays))
	}
	for _, d := range delays {
		if d != defaultPollInterval {
			t.Fatalf("poll delay = %v, want %v", d, defaultPollInterval)
		}
	}
}

func TestUploadSurfacesRemoteFailure(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/upload/"):
			return uploadStartResponse("https://generativelanguage.googleapis.com/session/abc"), nil
		default:
			return jsonResponse(http.StatusOK,
				`{"file":{"name":"files/abc","uri":"","mimeType":"video/mp4","state":"FAILED","error":{"message":"codec unsupported"}}}`), nil
		}
	}, recordSleeps(&[]time.Duration{}))

	data := base64.StdEncoding.EncodeToString([]byte("x"))
	_, err := c.Upload(context.Background(), UploadRequest{Data: data, MimeType: "video/mp4"})
	if err == nil || !strings.Contains(err.Error(), "codec unsupported") {
		t.Fatalf("error = %v, want remote failure detail", err)
	}
}

func TestUploadValidatesPayload(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected for invalid payloads")
		return nil, nil
	}, recordSleeps(&[]time.Duration{}))

	cases := []UploadRequest{
		{Data: "not base64!!!", MimeType: "video/mp4"},
		{Data: "", MimeType: "video/mp4"},
	}
	for _, req := range cases {
		if _, err := c.Upload(context.Background(), req); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Upload(%q) error = %v, want ErrValidation", req.Data, err)
		}
	}
}

func TestUploadCancelledDuringPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sleep := func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/upload/"):
			return uploadStartResponse("https://generativelanguage.googleapis.com/session/abc"), nil
		default:
			return jsonResponse(http.StatusOK,
				`{"file":{"name":"files/abc","uri":"https://files.example/abc","mimeType":"video/mp4","state":"PROCESSING"}}`), nil
		}
	}, sleep)

	data := base64.StdEncoding.EncodeToString([]byte("x"))
	_, err := c.Upload(ctx, UploadRequest{Data: data, MimeType: "video/mp4"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
