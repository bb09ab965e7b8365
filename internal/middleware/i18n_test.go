package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func localeProbe(t *testing.T, xLocale, acceptLanguage, fallback string) string {
	t.Helper()
	var got string
	handler := I18N(fallback)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if xLocale != "" {
		req.Header.Set("X-Locale", xLocale)
	}
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestI18NResolvesLocale(t *testing.T) {
	cases := []struct {
		name           string
		xLocale        string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{"explicit_id", "id", "", "en", "id"},
		{"explicit_en", "en", "id-ID", "id", "en"},
		{"accept_language_id", "", "id-ID,id;q=0.9", "en", "id"},
		{"accept_language_regional", "", "en-US,en;q=0.8", "id", "en"},
		{"unsupported_language", "", "fr-FR", "id", "en"},
		{"no_headers_uses_fallback", "", "", "id", "id"},
		{"no_headers_no_fallback", "", "", "", "id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := localeProbe(t, tc.xLocale, tc.acceptLanguage, tc.fallback); got != tc.want {
				t.Fatalf("locale = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("generated id = %q, header = %q", seen, rec.Header().Get("X-Request-ID"))
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	handler.ServeHTTP(rec, req)
	if seen != "upstream-id" {
		t.Fatalf("inbound id not honored, got %q", seen)
	}
}
