// Package middleware holds the chi middleware stack: request ids, CORS,
// structured request logging, per-IP rate limiting, and locale detection.
package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey stores the resolved UI locale ("id" or "en") on the context.
var LocaleKey = localeContextKey{}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English, // unmatched languages land here
	language.Indonesian,
})

// I18N resolves the response locale from the X-Locale header first and the
// Accept-Language header second. The service speaks Indonesian and English;
// everything else matches to the closest of the two.
func I18N(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := resolveLocale(r, defaultLocale)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLocale(r *http.Request, fallback string) string {
	hinted := r.Header.Get("X-Locale")
	accepted := r.Header.Get("Accept-Language")
	if hinted == "" && accepted == "" {
		if fallback != "" {
			return fallback
		}
		return "id"
	}
	tag, _ := language.MatchStrings(localeMatcher, hinted, accepted)
	base, _ := tag.Base()
	if base.String() == "id" {
		return "id"
	}
	return "en"
}

// LocaleFromContext returns the locale set by I18N, defaulting to
// Indonesian for handlers reached outside the middleware chain.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "id"
}
