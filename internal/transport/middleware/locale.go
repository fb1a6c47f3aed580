package middleware

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

type localeMatcher interface {
	Match(prefs ...string) string
	MatchTags(tags ...language.Tag) string
}

// Locale negotiates the catalog locale from the lang query parameter, then
// Accept-Language, and stores it in the request context. The chosen locale
// is echoed in Content-Language.
func Locale(m localeMatcher) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var locale string
			if lang := r.URL.Query().Get("lang"); lang != "" {
				locale = m.Match(lang)
			} else {
				// A malformed header yields no tags and so the default locale.
				tags, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
				locale = m.MatchTags(tags...)
			}

			w.Header().Set("Content-Language", locale)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(ctxutil.WithLocale(r.Context(), locale)))
		})
	}
}
