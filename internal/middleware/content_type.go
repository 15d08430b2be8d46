package middleware

import (
	"net/http"
	"strings"
)

// RequireContentType rejects requests whose body is not one of the given
// media types with a 415 error envelope. Bodyless requests pass through,
// matching chi's AllowContentType.
func RequireContentType(contentTypes ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(contentTypes))
	for _, ct := range contentTypes {
		allowed[strings.ToLower(strings.TrimSpace(ct))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}

			ct := strings.ToLower(strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0]))
			if _, ok := allowed[ct]; !ok {
				respondWithError(w, r, http.StatusUnsupportedMediaType, "Unsupported media type",
					"Content-Type must be "+strings.Join(contentTypes, " or "))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
