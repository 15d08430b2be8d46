package middleware

import (
	"net/http"

	"github.com/dangerclosesec/adoptionhub/internal/audit"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestAuditMiddleware attaches client metadata to the request context so
// services can write audit entries without seeing the *http.Request.
// It must run after chi's RequestID and RealIP middleware.
func RequestAuditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithRequest(r.Context(), audit.Request{
			ClientIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
			RequestID: middleware.GetReqID(r.Context()),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
