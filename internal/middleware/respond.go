package middleware

import (
	"net/http"

	"github.com/go-chi/render"
)

type errorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
}

func respondWithError(w http.ResponseWriter, r *http.Request, code int, message, detail string) {
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	render.Status(r, code)
	render.JSON(w, r, errorResponse{StatusCode: code, Message: message, Detail: detail})
}
