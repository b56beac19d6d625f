package web

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// errorResponse is the standard error payload
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// renderJSON writes v as a JSON response with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// renderError writes a standard error response
func renderError(w http.ResponseWriter, statusCode int, message string) {
	renderJSON(w, statusCode, &errorResponse{
		Error:   "error",
		Message: message,
	})
}

// statusRecorder captures the response status for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs method, path, status, and duration for every request
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
