package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/a2sh3r/holdengine/internal/hash"
	"github.com/a2sh3r/holdengine/internal/logger"
	"go.uber.org/zap"
)

type hashResponseWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *hashResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *hashResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func signedMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// NewHashMiddleware signs every response body with secretKey and requires a
// valid HashSHA256 header on mutating requests that carry a body. A signature
// sent with any other request is verified too. An empty key disables both.
func NewHashMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secretKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(hash.HeaderName)
			if r.Body != nil && (got != "" || signedMethod(r.Method)) {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					http.Error(w, "failed to read body", http.StatusBadRequest)
					return
				}
				if got == "" && len(body) > 0 {
					logger.Log.Warn("rejected unsigned request", zap.String("uri", r.RequestURI))
					http.Error(w, "missing hash", http.StatusBadRequest)
					return
				}
				if got != "" {
					if err := hash.VerifyHash(string(body), secretKey, got); err != nil {
						logger.Log.Warn("rejected request with bad signature", zap.String("uri", r.RequestURI))
						http.Error(w, "invalid hash", http.StatusBadRequest)
						return
					}
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			hw := &hashResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(hw, r)

			if hw.buf.Len() > 0 {
				w.Header().Set(hash.HeaderName, hash.CalculateHash(hw.buf.String(), secretKey))
			}
			w.WriteHeader(hw.status)
			if _, err := w.Write(hw.buf.Bytes()); err != nil {
				logger.Log.Error("failed to write response", zap.Error(err))
			}
		})
	}
}
