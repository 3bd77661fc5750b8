package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oboratav/yk-proxy/internal/api/reqctx"
	"github.com/oboratav/yk-proxy/internal/domain"
	"github.com/oboratav/yk-proxy/internal/platform/obs"
	"github.com/oboratav/yk-proxy/internal/ports"
)

// statusWriter captures the final HTTP status code and number of bytes
// written. This helps distinguish "handler returned 200" from "client
// received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling
// WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware assigns a request id and logs end-to-end request
// duration and response size.
func loggingMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := uuid.NewString()

			sw := &statusWriter{ResponseWriter: w}
			r = r.WithContext(obs.WithRequestID(r.Context(), reqID))

			next.ServeHTTP(sw, r)

			log.Info("request",
				zap.String("req_id", reqID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.RequestURI()),
				zap.Int("status", sw.status),
				zap.Int("bytes", sw.bytes),
				zap.Int64("dur_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

// basicAuthMiddleware extracts caller credentials from the HTTP Basic
// header and makes them available to handlers further down the line.
// BasicAuth decodes the header and splits on the first colon, which is
// the whole credential contract.
func basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			denyJSON(w, http.StatusUnauthorized, "the provided credentials are not valid")
			return
		}

		creds := ports.Credentials{Username: username, Password: password}
		next.ServeHTTP(w, r.WithContext(reqctx.WithCredentials(r.Context(), creds)))
	})
}

// formatMiddleware resolves the request shape toggle once, from the
// "formatted" query parameter.
func formatMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shape := domain.ShapeFlat
		if formatted, err := strconv.ParseBool(r.URL.Query().Get("formatted")); err == nil && formatted {
			shape = domain.ShapeFormatted
		}

		next.ServeHTTP(w, r.WithContext(reqctx.WithShape(r.Context(), shape)))
	})
}

// environmentMiddleware selects the carrier deployment: the YKTEST
// username sentinel or an explicit environment=test parameter routes the
// request to the test endpoint.
func environmentMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := reqctx.EnvironmentProduction

		creds, _ := reqctx.CredentialsFrom(r.Context())
		if creds.Username == "YKTEST" || r.URL.Query().Get("environment") == "test" {
			env = reqctx.EnvironmentTest
		}

		next.ServeHTTP(w, r.WithContext(reqctx.WithEnvironment(r.Context(), env)))
	})
}

func denyJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
