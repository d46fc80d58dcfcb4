package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RequestMetrics receives one observation per served request.
type RequestMetrics interface {
	ObserveRequest(method, route, status string, seconds float64)
	TrackInFlight(delta float64)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger emits structured logs and metrics for every HTTP request.
func RequestLogger(log *logrus.Logger, metrics RequestMetrics) func(http.Handler) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := r.Header.Get(RequestIDHeader)
			if !validRequestID(reqID) {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			fields := logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"request_id": reqID,
			}
			log.WithFields(fields).WithField("remote_ip", r.RemoteAddr).Info("request started")

			if metrics != nil {
				metrics.TrackInFlight(1)
				defer metrics.TrackInFlight(-1)
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			ctx := context.WithValue(r.Context(), RequestIDKey, reqID)
			next.ServeHTTP(rec, r.WithContext(ctx))

			elapsed := time.Since(start)
			log.WithFields(fields).WithFields(logrus.Fields{
				"status":      rec.status,
				"duration_ms": elapsed.Milliseconds(),
			}).Info("request completed")

			if metrics != nil {
				metrics.ObserveRequest(r.Method, routeTemplate(r), strconv.Itoa(rec.status), elapsed.Seconds())
			}
		})
	}
}

const maxRequestIDLength = 128

// validRequestID accepts short ids made of letters, digits and . _ - : only.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-', c == ':':
		default:
			return false
		}
	}
	return true
}

// routeTemplate keeps metric labels bounded by using the matched mux route.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
