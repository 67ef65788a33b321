package main

import (
	"net/http"
	"runtime"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"zood.dev/devserver/webroot"
)

// newRouter builds the handler chain for the server: access logging around
// CORS decoration around the file server.
func newRouter(root webroot.Root, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.PathPrefix("/").Handler(http.FileServer(root))
	return logHandler(logger, corsMiddleware(r))
}

// logHandler emits one access log line per handled request, and keeps handler
// panics from taking down the process.
func logHandler(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s := make([]byte, 2048)
				numBytes := runtime.Stack(s, false)
				logger.Error().Msgf("recovered - %v\n%s", p, s[:numBytes])
				sendInternalErr(w)
			}
		}()

		m := httpsnoop.CaptureMetrics(next, w, r)
		logger.Info().
			Int("status", m.Code).
			Int64("bytes", m.Written).
			Dur("duration", m.Duration).
			Msgf("%s %s (%s)", r.Method, r.URL.Path, r.RemoteAddr)
	})
}

func sendInternalErr(w http.ResponseWriter) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
