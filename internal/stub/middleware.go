package stub

import (
	"log"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging logs request id, method, path, status, and duration.
func Logging(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			logger.Printf("%s %s %s %d %v", chimiddleware.GetReqID(r.Context()),
				r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
		})
	}
}

// Recovery catches panics and answers 500.
func Recovery(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Printf("panic recovered: %v\n%s", err, debug.Stack())
					internalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Fault answers every request with a fixed status while set.
type Fault struct {
	mu     sync.RWMutex
	status int
}

// Set makes every following request answer status. Zero clears the fault.
func (f *Fault) Set(status int) {
	f.mu.Lock()
	f.status = status
	f.mu.Unlock()
}

// Status returns the injected status, or zero when none is set.
func (f *Fault) Status() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Middleware short-circuits requests while a fault is set.
func (f *Fault) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status := f.Status(); status != 0 {
			writeJSON(w, status, emptyObject)
			return
		}
		next.ServeHTTP(w, r)
	})
}
