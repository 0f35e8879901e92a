package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// HeaderXProcessTime carries the handler duration in seconds.
const HeaderXProcessTime = "X-Process-Time"

// ProcessTime wraps next and stamps every response with X-Process-Time, the
// elapsed seconds between receiving the request and writing the status line.
// It runs outside the router so that 404 and 405 responses carry it too.
func ProcessTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pw := &processTimeWriter{ResponseWriter: w, start: time.Now()}
		next.ServeHTTP(pw, r)
		pw.stamp()
	})
}

type processTimeWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *processTimeWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set(HeaderXProcessTime, strconv.FormatFloat(elapsed, 'f', -1, 64))
}

func (w *processTimeWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *processTimeWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *processTimeWriter) Flush() {
	w.stamp()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *processTimeWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
