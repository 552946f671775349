package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods   = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders   = "Authorization, Content-Type, Accept"
	corsExposeHeaders  = "Retry-After, Content-Disposition, X-Request-ID"
	corsMaxAge         = "86400"
	corsWildcardOrigin = "*"
)

// CORS returns a handler that adds CORS headers for allowed origins and
// responds to OPTIONS preflight requests with 204. An entry of "*" allows any origin,
// but only explicitly listed origins are told credentials are allowed.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	anyOrigin := false
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		o = strings.TrimSuffix(o, "/")
		if o == corsWildcardOrigin {
			anyOrigin = true
			continue
		}
		if o != "" {
			allowed[o] = struct{}{}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		_, listed := allowed[origin]
		ok := listed || (anyOrigin && origin != "")

		if r.Method == http.MethodOptions {
			if ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				w.Header().Set("Access-Control-Max-Age", corsMaxAge)
				if listed {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				w.Header().Add("Vary", "Origin")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if ok {
			wrapped := &corsResponseWriter{ResponseWriter: w, origin: origin, credentials: listed}
			next.ServeHTTP(wrapped, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsResponseWriter adds CORS headers to the response for an allowed origin.
type corsResponseWriter struct {
	http.ResponseWriter
	origin      string
	credentials bool
}

func (w *corsResponseWriter) WriteHeader(code int) {
	w.setHeaders()
	w.ResponseWriter.WriteHeader(code)
}

// Write covers handlers that never call WriteHeader explicitly.
func (w *corsResponseWriter) Write(b []byte) (int, error) {
	w.setHeaders()
	return w.ResponseWriter.Write(b)
}

func (w *corsResponseWriter) setHeaders() {
	hdr := w.ResponseWriter.Header()
	if hdr.Get("Access-Control-Allow-Origin") != "" {
		return
	}
	hdr.Set("Access-Control-Allow-Origin", w.origin)
	if w.credentials {
		hdr.Set("Access-Control-Allow-Credentials", "true")
	}
	hdr.Set("Access-Control-Expose-Headers", corsExposeHeaders)
	hdr.Add("Vary", "Origin")
}
