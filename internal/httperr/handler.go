package httperr

import "net/http"

// HandlerFunc is an http handler that reports failure instead of writing
// its own error response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to net/http, routing any returned error through
// Translate. Handlers stay free of response-formatting boilerplate and
// each request runs independently, as net/http already guarantees.
func Handler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			Write(w, err)
		}
	}
}
