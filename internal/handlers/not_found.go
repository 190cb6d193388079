package handlers

import "net/http"

// NewNotFoundHandler answers unknown routes and wrong methods with an empty 404.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
}
