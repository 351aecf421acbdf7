// Package middleware holds the net/http middleware wrapped around every
// route: request ids, access logging, and panic recovery.
package middleware

import "net/http"

// Chain wraps h so that the first middleware is the outermost one.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
