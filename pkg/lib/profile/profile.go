// Package profile registers pprof handlers on a ServeMux.
package profile

import (
	"net/http"
	"net/http/pprof"
)

// RegisterHandlers registers the pprof index, cmdline, profile, symbol
// and trace handlers with the given ServeMux.
func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
}
