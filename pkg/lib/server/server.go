// Package server assembles the optional HTTP endpoint exposing health,
// metrics and profiling handlers.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/puzzle-framework/str8ts/pkg/lib/profile"
	"github.com/puzzle-framework/str8ts/pkg/metrics"
)

const defaultAddress = ":8080"

// Option applies a configuration option to the given config.
type Option func(sc *serverConfig)

func GetListenAndServeFunc(options ...Option) func() error {
	sc := defaultServerConfig()
	sc.apply(options)

	return sc.getListenAndServeFunc()
}

func WithAddress(address string) Option {
	return func(sc *serverConfig) {
		if address != "" {
			sc.address = address
		}
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(sc *serverConfig) {
		sc.logger = logger
	}
}

// WithDebug exposes the pprof handlers alongside metrics and health.
func WithDebug(debug bool) Option {
	return func(sc *serverConfig) {
		sc.debug = debug
	}
}

type serverConfig struct {
	logger  *logrus.Logger
	address string
	debug   bool
}

func (sc *serverConfig) apply(options []Option) {
	for _, o := range options {
		o(sc)
	}
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		logger:  logrus.New(),
		address: defaultAddress,
		debug:   false,
	}
}

func (sc serverConfig) newMux() *http.ServeMux {
	metrics.RegisterSolver()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())
	if sc.debug {
		profile.RegisterHandlers(mux)
		sc.logger.Debug("profiling handlers enabled")
	}
	return mux
}

func (sc serverConfig) getListenAndServeFunc() func() error {
	s := http.Server{
		Handler: sc.newMux(),
		Addr:    sc.address,
	}

	sc.logger.Debugf("serving metrics on '%v'", sc.address)
	return s.ListenAndServe
}
