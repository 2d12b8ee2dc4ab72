// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MetalBlockchain/rpiparams/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// paramsServer serves the parameters of the selected network as JSON along
// with its metrics.
type paramsServer struct {
	params *netParams
	router *mux.Router
	reg    *prometheus.Registry
}

func newParamsServer(params *netParams) *paramsServer {
	s := &paramsServer{
		params: params,
		router: mux.NewRouter(),
		reg:    prometheus.NewRegistry(),
	}
	metrics.RegisterMetrics(s.reg, params.Params, log.New("module", "metrics"))
	s.registerRoutes()
	return s
}

func (s *paramsServer) registerRoutes() {
	s.router.Use(metrics.HTTPMiddleware)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/params", s.handleParams).Methods(http.MethodGet)
	api.HandleFunc("/genesis", s.handleGenesis).Methods(http.MethodGet)
	api.HandleFunc("/checkpoints", s.handleCheckpoints).Methods(http.MethodGet)
	api.HandleFunc("/checkpoints/{height:[0-9]+}", s.handleCheckpoint).Methods(http.MethodGet)
	api.HandleFunc("/upgrades", s.handleUpgrades).Methods(http.MethodGet)
	api.HandleFunc("/upgrades/{upgrade}", s.handleUpgrade).Methods(http.MethodGet)

	s.router.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *paramsServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// run serves on addr until ctx is done, then shuts the server down.
func (s *paramsServer) run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting parameter server", "addr", addr, "network", s.params.Name())
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down parameter server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// GET /api/params
func (s *paramsServer) handleParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newParamsView(s.params))
}

// GET /api/genesis
func (s *paramsServer) handleGenesis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newGenesisView(s.params.Params))
}

// GET /api/checkpoints
func (s *paramsServer) handleCheckpoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCheckpointsView(s.params.Params))
}

// GET /api/checkpoints/{height}
func (s *paramsServer) handleCheckpoint(w http.ResponseWriter, r *http.Request) {
	height, err := parseHeight(mux.Vars(r)["height"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, ok := s.params.Checkpoints().Lookup(height)
	if !ok {
		writeError(w, http.StatusNotFound, "no checkpoint at height "+strconv.Itoa(int(height)))
		return
	}
	writeJSON(w, http.StatusOK, checkpointView{Height: height, Hash: hash.String()})
}

// GET /api/upgrades?height=N
func (s *paramsServer) handleUpgrades(w http.ResponseWriter, r *http.Request) {
	height, err := heightQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newUpgradesView(s.params.Params, height))
}

// GET /api/upgrades/{upgrade}?height=N
func (s *paramsServer) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	u, ok := parseUpgrade(mux.Vars(r)["upgrade"])
	if !ok {
		writeError(w, http.StatusNotFound, "unknown upgrade")
		return
	}
	height, err := heightQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newUpgradeView(s.params.Params, u, height))
}

// heightQuery returns the optional height query parameter.
func heightQuery(r *http.Request) (*int32, error) {
	raw := r.URL.Query().Get("height")
	if raw == "" {
		return nil, nil
	}
	height, err := parseHeight(raw)
	if err != nil {
		return nil, err
	}
	return &height, nil
}

func parseHeight(raw string) (int32, error) {
	height, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || height < 0 {
		return 0, errors.New("invalid height " + strconv.Quote(raw))
	}
	return int32(height), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
