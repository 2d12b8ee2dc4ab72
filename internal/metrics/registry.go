// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"errors"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterMetrics registers the Go runtime, process, HTTP and parameter
// collectors of params with reg.
func RegisterMetrics(reg prometheus.Registerer, params *chaincfg.Params, logger log.Logger) {
	registerIfNotExists(reg, collectors.NewGoCollector(), "go_collector", logger)
	registerIfNotExists(reg, collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector", logger)

	registerIfNotExists(reg, httpRequestsTotal, "http_requests_total", logger)
	registerIfNotExists(reg, httpRequestDuration, "http_request_duration", logger)

	registerIfNotExists(reg, NewParamsCollector(params), "params_collector", logger)
}

// registerIfNotExists registers a collector if it's not already registered
func registerIfNotExists(reg prometheus.Registerer, collector prometheus.Collector, name string, logger log.Logger) {
	if err := reg.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			logger.Debug("collector already registered", "name", name)
		} else {
			logger.Error("failed to register collector", "name", name, "err", err)
		}
	}
}
