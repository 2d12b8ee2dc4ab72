// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics exports the selected network parameters and the request
// statistics of the parameter server to Prometheus.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	metrics.RegisterMetrics(reg, params, logger)
//	router.Use(metrics.HTTPMiddleware)
//	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package metrics

const namespace = "rpiparams"
