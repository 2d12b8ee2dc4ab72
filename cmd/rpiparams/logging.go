// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/btcsuite/btclog"
	log "github.com/inconshreveable/log15"
	"github.com/jrick/logrotate/rotator"
)

// lockedWriter serializes writes from the log15 handler and the btclog
// backend onto the shared rotator.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// initLogging initializes the logging system with proper handlers.
// It sets up a rotated log file if logDir is provided, otherwise uses stderr
// only.  Library packages log through a btclog backend writing to the same
// outputs.  The returned function closes the log file.
func initLogging(logLevel string, logDir string) (func(), error) {
	// Parse log level.  log15 stops at debug, trace only reaches the
	// library loggers.
	libLvl, ok := btclog.LevelFromString(logLevel)
	if logLevel == "crit" {
		libLvl, ok = btclog.LevelCritical, true
	}
	if logLevel == "trace" {
		logLevel = "debug"
	}
	level, err := log.LvlFromString(logLevel)
	if err != nil || !ok {
		level, libLvl = log.LvlInfo, btclog.LevelInfo
		log.Warn("Invalid log level, defaulting to info", "requested", logLevel)
	}

	var (
		handler    log.Handler
		libWriter  io.Writer = os.Stderr
		closeFiles func()    = func() {}
	)

	if logDir != "" {
		// Create log directory
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		logFile := filepath.Join(logDir, defaultLogFilename)

		r, err := rotator.New(logFile, 10*1024, false, 3)
		if err != nil {
			log.Warn("Failed to create file logger, falling back to stderr", "error", err)
			handler = log.LvlFilterHandler(level, log.StderrHandler)
		} else {
			file := &lockedWriter{w: r}
			handler = log.MultiHandler(
				log.LvlFilterHandler(level, log.StderrHandler),
				log.LvlFilterHandler(level, log.StreamHandler(file, log.LogfmtFormat())),
			)
			libWriter = io.MultiWriter(os.Stderr, file)
			closeFiles = func() { r.Close() }
			log.Info("Logging to file", "path", logFile)
		}
	} else {
		// Just use stderr
		handler = log.LvlFilterHandler(level, log.StderrHandler)
	}

	// Set the handler
	log.Root().SetHandler(handler)

	backend := btclog.NewBackend(libWriter)
	chaincfgLog := backend.Logger("CHCF")
	chaincfgLog.SetLevel(libLvl)
	chaincfg.UseLogger(chaincfgLog)

	log.Info("Logging initialized", "level", level.String())
	return func() {
		chaincfg.DisableLog()
		closeFiles()
	}, nil
}
