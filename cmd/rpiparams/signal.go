// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/inconshreveable/log15"
)

// shutdownRequestChannel is used to initiate shutdown from one of the
// subsystems using the same code paths as when an interrupt signal is received.
var shutdownRequestChannel = make(chan struct{})

// interruptSignals defines the default signals to catch in order to do a proper
// shutdown. This may be modified during init depending on the platform.
var interruptSignals = []os.Signal{os.Interrupt}

// interruptListener listens for OS Signals such as SIGINT (Ctrl+C) and shutdown
// requests from shutdownRequestChannel. It returns a context that is canceled
// when either signal is received.
func interruptListener(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, interruptSignals...)

		// Listen for initial shutdown signal and cancel the returned
		// context to notify the caller.
		select {
		case sig := <-interruptChannel:
			log.Info("Received signal, shutting down", "signal", sig)

		case <-shutdownRequestChannel:
			log.Info("Shutdown requested, shutting down")

		case <-parent.Done():
			signal.Stop(interruptChannel)
			cancel()
			return
		}
		cancel()

		// Listen for repeated signals and display a message so the user
		// knows the shutdown is in progress and the process is not
		// hung.
		for {
			select {
			case sig := <-interruptChannel:
				log.Info("Received signal, already shutting down", "signal", sig)

			case <-shutdownRequestChannel:
				log.Info("Shutdown requested, already shutting down")
			}
		}
	}()

	return ctx
}

// requestShutdown asks interruptListener to cancel its context.  It never
// blocks.
func requestShutdown() {
	select {
	case shutdownRequestChannel <- struct{}{}:
	default:
	}
}

// interruptRequested returns true when the context returned by
// interruptListener was canceled. This simplifies early shutdown slightly
// since the caller can just use an if statement instead of a select.
func interruptRequested(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}

	return false
}
