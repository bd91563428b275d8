package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalHandler returns a context cancelled on SIGINT or SIGTERM. A second
// signal terminates the process with exit code 1. It may only be called once.
func SetupSignalHandler() context.Context {
	close(onlyOneSignalHandler) // panics when called twice

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		zap.S().Warnf("received %s, stopping", sig)
		cancel()
		<-c
		os.Exit(1)
	}()
	return ctx
}
