package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	config := MustLoadConfig()
	SetupLogger(config.LogLevel)

	engine := NewEngine()
	server := &http.Server{
		Addr:    net.JoinHostPort(config.Host, config.Port),
		Handler: NewHTTPServer(engine, config),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go NewGroupMonitor(engine, config.GroupMonitorInterval).Run(ctx)

	go func() {
		LogStartedServer(server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			LogServerStopped(err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	server.Shutdown(shutdownCtx)
}
