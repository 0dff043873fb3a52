package ridership

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// StartServer launches the HTTP API in the background and returns the server
// handle for shutdown.
func (a *API) StartServer() *http.Server {
	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Fatal("server error", zap.Error(err))
		}
	}()
	a.log.Info("server listening", zap.String("addr", addr))
	return server
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the server.
func (a *API) HandleGracefulShutdown(server *http.Server) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	a.log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			a.log.Error("server shutdown error", zap.Error(err))
		} else {
			a.log.Info("server shut down successfully")
		}
	}
}
