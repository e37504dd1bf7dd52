package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"songsearch/config"
	"songsearch/core/catalog"
	"songsearch/logger"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Initialize the catalog client. A failure here must not abort startup:
	// the server keeps serving, and the search route reports the catalog as
	// unavailable until a restart with valid credentials.
	handle := catalog.Init(context.Background(), catalog.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
	})

	var apiHandler *APIHandler
	if handle.Ready() {
		logger.Info("catalog client initialized")
		apiHandler = NewAPIHandler(handle.Client(), nil)
	} else {
		logger.Warn("catalog client failed to initialize, search will be unavailable",
			logger.ErrorField(handle.Err()))
		apiHandler = NewAPIHandler(nil, handle.Err())
	}

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(requestIDMiddleware)

	router.HandleFunc("/search", apiHandler.SearchHandler).Methods(http.MethodGet)
	router.HandleFunc("/", apiHandler.HomeHandler).Methods(http.MethodGet)

	server.Handler = router

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("server stopped")
}
