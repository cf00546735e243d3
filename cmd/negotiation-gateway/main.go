// Command negotiation-gateway runs a small HTTP server demonstrating the
// negotiation middleware: it negotiates every request, reports the selected
// representation and exposes Prometheus metrics.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickvanderzwet/negotiation-middleware/config"
	"github.com/rickvanderzwet/negotiation-middleware/middleware"
	"github.com/rickvanderzwet/negotiation-middleware/negotiation"
	"github.com/rickvanderzwet/negotiation-middleware/observability"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "negotiation.yaml", "path to configuration file")
	watch := flag.Bool("watch", false, "reload configuration on file change")
	flag.Parse()

	if err := run(*configPath, *watch); err != nil {
		fmt.Fprintf(os.Stderr, "negotiation-gateway: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, watch bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The negotiated handler chain is swapped atomically on config reload;
	// in-flight requests keep the chain they started with.
	var handler atomic.Pointer[http.Handler]
	chain := buildChain(cfg, logger)
	handler.Store(&chain)

	if watch {
		watcher, err := config.NewWatcher(configPath, func(next *config.Config) {
			nextChain := buildChain(next, logger)
			handler.Store(&nextChain)
			logger.Info("configuration reloaded")
		}, config.WithWatcherLogger(logger))
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = watcher.Stop() }()
	}

	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		(*handler.Load()).ServeHTTP(w, r)
	})

	listen := cfg.Listen
	if listen == "" {
		listen = ":8080"
	}

	server := &http.Server{
		Addr:              listen,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", observability.String("addr", listen))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// buildChain wraps the echo handler with the negotiation middleware for the
// given configuration.
func buildChain(cfg *config.Config, logger observability.Logger) http.Handler {
	return middleware.NegotiationFromConfig(cfg.Negotiation, logger)(http.HandlerFunc(echoHandler))
}

// newLogger builds the logger from configuration, falling back to defaults.
func newLogger(lc *config.LoggingConfig) (observability.Logger, error) {
	logCfg := observability.DefaultLogConfig()
	if lc != nil {
		if lc.Level != "" {
			logCfg.Level = lc.Level
		}
		if lc.Format != "" {
			logCfg.Format = lc.Format
		}
		if lc.Output != "" {
			logCfg.Output = lc.Output
		}
	}
	return observability.NewLogger(logCfg)
}

// echoHandler reports the negotiated representation of the request.
func echoHandler(w http.ResponseWriter, r *http.Request) {
	result, ok := negotiation.FromContext(r.Context())
	if !ok {
		http.Error(w, "negotiation result missing", http.StatusInternalServerError)
		return
	}

	body := make(map[string]string, len(negotiation.Families))
	for _, family := range negotiation.Families {
		if match, applicable := result.Outcome(family); applicable {
			body[family.String()] = match.Value
		}
	}

	if match, applicable := result.MediaType(); applicable {
		w.Header().Set("Content-Type", match.Value)
	}
	if match, applicable := result.Language(); applicable {
		w.Header().Set("Content-Language", match.Value)
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
