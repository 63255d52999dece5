package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/engmath/mathtools/internal/api"
	"github.com/engmath/mathtools/internal/history"
	"github.com/engmath/mathtools/pkg/logging"
	"github.com/engmath/mathtools/pkg/shutdown"
)

var (
	serveAddr     string
	serveLogLevel string
	serveJSONLogs bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculation HTTP API",
	Long: `Serve the calculation tools over HTTP. Every calculation endpoint is a
POST taking JSON; GET /history returns recent calculations, GET /metrics
exposes Prometheus metrics and GET /healthz reports liveness.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "listen", ":8080", "address to listen on")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level: debug, info, warn or error")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "write logs as JSON")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger(logging.ParseLevel(serveLogLevel), serveJSONLogs)

	store := openHistory()
	if store == nil {
		logger.Warn("History store unavailable, recording in memory only")
		store = history.NewMemoryStore()
	}

	server := &http.Server{
		Addr:         serveAddr,
		Handler:      api.NewServer(store, logger).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sm := shutdown.New(30 * time.Second)
	sm.Register(shutdown.CloseResource(store, "history store"))
	sm.Register(shutdown.StopHTTPServer(server, "api"))

	errChan := make(chan error, 1)
	go func() {
		logger.Info("API server listening", map[string]interface{}{"addr": serveAddr})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	go sm.Wait()

	select {
	case err := <-errChan:
		sm.Shutdown()
		return fmt.Errorf("server error: %w", err)
	case <-sm.Done():
		logger.Info("Shutting down")
		sm.Shutdown()
	}

	return nil
}
