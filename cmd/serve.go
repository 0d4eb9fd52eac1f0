package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rulebot/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort int    // Listen port
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run RuleBot as an HTTP API server",
	Long: `Starts an HTTP server exposing:

  POST /api/chat   {"message": "..."} -> {"reply": "...", "title": "...", ...}
  GET  /api/rules  rule catalog in evaluation order
  GET  /health     liveness check

The port comes from --port, the PORT environment variable or config, in that
order, and defaults to 5050.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		cfg := appInstance.Config
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		srv := &http.Server{
			Addr:    cfg.ListenAddr(),
			Handler: apihandlers.NewRouter(appInstance),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Infof("RuleBot backend running on http://%s", displayAddr(cfg.Server.Addr, cfg.Server.Port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to run API server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("Shutting down API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down API server: %w", err)
		}
		log.Info("RuleBot API server stopped.")
		return nil
	},
}

func displayAddr(addr string, port int) string {
	if addr == "" {
		addr = "localhost"
	}
	return fmt.Sprintf("%s:%d", addr, port)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (empty for all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and config)")
}
