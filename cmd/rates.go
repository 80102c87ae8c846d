package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/synthwatch/telegen/common/logging"
	"github.com/synthwatch/telegen/internal/ratesmock"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Serve the mock currency exchange endpoint",
	Long: `Serve a mock OpenExchangeRates API on /api/latest.json.

Every request returns the fixed USD-base table with independent ±2%
jitter per currency. The server keeps no state between requests.`,
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.With(logging.Service("rates-mock"))
	srv := ratesmock.NewServer(newRand(), log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Rates.Port),
		Handler:      ratesmock.NewRouter(srv),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", logging.Error(err))
		}
	}()

	log.Info("listening", "port", cfg.Rates.Port, "endpoint", "/api/latest.json")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
