package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/srdex/internal/api"
	"github.com/dgallion1/srdex/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Aggregate the corpus once and serve the collection over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg := config.Load()

		records, err := runScan(cmd, cfg, log)
		if err != nil {
			return err
		}

		srv := api.NewServer(records, log)
		httpServer := &http.Server{
			Addr:         cfg.Listen,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			<-cmd.Context().Done()
			log.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("serving spells", "addr", cfg.Listen, "records", len(records))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}
