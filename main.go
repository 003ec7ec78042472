package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"litholog/config"
	"litholog/handlers"
	"litholog/storage"
	"litholog/tmpl"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cfgPath string, debug bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store := storage.NewEntryStore(cfg.DataFile, cfg.WorkbookFile, logger)
	if cfg.WatchFiles {
		if err := store.Watch(context.Background()); err != nil {
			logger.Warn("file watching disabled", zap.Error(err))
		}
	}

	templates := tmpl.Load("templates")

	deps := &handlers.Deps{
		Entries:   store,
		Templates: templates,
		PDFDir:    cfg.PDFDir,
		Log:       logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", deps.HandleIndex)
	mux.HandleFunc("GET /api/lithology", deps.HandleLithology)
	mux.HandleFunc("GET /pdfs/{filename}", deps.HandlePDF)

	logger.Info("litholog listening", zap.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, mux)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
