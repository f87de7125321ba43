// The api binary serves the document analysis pipeline over HTTP.
package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finsight/pkg/api/analyze"
	"finsight/pkg/config"
	"finsight/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("FINSIGHT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/server.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.L.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	handler := analyze.NewHandler(cfg.MaxUploadBytes, cfg.CacheTTLDuration())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Mount("/api", handler.Routes())

	logger.L.Info("api server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.L.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
