package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/gnemet/slidesage/internal/config"
	"github.com/gnemet/slidesage/internal/logging"
	"github.com/gnemet/slidesage/internal/summarize"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	svc, err := summarize.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("summarizer init failed", zap.Error(err))
	}

	// Routes
	http.HandleFunc("/summarize", handleSummarize(svc, logger))
	http.HandleFunc("/healthz", handleHealthz)

	port := cfg.Application.Port
	if port == 0 {
		port = 8080
	}

	fmt.Printf("slidesage starting on http://localhost:%d\n", port)
	logger.Fatal("server exited", zap.Error(http.ListenAndServe(fmt.Sprintf(":%d", port), nil)))
}
