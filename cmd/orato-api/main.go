package main

import (
	"context"
	"net/http"
	"os"

	httpadapter "github.com/orato-ai/orato/internal/adapters/http"
	"github.com/orato-ai/orato/internal/adapters/llm"
	"github.com/orato-ai/orato/internal/app/analysis"
	"github.com/orato-ai/orato/internal/app/evaluation"
	"github.com/orato-ai/orato/internal/app/feedback"
	"github.com/orato-ai/orato/internal/config"
	"github.com/orato-ai/orato/internal/domain"
	"github.com/orato-ai/orato/internal/observability"
)

func main() {
	ctx := context.Background()
	log := observability.Logger()
	cfg := config.Load()

	// Model selection: mock for dev, Gemini when a key is present, nil
	// otherwise. A missing key is not fatal; endpoints degrade instead.
	var model domain.ModelClient
	switch {
	case cfg.UseMockLLM:
		log.Info("using mock model client")
		model = llm.NewMockModel()
	case cfg.GeminiAPIKey != "":
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Error("could not initialize Gemini client", "error", err)
			os.Exit(1)
		}
		log.Info("using Gemini model client", "model", cfg.ModelName)
		model = client
	default:
		log.Warn("ORATO_GEMINI_API_KEY not set; AI endpoints will return 503")
	}

	handler := httpadapter.NewServer(httpadapter.Deps{
		Evaluation:    evaluation.NewService(model),
		Analysis:      analysis.NewService(model),
		Feedback:      feedback.NewService(model),
		AIConfigured:  model != nil,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	addr := ":" + cfg.Port
	log.Info("Orato API listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
