package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"study-assist/internal/api"
	"study-assist/internal/config"
	"study-assist/internal/services"
)

func main() {
	cfg := config.Load()
	if cfg.OpenAIKey == "" {
		log.Printf("warning: OPENAI_API_KEY is not set; generation endpoints will fail")
	}

	aiService := services.NewAIService(
		cfg.OpenAIKey,
		cfg.OpenAIModel,
		cfg.OpenAIEndpoint,
		cfg.GenerationTimeout,
	)
	studyService := services.NewStudyService(aiService, cfg.MaxInputChars)
	extractorService := services.NewExtractorService()

	server := api.NewServer(studyService, extractorService)
	handler := server.Handler()
	mux := http.NewServeMux()
	mux.Handle("/api", handler)
	mux.Handle("/api/", handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// Must outlast the generation timeout so a slow completion is
		// reported as a task failure, not a dropped connection.
		WriteTimeout: cfg.GenerationTimeout + 30*time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
