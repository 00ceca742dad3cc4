package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/innerprompt/innerprompt/journal"
	"github.com/innerprompt/innerprompt/journal/gateway"
	"github.com/innerprompt/innerprompt/server"
)

func main() {
	// Mirror the original runtime, which picked the key up from .env.
	_ = godotenv.Load()

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &server.Deps{
		Journal: journal.NewStore(cfg.JournalPath),
	}
	if apiKey == "" {
		// Store, stats, and companion routes still work; gateway routes
		// answer 503 until a key is configured.
		log.Printf("warning: OPENAI_API_KEY not set; completion routes disabled")
	} else {
		client := openai.NewClient(option.WithAPIKey(apiKey))
		gw := gateway.NewClient(&client, cfg.Model, cfg.InsightModel)
		deps.Analyzer = gw
		deps.Prompter = gw
		deps.Summarizer = gw
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: deps.Routes(),
	}

	go func() {
		<-ctx.Done()
		grace := time.Duration(cfg.ShutdownGraceSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("innerprompt listening on %s (journal=%s)", cfg.Addr, cfg.JournalPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
