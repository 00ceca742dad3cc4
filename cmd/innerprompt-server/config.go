package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	Addr         string
	JournalPath  string
	Model        string
	InsightModel string
	APIKey       string

	ShutdownGraceSeconds int
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("missing -addr")
	}
	if c.JournalPath == "" {
		return errors.New("missing -journal")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	if c.ShutdownGraceSeconds < 0 {
		return errors.New("shutdown-grace must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Addr:                 ":" + envOr("PORT", "3000"),
		JournalPath:          filepath.FromSlash("data/journal.json"),
		Model:                "gpt-3.5-turbo",
		InsightModel:         "gpt-5-mini",
		ShutdownGraceSeconds: 10,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address (default port from PORT env var)")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "Path of the journal JSON file")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model for emotion analysis and prompt generation")
	fs.StringVar(&cfg.InsightModel, "insight-model", cfg.InsightModel, "OpenAI model override for journal insights (default: -model)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.IntVar(&cfg.ShutdownGraceSeconds, "shutdown-grace", cfg.ShutdownGraceSeconds, "Seconds to wait for in-flight requests on shutdown")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.JournalPath = filepath.Clean(cfg.JournalPath)
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
