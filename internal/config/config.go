package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	ListenAddr      string
}

func LoadConfig() (*Config, error) {
	// .env is optional; deployed environments set the variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
	}
	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
		return nil, errors.New("missing supabase config")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return cfg, nil
}
