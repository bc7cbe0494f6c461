package app

import (
	"io"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPrompt   = "> "
	defaultCurrency = "Rp"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Prompt   string    // shell prompt text
	Currency string    // prefix for rendered amounts, e.g. "Rp"
	In       io.Reader // shell input; defaults to os.Stdin
	Out      io.Writer // shell output; defaults to os.Stdout
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is consulted when present; missing is fine.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Prompt:   getEnvDefault("EWALLET_PROMPT", defaultPrompt),
		Currency: getEnvDefault("EWALLET_CURRENCY", defaultCurrency),
		In:       os.Stdin,
		Out:      os.Stdout,
	}
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
