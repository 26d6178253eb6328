package tyradex

import "os"

const DefaultBaseURL = "https://tyradex.vercel.app/api/v1"

type Config struct {
	BaseURL string
}

func NewConfig() *Config {
	base := os.Getenv("TYRADEX_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Config{BaseURL: base}
}
