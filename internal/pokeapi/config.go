package pokeapi

import "os"

const DefaultBaseURL = "https://pokeapi.co/api/v2"

type Config struct {
	BaseURL string
}

func NewConfig() *Config {
	base := os.Getenv("POKEAPI_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Config{BaseURL: base}
}
