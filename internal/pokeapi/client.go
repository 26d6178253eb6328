package pokeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound signals that the upstream answered with a non-success status.
// Any upstream failure reads as a missing resource, not as a proxy error.
var ErrNotFound = errors.New("pokemon not found")

type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(endpoint string, params url.Values) ([]byte, error) {
	fullURL := c.config.BaseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	log.Printf("PokeAPI request: %s", fullURL)

	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
		log.Printf("HTTP request failed: %v", err)
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("PokeAPI error: status %d, body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("pokeapi status %d: %w", resp.StatusCode, ErrNotFound)
	}

	return body, nil
}

func (c *Client) ListPokemon(limit, offset int) (*ListResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := c.get("/pokemon", params)
	if err != nil {
		return nil, err
	}

	var result ListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	return &result, nil
}

// ListAll probes the catalog size with a one-entry page, then fetches the
// whole catalog in a single request, the way the original service did.
func (c *Client) ListAll() (*ListResponse, error) {
	probe, err := c.ListPokemon(1, 0)
	if err != nil {
		return nil, fmt.Errorf("probe count: %w", err)
	}
	return c.ListPokemon(probe.Count, 0)
}

func (c *Client) GetPokemon(idOrName string) (*PokemonDetail, error) {
	body, err := c.get("/pokemon/"+url.PathEscape(idOrName), nil)
	if err != nil {
		return nil, err
	}

	var detail PokemonDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("unmarshal pokemon: %w", err)
	}
	return &detail, nil
}

func (c *Client) GetSpecies(id int) (*Species, error) {
	body, err := c.get("/pokemon-species/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var species Species
	if err := json.Unmarshal(body, &species); err != nil {
		return nil, fmt.Errorf("unmarshal species: %w", err)
	}
	return &species, nil
}

// IDFromURL extracts the numeric identifier from a PokeAPI resource URL,
// e.g. https://pokeapi.co/api/v2/pokemon/25/ -> 25.
func IDFromURL(resourceURL string) int {
	parts := strings.Split(strings.TrimRight(resourceURL, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, _ := strconv.Atoi(parts[len(parts)-1])
	return id
}
