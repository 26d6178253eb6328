package tyradex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

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

func (c *Client) get(endpoint string) ([]byte, error) {
	fullURL := c.config.BaseURL + endpoint
	log.Printf("Tyradex request: %s", fullURL)

	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
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
		log.Printf("Tyradex error: status %d, body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("tyradex status %d: %w", resp.StatusCode, ErrNotFound)
	}

	return body, nil
}

func (c *Client) GetGeneration(gen int) ([]Pokemon, error) {
	body, err := c.get("/gen/" + strconv.Itoa(gen))
	if err != nil {
		return nil, err
	}

	var result []Pokemon
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal generation: %w", err)
	}
	return result, nil
}

func (c *Client) GetPokemon(id int) (*Pokemon, error) {
	body, err := c.get("/pokemon/" + strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	var p Pokemon
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("unmarshal pokemon: %w", err)
	}
	return &p, nil
}
