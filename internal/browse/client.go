package browse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/VSayann/PokeScope-v2/internal/pokeapi"
	"github.com/VSayann/PokeScope-v2/internal/pokemon"
	"github.com/VSayann/PokeScope-v2/internal/users"
)

// Client drives the PokeScope REST API. The cookie jar carries the session
// cookie across calls, so one Client is one logged-in browser.
type Client struct {
	base       string
	httpClient *http.Client
}

func NewClient(base string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		base: base,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

type apiError struct {
	Message string `json:"message"`
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func (c *Client) Register(email, username, password string) (*users.UserResponse, error) {
	var u users.UserResponse
	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"email": email, "username": username, "password": password,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(identifier, password string) (*users.UserResponse, error) {
	var u users.UserResponse
	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"identifier": identifier, "password": password,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout() error {
	return c.do(http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) CurrentUser() (*users.UserResponse, error) {
	var u users.UserResponse
	if err := c.do(http.MethodGet, "/api/auth/user", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(username, profileImageURL *string) (*users.UserResponse, error) {
	body := map[string]interface{}{}
	if username != nil {
		body["username"] = *username
	}
	if profileImageURL != nil {
		body["profileImageUrl"] = *profileImageURL
	}
	var u users.UserResponse
	if err := c.do(http.MethodPut, "/api/auth/profile", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Favorites() ([]int, error) {
	var favs []struct {
		PokemonID int `json:"pokemonId"`
	}
	if err := c.do(http.MethodGet, "/api/favorites", nil, &favs); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.PokemonID)
	}
	return ids, nil
}

func (c *Client) AddFavorite(pokemonID int) error {
	return c.do(http.MethodPost, "/api/favorites/"+strconv.Itoa(pokemonID), nil, nil)
}

func (c *Client) RemoveFavorite(pokemonID int) error {
	return c.do(http.MethodDelete, "/api/favorites/"+strconv.Itoa(pokemonID), nil, nil)
}

func (c *Client) PokemonPage(limit, offset int) (*pokeapi.ListResponse, error) {
	var page pokeapi.ListResponse
	path := fmt.Sprintf("/api/pokemon?limit=%d&offset=%d", limit, offset)
	if err := c.do(http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Pokemon(id int) (*pokemon.Pokemon, error) {
	var p pokemon.Pokemon
	if err := c.do(http.MethodGet, "/api/pokemon/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GenerationPage fetches a normalized page of the given generation.
type GenerationResponse struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []*pokemon.Pokemon `json:"results"`
}

func (c *Client) GenerationPage(gen, limit, offset int) (*GenerationResponse, error) {
	var page GenerationResponse
	path := fmt.Sprintf("/api/pokemon/gen/%d?limit=%d&offset=%d", gen, limit, offset)
	if err := c.do(http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CatalogEntry is the lightweight listing shape returned by the full
// catalog and search endpoints.
type CatalogEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameFR string `json:"name_fr"`
	URL    string `json:"url"`
}

func (c *Client) Search(query string) ([]CatalogEntry, error) {
	var results []CatalogEntry
	path := "/api/pokemon/search/" + url.PathEscape(query)
	if err := c.do(http.MethodGet, path, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) Catalog() ([]CatalogEntry, error) {
	var resp struct {
		Count   int            `json:"count"`
		Results []CatalogEntry `json:"results"`
	}
	if err := c.do(http.MethodGet, "/api/pokemon/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
