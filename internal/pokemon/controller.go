package pokemon

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/VSayann/PokeScope-v2/internal/pokeapi"
	"github.com/VSayann/PokeScope-v2/internal/tyradex"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"
)

// speciesConcurrency bounds parallel species lookups against the upstream.
const speciesConcurrency = 8

type Controller struct {
	API     *pokeapi.Client
	Tyradex *tyradex.Client
	Names   *NameCache
}

func NewController(api *pokeapi.Client, tdx *tyradex.Client, names *NameCache) *Controller {
	return &Controller{API: api, Tyradex: tdx, Names: names}
}

type catalogEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameFR string `json:"name_fr"`
	URL    string `json:"url"`
}

// localizedName resolves the French name for id, consulting the cache
// first. Lookup failures fall back to the empty string so a missing
// localization never breaks a listing.
func (ctl *Controller) localizedName(id int) string {
	if name, ok := ctl.Names.Get(id); ok {
		return name
	}

	species, err := ctl.API.GetSpecies(id)
	if err != nil {
		return ""
	}
	name := species.FrenchName()
	if name != "" {
		ctl.Names.Set(id, name)
	}
	return name
}

// enrich turns raw list results into catalog entries with localized names,
// sorted by identifier ascending.
func (ctl *Controller) enrich(results []pokeapi.ListResult) []catalogEntry {
	entries := make([]catalogEntry, len(results))

	var g errgroup.Group
	g.SetLimit(speciesConcurrency)
	for i, r := range results {
		i, r := i, r
		g.Go(func() error {
			id := pokeapi.IDFromURL(r.URL)
			nameFR := ctl.localizedName(id)
			if nameFR == "" {
				nameFR = r.Name
			}
			entries[i] = catalogEntry{ID: id, Name: r.Name, NameFR: nameFR, URL: r.URL}
			return nil
		})
	}
	g.Wait()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// ListHandler is a typed passthrough of the upstream page envelope.
func (ctl *Controller) ListHandler(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	page, err := ctl.API.ListPokemon(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch pokemon list"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *Controller) ListAllHandler(c *gin.Context) {
	all, err := ctl.API.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch full catalog"})
		return
	}

	entries := ctl.enrich(all.Results)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"results": entries,
	})
}

func (ctl *Controller) GetHandler(c *gin.Context) {
	idOrName := c.Param("id")

	detail, err := ctl.API.GetPokemon(idOrName)
	if errors.Is(err, pokeapi.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "pokemon not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch pokemon"})
		return
	}

	p := FromPokeAPI(detail)
	p.NameFR = ctl.localizedName(detail.ID)
	c.JSON(http.StatusOK, p)
}

func (ctl *Controller) SearchHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing query"})
		return
	}

	all, err := ctl.API.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "search failed"})
		return
	}

	// slug folds case and accents, so "evoli" matches "Évoli"
	folded := slug.Make(query)
	var matches []pokeapi.ListResult
	for _, r := range all.Results {
		if strings.Contains(slug.Make(r.Name), folded) {
			matches = append(matches, r)
			continue
		}
		// french names already resolved for earlier requests are searchable too
		if name, ok := ctl.Names.Get(pokeapi.IDFromURL(r.URL)); ok &&
			strings.Contains(slug.Make(name), folded) {
			matches = append(matches, r)
		}
	}

	c.JSON(http.StatusOK, ctl.enrich(matches))
}

// GenerationHandler serves a Tyradex generation listing, normalized and
// sliced into the same pagination envelope the paged listing uses.
func (ctl *Controller) GenerationHandler(c *gin.Context) {
	gen, err := strconv.Atoi(c.Param("gen"))
	if err != nil || gen < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid generation"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	raw, err := ctl.Tyradex.GetGeneration(gen)
	if errors.Is(err, tyradex.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "generation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch generation"})
		return
	}

	normalized := make([]*Pokemon, 0, len(raw))
	for i := range raw {
		normalized = append(normalized, FromTyradex(&raw[i]))
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].ID < normalized[j].ID })

	total := len(normalized)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	var next, previous *string
	if offset+limit < total {
		cursor := fmt.Sprintf("?offset=%d&limit=%d", offset+limit, limit)
		next = &cursor
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		cursor := fmt.Sprintf("?offset=%d&limit=%d", prev, limit)
		previous = &cursor
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    total,
		"next":     next,
		"previous": previous,
		"results":  normalized[start:end],
	})
}
