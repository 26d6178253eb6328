package browse

import (
	"sort"
	"sync"

	"github.com/VSayann/PokeScope-v2/internal/pokemon"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize  = 20
	fetchConcurrency = 8
	// the SPA browsed the first generation's detailed listing
	defaultGeneration = 1
)

// App holds the browsing state the single-page UI kept client-side: the
// current source data, active filters, page position and the favorites set.
// Filtering and pagination are computed locally over the fetched list.
type App struct {
	client   *Client
	pageSize int
	search   *Debouncer

	mu            sync.Mutex
	filters       Filters
	page          int
	favoritesOnly bool
	catalog       []*pokemon.Pokemon
	favorites     map[int]bool
	favDetails    []*pokemon.Pokemon
	favVersion    int
}

func NewApp(client *Client) *App {
	return &App{
		client:    client,
		pageSize:  DefaultPageSize,
		search:    NewDebouncer(SearchDebounce),
		filters:   NewFilters(),
		page:      1,
		favorites: make(map[int]bool),
	}
}

// Load fetches the catalog page backing the normal (non-favorites) view.
func (a *App) Load() error {
	page, err := a.client.GenerationPage(defaultGeneration, a.pageSize, 0)
	if err != nil {
		return err
	}

	// pull the remaining pages so local filtering sees the whole set
	results := page.Results
	for offset := a.pageSize; offset < page.Count; offset += a.pageSize {
		next, err := a.client.GenerationPage(defaultGeneration, a.pageSize, offset)
		if err != nil {
			return err
		}
		results = append(results, next.Results...)
	}

	a.mu.Lock()
	a.catalog = results
	a.mu.Unlock()
	return nil
}

// RefreshFavorites reloads the favorite id set from the server.
func (a *App) RefreshFavorites() error {
	ids, err := a.client.Favorites()
	if err != nil {
		return err
	}
	favs := make(map[int]bool, len(ids))
	for _, id := range ids {
		favs[id] = true
	}
	a.mu.Lock()
	a.favorites = favs
	a.mu.Unlock()
	return nil
}

// FetchFavoriteDetails loads one detail per favorite concurrently. An
// individual failure drops that entry instead of failing the whole set.
func (a *App) FetchFavoriteDetails() []*pokemon.Pokemon {
	a.mu.Lock()
	ids := make([]int, 0, len(a.favorites))
	for id := range a.favorites {
		ids = append(ids, id)
	}
	a.favVersion++
	version := a.favVersion
	a.mu.Unlock()

	details := make([]*pokemon.Pokemon, len(ids))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := a.client.Pokemon(id)
			if err == nil {
				details[i] = p
			}
			return nil
		})
	}
	g.Wait()

	kept := make([]*pokemon.Pokemon, 0, len(details))
	for _, p := range details {
		if p != nil {
			kept = append(kept, p)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].ID < kept[j].ID })

	a.mu.Lock()
	defer a.mu.Unlock()
	// a newer fetch superseded this one; drop the stale result
	if version != a.favVersion {
		return a.favDetails
	}
	a.favDetails = kept
	return kept
}

// SetSearch applies the query after the debounce window; rapid calls
// replace the pending one.
func (a *App) SetSearch(query string) {
	a.search.Trigger(func() { a.SetSearchNow(query) })
}

func (a *App) SetSearchNow(query string) {
	a.mu.Lock()
	a.filters.Query = query
	a.page = 1
	a.mu.Unlock()
}

func (a *App) ToggleType(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, t := range a.filters.Types {
		if t == name {
			a.filters.Types = append(a.filters.Types[:i], a.filters.Types[i+1:]...)
			a.page = 1
			return
		}
	}
	a.filters.Types = append(a.filters.Types, name)
	a.page = 1
}

func (a *App) SetGeneration(gen string) {
	a.mu.Lock()
	a.filters.Generation = gen
	a.page = 1
	a.mu.Unlock()
}

func (a *App) SetMinHP(hp int) {
	a.mu.Lock()
	a.filters.MinHP = hp
	a.page = 1
	a.mu.Unlock()
}

func (a *App) ClearFilters() {
	a.mu.Lock()
	a.filters = NewFilters()
	a.page = 1
	a.mu.Unlock()
}

// SetFavoritesOnly swaps the data source between the catalog and the
// per-favorite detail fetches.
func (a *App) SetFavoritesOnly(on bool) {
	a.mu.Lock()
	a.favoritesOnly = on
	a.page = 1
	a.mu.Unlock()
	if on {
		a.FetchFavoriteDetails()
	}
}

func (a *App) SetPage(page int) {
	a.mu.Lock()
	if page >= 1 {
		a.page = page
	}
	a.mu.Unlock()
}

// ToggleFavorite adds or removes the favorite server-side and updates the
// local set.
func (a *App) ToggleFavorite(pokemonID int) error {
	a.mu.Lock()
	isFav := a.favorites[pokemonID]
	a.mu.Unlock()

	var err error
	if isFav {
		err = a.client.RemoveFavorite(pokemonID)
	} else {
		err = a.client.AddFavorite(pokemonID)
	}
	if err != nil {
		return err
	}

	a.mu.Lock()
	if isFav {
		delete(a.favorites, pokemonID)
	} else {
		a.favorites[pokemonID] = true
	}
	a.mu.Unlock()
	return nil
}

func (a *App) source() []*pokemon.Pokemon {
	if a.favoritesOnly {
		return a.favDetails
	}
	return a.catalog
}

// Filtered returns the filtered view of the current source.
func (a *App) Filtered() []*pokemon.Pokemon {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filters.Apply(a.source())
}

// Visible returns the current page of the filtered view.
func (a *App) Visible() []*pokemon.Pokemon {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Page(a.filters.Apply(a.source()), a.page, a.pageSize)
}

func (a *App) TotalPages() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return TotalPages(len(a.filters.Apply(a.source())), a.pageSize)
}

func (a *App) PageNumbers() []int {
	a.mu.Lock()
	page := a.page
	total := TotalPages(len(a.filters.Apply(a.source())), a.pageSize)
	a.mu.Unlock()
	return PageNumbers(page, total)
}

func (a *App) Page() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

func (a *App) IsFavorite(pokemonID int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.favorites[pokemonID]
}
