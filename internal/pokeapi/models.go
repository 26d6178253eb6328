package pokeapi

type ListResponse struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []ListResult `json:"results"`
}

type ListResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny,omitempty"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type PokemonDetail struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatEntry   `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
}

type SpeciesName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

type Species struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Names []SpeciesName `json:"names"`
}

// FrenchName returns the species' French localization, or "" when absent.
func (s *Species) FrenchName() string {
	for _, n := range s.Names {
		if n.Language.Name == "fr" {
			return n.Name
		}
	}
	return ""
}
