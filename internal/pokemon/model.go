package pokemon

// Pokemon is the provider-agnostic representation served by the API. It is
// assembled per request from an upstream source and never persisted.
type Pokemon struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	NameFR      string        `json:"name_fr,omitempty"`
	Height      int           `json:"height"`
	Weight      int           `json:"weight"`
	Sprites     Sprites       `json:"sprites"`
	Types       []TypeSlot    `json:"types"`
	Stats       []StatEntry   `json:"stats"`
	Abilities   []AbilitySlot `json:"abilities"`
	Description string        `json:"description,omitempty"`
	Generation  int           `json:"generation,omitempty"`
}

type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

type OtherSprites struct {
	OfficialArtwork ArtworkSprite `json:"official-artwork"`
}

type ArtworkSprite struct {
	FrontDefault string `json:"front_default"`
}

type TypeSlot struct {
	Type NamedRef `json:"type"`
}

type StatEntry struct {
	Stat     NamedRef `json:"stat"`
	BaseStat int      `json:"base_stat"`
}

type AbilitySlot struct {
	Ability  NamedRef `json:"ability"`
	IsHidden bool     `json:"is_hidden"`
}

type NamedRef struct {
	Name string `json:"name"`
}

// StatOrder is the canonical stat list every normalized Pokemon carries,
// in this order, with missing values defaulting to zero.
var StatOrder = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// DisplayName prefers the localized name, falling back to the base name.
func (p *Pokemon) DisplayName() string {
	if p.NameFR != "" {
		return p.NameFR
	}
	return p.Name
}

// Stat returns the base value of the named stat, or zero when absent.
func (p *Pokemon) Stat(name string) int {
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s.BaseStat
		}
	}
	return 0
}

// TypeNames returns the lowercase type names.
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}
