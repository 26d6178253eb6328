package tyradex

// Tyradex is the French-localized alternative provider. Its payloads use a
// different vocabulary than PokeAPI: pokedexId instead of id, a name object
// per language, bare type objects, a named stats struct, "talents" for
// abilities and localized strings for height/weight ("0,4 m", "6 kg").

type Name struct {
	FR string `json:"fr"`
	EN string `json:"en"`
	JP string `json:"jp"`
}

type Sprites struct {
	Regular string `json:"regular"`
	Shiny   string `json:"shiny"`
}

type Type struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Stats struct {
	HP     int `json:"hp"`
	Atk    int `json:"atk"`
	Def    int `json:"def"`
	SpeAtk int `json:"spe_atk"`
	SpeDef int `json:"spe_def"`
	Vit    int `json:"vit"`
}

type Talent struct {
	Name string `json:"name"`
	TC   bool   `json:"tc"`
}

type Pokemon struct {
	PokedexID  int      `json:"pokedexId"`
	Generation int      `json:"generation"`
	Category   string   `json:"category"`
	Name       Name     `json:"name"`
	Sprites    Sprites  `json:"sprites"`
	Types      []Type   `json:"types"`
	Stats      Stats    `json:"stats"`
	Talents    []Talent `json:"talents"`
	Height     string   `json:"height"`
	Weight     string   `json:"weight"`
}
