package pokemon

import (
	"strconv"
	"strings"

	"github.com/VSayann/PokeScope-v2/internal/pokeapi"
	"github.com/VSayann/PokeScope-v2/internal/tyradex"
)

// One normalization function per upstream shape. Whatever the provider
// sends, the result always carries the six canonical stats and at least
// one type entry.

func canonicalStats(byName map[string]int) []StatEntry {
	stats := make([]StatEntry, 0, len(StatOrder))
	for _, name := range StatOrder {
		stats = append(stats, StatEntry{Stat: NamedRef{Name: name}, BaseStat: byName[name]})
	}
	return stats
}

func FromPokeAPI(d *pokeapi.PokemonDetail) *Pokemon {
	byName := make(map[string]int, len(d.Stats))
	for _, s := range d.Stats {
		byName[s.Stat.Name] = s.BaseStat
	}

	types := make([]TypeSlot, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, TypeSlot{Type: NamedRef{Name: t.Type.Name}})
	}
	if len(types) == 0 {
		types = []TypeSlot{{Type: NamedRef{Name: "normal"}}}
	}

	abilities := make([]AbilitySlot, 0, len(d.Abilities))
	for _, a := range d.Abilities {
		abilities = append(abilities, AbilitySlot{
			Ability:  NamedRef{Name: a.Ability.Name},
			IsHidden: a.IsHidden,
		})
	}

	artwork := d.Sprites.Other.OfficialArtwork.FrontDefault
	if artwork == "" {
		artwork = d.Sprites.FrontDefault
	}

	return &Pokemon{
		ID:     d.ID,
		Name:   d.Name,
		Height: d.Height,
		Weight: d.Weight,
		Sprites: Sprites{
			FrontDefault: d.Sprites.FrontDefault,
			Other:        OtherSprites{OfficialArtwork: ArtworkSprite{FrontDefault: artwork}},
		},
		Types:     types,
		Stats:     canonicalStats(byName),
		Abilities: abilities,
	}
}

func FromTyradex(d *tyradex.Pokemon) *Pokemon {
	name := d.Name.EN
	if name == "" {
		name = d.Name.FR
	}

	sprite := d.Sprites.Regular
	if sprite == "" {
		sprite = d.Sprites.Shiny
	}

	types := make([]TypeSlot, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, TypeSlot{Type: NamedRef{Name: strings.ToLower(t.Name)}})
	}
	if len(types) == 0 {
		types = []TypeSlot{{Type: NamedRef{Name: "normal"}}}
	}

	abilities := make([]AbilitySlot, 0, len(d.Talents))
	for _, t := range d.Talents {
		abilities = append(abilities, AbilitySlot{
			Ability:  NamedRef{Name: t.Name},
			IsHidden: t.TC,
		})
	}

	return &Pokemon{
		ID:     d.PokedexID,
		Name:   name,
		NameFR: d.Name.FR,
		Height: parseMeasure(d.Height),
		Weight: parseMeasure(d.Weight),
		Sprites: Sprites{
			FrontDefault: sprite,
			Other:        OtherSprites{OfficialArtwork: ArtworkSprite{FrontDefault: sprite}},
		},
		Types: types,
		Stats: canonicalStats(map[string]int{
			"hp":              d.Stats.HP,
			"attack":          d.Stats.Atk,
			"defense":         d.Stats.Def,
			"special-attack":  d.Stats.SpeAtk,
			"special-defense": d.Stats.SpeDef,
			"speed":           d.Stats.Vit,
		}),
		Abilities:   abilities,
		Description: d.Category,
		Generation:  d.Generation,
	}
}

// parseMeasure converts Tyradex's localized measures ("0,4 m", "6,0 kg")
// into PokeAPI units: decimetres for height, hectograms for weight. Both
// happen to be value*10 rounded.
func parseMeasure(s string) int {
	fields := strings.Fields(strings.ReplaceAll(s, ",", "."))
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return int(v*10 + 0.5)
}
