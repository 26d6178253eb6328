package browse

import (
	"strconv"
	"strings"

	"github.com/VSayann/PokeScope-v2/internal/pokemon"
)

// GenerationAll disables the generation filter.
const GenerationAll = "all"

// Filters is the conjunction of independent predicates applied to the
// in-memory list. Evaluation order does not matter.
type Filters struct {
	Query      string
	Types      []string
	Generation string
	MinHP      int
}

func NewFilters() Filters {
	return Filters{Generation: GenerationAll, MinHP: 1}
}

func (f Filters) Match(p *pokemon.Pokemon) bool {
	if p == nil {
		return false
	}

	if f.Query != "" &&
		!strings.Contains(strings.ToLower(p.DisplayName()), strings.ToLower(f.Query)) {
		return false
	}

	if p.Stat("hp") < f.MinHP {
		return false
	}

	// OR semantics: one matching type is enough
	if len(f.Types) > 0 {
		matched := false
		for _, want := range f.Types {
			for _, have := range p.TypeNames() {
				if strings.EqualFold(want, have) {
					matched = true
					break
				}
			}
		}
		if !matched {
			return false
		}
	}

	if f.Generation != GenerationAll && f.Generation != "" {
		if strings.TrimSpace(f.Generation) != strconv.Itoa(p.Generation) {
			return false
		}
	}

	return true
}

func (f Filters) Apply(list []*pokemon.Pokemon) []*pokemon.Pokemon {
	out := make([]*pokemon.Pokemon, 0, len(list))
	for _, p := range list {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
