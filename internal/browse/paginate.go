package browse

import "github.com/VSayann/PokeScope-v2/internal/pokemon"

// Ellipsis marks a gap in the windowed page-number control.
const Ellipsis = -1

func TotalPages(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Page returns the 1-based page of the list, empty when out of range.
func Page(list []*pokemon.Pokemon, page, size int) []*pokemon.Pokemon {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(list) {
		return nil
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// PageNumbers computes the visible page controls: all pages when there are
// five or fewer, otherwise the first and last pages with up to three pages
// around the current one and Ellipsis markers for the gaps.
func PageNumbers(current, total int) []int {
	if total <= 5 {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		return []int{1, 2, 3, 4, Ellipsis, total}
	case current >= total-2:
		return []int{1, Ellipsis, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, total}
	}
}
