package browse

import (
	"testing"

	"github.com/VSayann/PokeScope-v2/internal/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{151, 20, 8},
		{10, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.n, c.size), "TotalPages(%d, %d)", c.n, c.size)
	}
}

func TestPage_CoversListExactlyOnce(t *testing.T) {
	list := make([]*pokemon.Pokemon, 47)
	for i := range list {
		list[i] = &pokemon.Pokemon{ID: i + 1}
	}

	const size = 10
	total := TotalPages(len(list), size)
	require.Equal(t, 5, total)

	var seen []int
	for page := 1; page <= total; page++ {
		seen = append(seen, ids(Page(list, page, size))...)
	}

	require.Len(t, seen, len(list))
	assert.Equal(t, ids(list), seen, "concatenated pages reproduce the list in order")
}

func TestPage_OutOfRange(t *testing.T) {
	list := []*pokemon.Pokemon{{ID: 1}, {ID: 2}}

	assert.Empty(t, Page(list, 2, 20))
	assert.Empty(t, Page(list, 0, 20))
	assert.Empty(t, Page(list, 1, 0))
}

func TestPage_LastPageIsShort(t *testing.T) {
	list := make([]*pokemon.Pokemon, 25)
	for i := range list {
		list[i] = &pokemon.Pokemon{ID: i + 1}
	}

	got := Page(list, 2, 20)
	assert.Len(t, got, 5)
	assert.Equal(t, 21, got[0].ID)
}

func TestPageNumbers(t *testing.T) {
	cases := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"single page", 1, 1, []int{1}},
		{"five or fewer shows all", 3, 5, []int{1, 2, 3, 4, 5}},
		{"near start", 1, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{"start boundary", 3, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{"middle", 5, 10, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"near end", 9, 10, []int{1, Ellipsis, 7, 8, 9, 10}},
		{"end boundary", 8, 10, []int{1, Ellipsis, 7, 8, 9, 10}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, PageNumbers(c.current, c.total))
		})
	}
}
