package books

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidGenre(t *testing.T) {
	assert.True(t, ValidGenre("fantasy"))
	assert.True(t, ValidGenre("science_fiction"))
	assert.True(t, ValidGenre("gay_and_lesbian"))
	assert.False(t, ValidGenre("Fantasy"))
	assert.False(t, ValidGenre("western"))
	assert.False(t, ValidGenre(""))
}

func TestGenreByID(t *testing.T) {
	g, ok := GenreByID("manga")
	require.True(t, ok)
	assert.Equal(t, "manga", g.ID)
	assert.Equal(t, "Manga", g.Name)
	assert.NotEmpty(t, g.Description)

	_, ok = GenreByID("novella")
	assert.False(t, ok)
}

func TestGenresSortedByName(t *testing.T) {
	all := Genres()
	require.Len(t, all, 40)

	names := make([]string, len(all))
	for i, g := range all {
		names[i] = g.Name
	}
	assert.True(t, sort.StringsAreSorted(names))

	for _, g := range all {
		assert.True(t, ValidGenre(g.ID), "listed genre %q must round-trip", g.ID)
	}
}
