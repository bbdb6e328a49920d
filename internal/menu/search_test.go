package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/messbook/internal/models"
)

var catalogue = []models.MenuItem{
	{ID: 1, Name: "Chicken Curry"},
	{ID: 2, Name: "Chicken Biryani"},
	{ID: 3, Name: "Dal"},
	{ID: 4, Name: "Daal Fry"},
	{ID: 5, Name: "Rice"},
	{ID: 6, Name: "Fried Rice"},
}

func names(items []models.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestSearch_SubstringFirst(t *testing.T) {
	got := Search(catalogue, "rice", 0)
	// "Rice" is covered entirely by the query, so it outranks "Fried Rice".
	assert.Equal(t, []string{"Rice", "Fried Rice"}, names(got))
}

func TestSearch_Typos(t *testing.T) {
	got := Search(catalogue, "chiken curry", 0)
	assert.Equal(t, []string{"Chicken Curry"}, names(got))

	got = Search(catalogue, "biriyani", 0)
	assert.Empty(t, got)

	got = Search(catalogue, "chicken biriyani", 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "Chicken Biryani", got[0].Name)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"Dal"}, names(Search(catalogue, "DAL", 0)))
}

func TestSearch_Limit(t *testing.T) {
	got := Search(catalogue, "chicken", 1)
	assert.Len(t, got, 1)
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Nil(t, Search(catalogue, "   ", 5))
}

func TestSimilarity(t *testing.T) {
	s, ok := Similarity("dal", "Dal")
	assert.True(t, ok)
	assert.Equal(t, 2.0, s)

	_, ok = Similarity("pizza", "Dal")
	assert.False(t, ok)
}
