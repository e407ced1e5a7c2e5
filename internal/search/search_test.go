// internal/search/search_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-service/internal/domain"
	"movie-catalog-service/internal/store"
)

func testEngine() (*Engine, *store.InMemoryCatalogStore) {
	catalog := store.NewInMemoryCatalogStore([]domain.Movie{
		{ID: 1, Name: "The Prison Escape", Genre: "Drama"},
		{ID: 2, Name: "The Family Boss", Genre: "Action/Crime"},
		{ID: 3, Name: "Dream Heist", Genre: "Sci-Fi/Thriller"},
		{ID: 4, Name: "The Dark Vigilante", Genre: "Action/Thriller"},
	})
	return NewEngine(catalog), catalog
}

func movieIDs(movies []domain.Movie) []int64 {
	ids := make([]int64, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestSearchWithoutCriteriaEqualsGetAll(t *testing.T) {
	engine, catalog := testEngine()

	results := engine.Search(Params{})
	assert.Equal(t, catalog.GetAll(), results, "no criteria must match GetAll in content and order")
}

func TestSearchByIDShortCircuits(t *testing.T) {
	engine, catalog := testEngine()

	t.Run("present id returns singleton", func(t *testing.T) {
		results := engine.Search(Params{ID: 2})
		require.Len(t, results, 1)
		expected, _ := catalog.GetByID(2)
		assert.Equal(t, expected, results[0])
	})

	t.Run("name and genre are ignored alongside id", func(t *testing.T) {
		// Жанр Drama не совпадает с фильмом 2, но при заданном ID это неважно.
		results := engine.Search(Params{ID: 2, Name: "prison", Genre: "Drama"})
		require.Len(t, results, 1)
		assert.Equal(t, int64(2), results[0].ID)
	})

	t.Run("absent id returns empty, still ignoring filters", func(t *testing.T) {
		results := engine.Search(Params{ID: 999, Name: "prison"})
		assert.Empty(t, results)
	})

	t.Run("non-positive id is not a filter", func(t *testing.T) {
		results := engine.Search(Params{ID: -5, Name: "prison"})
		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0].ID)
	})
}

func TestSearchByNameFragment(t *testing.T) {
	engine, _ := testEngine()

	// Регистр и пробелы по краям фрагмента не влияют на результат.
	for _, fragment := range []string{"prison", "PRISON", "  prison  ", "Prison"} {
		results := engine.Search(Params{Name: fragment})
		require.Len(t, results, 1, "fragment %q", fragment)
		assert.Equal(t, "The Prison Escape", results[0].Name)
	}
}

func TestSearchByGenreFragment(t *testing.T) {
	engine, _ := testEngine()

	results := engine.Search(Params{Genre: "action"})
	assert.Equal(t, []int64{2, 4}, movieIDs(results), "catalog order preserved")
}

func TestSearchCombinesNameAndGenreWithAND(t *testing.T) {
	engine, _ := testEngine()

	tests := []struct {
		name    string
		params  Params
		wantIDs []int64
	}{
		{"both match one movie", Params{Name: "dark", Genre: "action"}, []int64{4}},
		{"name matches, genre does not", Params{Name: "dark", Genre: "comedy"}, []int64{}},
		{"blank name is a wildcard", Params{Name: "   ", Genre: "thriller"}, []int64{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, movieIDs(engine.Search(tt.params)))
		})
	}
}

func TestSearchOnEmptyCatalog(t *testing.T) {
	engine := NewEngine(store.NewInMemoryCatalogStore(nil))

	assert.Empty(t, engine.Search(Params{}))
	assert.Empty(t, engine.Search(Params{ID: 1}))
	assert.Empty(t, engine.Search(Params{Name: "anything"}))
}
