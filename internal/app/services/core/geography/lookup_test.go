package geography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup() *Lookup {
	return NewLookup([]Country{
		{Name: "United States", States: []State{
			{Name: "Texas", Cities: []City{{Name: "Houston"}, {Name: "Austin"}}},
			{Name: "California", Cities: []City{{Name: "San Francisco"}, {Name: "Los Angeles"}}},
		}},
		{Name: "France", States: []State{
			{Name: "Île-de-France", Cities: []City{{Name: "Paris"}}},
			{Name: "Occitanie", Cities: []City{{Name: "Toulouse"}}},
		}},
		{Name: "Monaco"},
	})
}

func TestFindCountry(t *testing.T) {
	lookup := testLookup()

	t.Run("Case Insensitive", func(t *testing.T) {
		country, ok := lookup.FindCountry("  united STATES ")
		require.True(t, ok)
		assert.Equal(t, "United States", country.Name, "canonical dataset name should be returned")
	})

	t.Run("Unknown Name", func(t *testing.T) {
		country, ok := lookup.FindCountry("Atlantis")
		assert.False(t, ok)
		assert.Nil(t, country)
	})

	t.Run("Empty Name", func(t *testing.T) {
		_, ok := lookup.FindCountry("")
		assert.False(t, ok, "empty input never matches")
	})
}

func TestFindState(t *testing.T) {
	lookup := testLookup()
	france, _ := lookup.FindCountry("France")
	us, _ := lookup.FindCountry("United States")

	t.Run("State Under Another Country", func(t *testing.T) {
		_, ok := lookup.FindState(france, "California")
		assert.False(t, ok, "California is not a French region")

		state, ok := lookup.FindState(us, "california")
		require.True(t, ok)
		assert.Equal(t, "California", state.Name)
	})

	t.Run("Nil Country", func(t *testing.T) {
		_, ok := lookup.FindState(nil, "California")
		assert.False(t, ok)
	})
}

func TestCascadingOptions(t *testing.T) {
	lookup := testLookup()
	us, _ := lookup.FindCountry("United States")

	t.Run("States Sorted", func(t *testing.T) {
		assert.Equal(t, []string{"California", "Texas"}, lookup.StatesOf(us))
	})

	t.Run("Cities Sorted", func(t *testing.T) {
		texas, _ := lookup.FindState(us, "Texas")
		assert.Equal(t, []string{"Austin", "Houston"}, lookup.CitiesOf(texas))
	})

	t.Run("Country Without States", func(t *testing.T) {
		monaco, ok := lookup.FindCountry("Monaco")
		require.True(t, ok)
		assert.Empty(t, lookup.StatesOf(monaco))
		assert.NotNil(t, lookup.StatesOf(monaco), "an empty list is returned, not nil")
	})

	t.Run("Missing Parent", func(t *testing.T) {
		assert.Empty(t, lookup.StatesOf(nil))
		assert.Empty(t, lookup.CitiesOf(nil))
	})

	t.Run("Accented Names Sort Alphabetically", func(t *testing.T) {
		france, _ := lookup.FindCountry("France")
		assert.Equal(t, []string{"Île-de-France", "Occitanie"}, lookup.StatesOf(france))
	})

	t.Run("Returned Slices Are Copies", func(t *testing.T) {
		names := lookup.CountryNames()
		names[0] = "Changed"
		assert.Equal(t, []string{"France", "Monaco", "United States"}, lookup.CountryNames())
	})
}

func TestResolve(t *testing.T) {
	lookup := testLookup()

	t.Run("Full Match", func(t *testing.T) {
		selection := lookup.Resolve("france", "île-de-france", "PARIS")
		require.NotNil(t, selection.City)
		assert.Equal(t, "France", selection.Country.Name)
		assert.Equal(t, "Île-de-France", selection.State.Name)
		assert.Equal(t, "Paris", selection.City.Name)
	})

	t.Run("City Under Wrong State", func(t *testing.T) {
		selection := lookup.Resolve("France", "Occitanie", "Paris")
		assert.NotNil(t, selection.State)
		assert.Nil(t, selection.City)
	})

	t.Run("Unknown Country Stops Cascade", func(t *testing.T) {
		selection := lookup.Resolve("Atlantis", "California", "Los Angeles")
		assert.Nil(t, selection.Country)
		assert.Nil(t, selection.State)
		assert.Nil(t, selection.City)
	})
}

func TestDefault(t *testing.T) {
	lookup := Default()

	pakistan, ok := lookup.FindCountry("Pakistan")
	require.True(t, ok, "embedded dataset should include Pakistan")
	punjab, ok := lookup.FindState(pakistan, "Punjab")
	require.True(t, ok)
	_, ok = lookup.FindCity(punjab, "lahore")
	assert.True(t, ok)

	assert.Same(t, lookup, Default(), "default lookup is built once")
}
