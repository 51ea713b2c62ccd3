package geography

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed countries.json
var embeddedCountries []byte

type City struct {
	Name string `json:"name"`
}

type State struct {
	Name   string `json:"name"`
	Cities []City `json:"cities,omitempty"`

	cityNames []string
}

type Country struct {
	Name   string  `json:"name"`
	ISO2   string  `json:"iso2,omitempty"`
	States []State `json:"states,omitempty"`

	stateNames []string
}

// Lookup answers name queries over a fixed country → state → city tree.
// It is read-only after construction and safe for concurrent use.
type Lookup struct {
	countries    []Country
	countryNames []string
}

var (
	defaultLookup     *Lookup
	onceDefaultLookup sync.Once
)

// Default returns the lookup backed by the embedded dataset.
func Default() *Lookup {
	onceDefaultLookup.Do(func() {
		lookup, err := NewLookupFromJSON(embeddedCountries)
		if err != nil {
			panic(fmt.Sprintf("geography: embedded dataset is invalid: %v", err))
		}
		defaultLookup = lookup
	})
	return defaultLookup
}

func NewLookupFromJSON(data []byte) (*Lookup, error) {
	var countries []Country
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, err
	}
	return NewLookup(countries), nil
}

// NewLookup copies countries and precomputes the sorted option lists.
func NewLookup(countries []Country) *Lookup {
	collator := collate.New(language.English)

	l := &Lookup{countries: make([]Country, len(countries))}
	for i, country := range countries {
		c := Country{Name: country.Name, ISO2: country.ISO2, States: make([]State, len(country.States))}
		for j, state := range country.States {
			s := State{Name: state.Name, Cities: append([]City(nil), state.Cities...)}
			s.cityNames = sortedNames(collator, len(s.Cities), func(k int) string { return s.Cities[k].Name })
			c.States[j] = s
		}
		c.stateNames = sortedNames(collator, len(c.States), func(k int) string { return c.States[k].Name })
		l.countries[i] = c
	}
	l.countryNames = sortedNames(collator, len(l.countries), func(k int) string { return l.countries[k].Name })
	return l
}

func sortedNames(collator *collate.Collator, n int, name func(int) string) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = name(i)
	}
	collator.SortStrings(names)
	return names
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// CountryNames returns every country name in alphabetical order.
func (l *Lookup) CountryNames() []string {
	return append([]string(nil), l.countryNames...)
}

func (l *Lookup) FindCountry(name string) (*Country, bool) {
	key := normalize(name)
	if key == "" {
		return nil, false
	}
	for i := range l.countries {
		if normalize(l.countries[i].Name) == key {
			return &l.countries[i], true
		}
	}
	return nil, false
}

// StatesOf is empty for a nil country or one without states.
func (l *Lookup) StatesOf(country *Country) []string {
	if country == nil {
		return []string{}
	}
	return append([]string{}, country.stateNames...)
}

func (l *Lookup) FindState(country *Country, name string) (*State, bool) {
	key := normalize(name)
	if country == nil || key == "" {
		return nil, false
	}
	for i := range country.States {
		if normalize(country.States[i].Name) == key {
			return &country.States[i], true
		}
	}
	return nil, false
}

func (l *Lookup) CitiesOf(state *State) []string {
	if state == nil {
		return []string{}
	}
	return append([]string{}, state.cityNames...)
}

func (l *Lookup) FindCity(state *State, name string) (*City, bool) {
	key := normalize(name)
	if state == nil || key == "" {
		return nil, false
	}
	for i := range state.Cities {
		if normalize(state.Cities[i].Name) == key {
			return &state.Cities[i], true
		}
	}
	return nil, false
}

// Selection is the result of resolving a country/state/city triple.
// Each level only resolves when its parent did.
type Selection struct {
	Country *Country
	State   *State
	City    *City
}

func (l *Lookup) Resolve(country, state, city string) Selection {
	var selection Selection
	selection.Country, _ = l.FindCountry(country)
	selection.State, _ = l.FindState(selection.Country, state)
	selection.City, _ = l.FindCity(selection.State, city)
	return selection
}
