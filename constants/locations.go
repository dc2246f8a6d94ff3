package constants

import "strings"

// Country lists the destinations offered in one country
type Country struct {
	Name         string   `json:"name"`
	Destinations []string `json:"destinations"`
}

// Continent groups countries for the cascading location filter
type Continent struct {
	Name      string    `json:"name"`
	Countries []Country `json:"countries"`
}

// Locations is the continent -> country -> destination taxonomy the
// accommodation filters are built from. Order is display order.
var Locations = []Continent{
	{
		Name: "Africa",
		Countries: []Country{
			{Name: "Kenya", Destinations: []string{"Maasai Mara", "Amboseli", "Diani Beach", "Nairobi"}},
			{Name: "Tanzania", Destinations: []string{"Serengeti", "Ngorongoro", "Zanzibar", "Kilimanjaro"}},
			{Name: "Uganda", Destinations: []string{"Bwindi", "Queen Elizabeth", "Murchison Falls"}},
			{Name: "Rwanda", Destinations: []string{"Volcanoes", "Nyungwe", "Akagera"}},
		},
	},
	{
		Name: "Asia",
		Countries: []Country{
			{Name: "Indonesia", Destinations: []string{"Bali", "Komodo", "Lombok"}},
			{Name: "Thailand", Destinations: []string{"Chiang Mai", "Phuket", "Krabi"}},
			{Name: "Sri Lanka", Destinations: []string{"Kandy", "Ella", "Yala"}},
		},
	},
	{
		Name: "South America",
		Countries: []Country{
			{Name: "Peru", Destinations: []string{"Cusco", "Sacred Valley", "Amazon"}},
			{Name: "Ecuador", Destinations: []string{"Galapagos", "Quito"}},
			{Name: "Costa Rica", Destinations: []string{"Monteverde", "Arenal", "Tortuguero"}},
		},
	},
}

// LocationMatch reports whether a record placed at continent/country/
// destination passes the given filter. Empty filter values match
// anything; comparison ignores case.
func LocationMatch(continent, country, destination, wantContinent, wantCountry, wantDestination string) bool {
	return matches(continent, wantContinent) &&
		matches(country, wantCountry) &&
		matches(destination, wantDestination)
}

func matches(value, want string) bool {
	return want == "" || strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(want))
}

// KnownLocation reports whether the combination exists in Locations.
// Empty trailing levels are allowed, so a continent on its own is valid.
func KnownLocation(continent, country, destination string) bool {
	for _, c := range Locations {
		if !strings.EqualFold(c.Name, continent) {
			continue
		}
		if country == "" {
			return true
		}
		for _, k := range c.Countries {
			if !strings.EqualFold(k.Name, country) {
				continue
			}
			if destination == "" {
				return true
			}
			for _, d := range k.Destinations {
				if strings.EqualFold(d, destination) {
					return true
				}
			}
		}
	}
	return false
}
