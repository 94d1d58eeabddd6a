package domain

import "strings"

// Location is one statically configured town the bot reports weather for.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

// DefaultLocations returns the built-in town list. The slice is a fresh copy
// on every call so callers cannot mutate the defaults.
func DefaultLocations() []Location {
	return []Location{
		{Name: "Кёльн", Lat: 50.9375, Lon: 6.9603},
		{Name: "Линц-ам-Райн", Lat: 50.5667, Lon: 7.3167},
		{Name: "Нюмбрехт", Lat: 50.9167, Lon: 7.6333},
		{Name: "Гуммерсбах", Lat: 51.0236, Lon: 7.5628},
		{Name: "Виль", Lat: 50.9167, Lon: 7.5333},
		{Name: "Диренхаузен", Lat: 50.8833, Lon: 7.6167},
		{Name: "Вальдбрель", Lat: 50.9333, Lon: 7.7167},
	}
}

// FindByQuery matches a free-text city query against the location list,
// case-insensitively and in both substring directions ("кёл" matches "Кёльн",
// "кёльн сегодня" matches too). The first match in list order wins.
func FindByQuery(locations []Location, query string) (Location, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Location{}, false
	}
	for _, loc := range locations {
		name := strings.ToLower(loc.Name)
		if strings.Contains(name, q) || strings.Contains(q, name) {
			return loc, true
		}
	}
	return Location{}, false
}

// FindByName matches an exact display name, as carried in button payloads.
func FindByName(locations []Location, name string) (Location, bool) {
	for _, loc := range locations {
		if loc.Name == name {
			return loc, true
		}
	}
	return Location{}, false
}
