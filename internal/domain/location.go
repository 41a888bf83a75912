package domain

// Level is the granularity of a geographic lookup.
type Level string

const (
	LevelCountries Level = "countries"
	LevelStates    Level = "states"
	LevelCities    Level = "cities"
)
