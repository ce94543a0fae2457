package extract

import (
	"time"

	"github.com/ppiankov/lacph/internal/model"
)

// SyntheticArea is a city reported as its own health department rather than
// in the city / community table. Its area row is derived from the department
// breakdown of the case totals.
type SyntheticArea struct {
	Department string
	Area       string
	Population int
}

// Config gathers the constants the assembler depends on
type Config struct {
	Sections map[SectionTag]Section

	// RateScale is the population denominator of every rate
	RateScale      float64
	SyntheticAreas []SyntheticArea

	HospitalizedLabel string
	MissingSentinel   string
	// Correctional facility outbreaks are marked on area names starting with
	// FacilityMarkerFrom
	FacilityMarker     string
	FacilityMarkerFrom model.Date
	// LabelCorrections maps known misspellings to canonical labels
	LabelCorrections map[string]string
	// WholeDocumentDates are releases whose markup breaks the container lookup
	WholeDocumentDates []model.Date
}

// Population figures for the two cities with their own health departments
const (
	PopulationLongBeach = 462628
	PopulationPasadena  = 141029
	RateScale           = 100000
)

// DefaultConfig returns the configuration matching the published releases
func DefaultConfig() Config {
	return Config{
		Sections:  DefaultSections(),
		RateScale: RateScale,
		SyntheticAreas: []SyntheticArea{
			{Department: "Long Beach", Area: "City of Long Beach", Population: PopulationLongBeach},
			{Department: "Pasadena", Area: "City of Pasadena", Population: PopulationPasadena},
		},
		HospitalizedLabel:  "Hospitalized (Ever)",
		MissingSentinel:    "--",
		FacilityMarker:     "*",
		FacilityMarkerFrom: model.NewDate(2020, time.May, 14),
		LabelCorrections:   map[string]string{"Mmale": "Male"},
		WholeDocumentDates: []model.Date{model.NewDate(2020, time.April, 23)},
	}
}
