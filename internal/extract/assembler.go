// Package extract turns a daily press release into a normalized statistics
// record.
//
// Each section of a release is located by its bold label. Releases changed
// their markup over time, so every section carries the date its list moved
// from being the label's sibling (flat) to living inside the label's block
// (nested). The city / community table is too irregular to locate by
// position and is matched against the whole release instead.
package extract

import (
	"errors"
	"fmt"
	"math"

	"github.com/ppiankov/lacph/internal/model"
)

// ErrNoDate is returned when a release does not print its publication date
var ErrNoDate = errors.New("no release date found in document")

// DateMismatchError reports a release whose printed date differs from the
// date it was requested for
type DateMismatchError struct {
	Expected model.Date
	Found    model.Date
}

func (e *DateMismatchError) Error() string {
	return fmt.Sprintf("release date mismatch: expected %s, document is dated %s", e.Expected, e.Found)
}

// Assembler builds DailyRecords from press releases
type Assembler struct {
	cfg Config
}

// NewAssembler creates an assembler with the given configuration
func NewAssembler(cfg Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Assemble parses one release expected to be published on expected
func (a *Assembler) Assemble(raw []byte, expected model.Date) (*model.DailyRecord, error) {
	doc, err := ParseDocument(raw, a.cfg.WholeDocumentDates)
	if err != nil {
		return nil, err
	}
	if doc.Date() != expected {
		return nil, &DateMismatchError{Expected: expected, Found: doc.Date()}
	}

	return a.AssembleDocument(doc), nil
}

// AssembleDocument builds the record of an already parsed release
func (a *Assembler) AssembleDocument(doc *Document) *model.DailyRecord {
	sections := a.cfg.Sections
	date := doc.Date()

	cases := sections[SectionCases]
	totalCases, _ := HeaderNumeral(doc, cases.Header, a.cfg.MissingSentinel)
	casesByDepartment := cases.Counts(doc)

	deaths := sections[SectionDeaths]
	totalDeaths, _ := HeaderNumeral(doc, deaths.Header, a.cfg.MissingSentinel)

	var totalHospitalized *int
	if n, ok := sections[SectionHospital].Counts(doc)[a.cfg.HospitalizedLabel]; ok {
		totalHospitalized = &n
	}

	area := sections[SectionArea]
	keepMarker := !date.Before(a.cfg.FacilityMarkerFrom)
	byArea := ParseAreas(area.Text(doc), area.Entry, a.cfg.MissingSentinel, a.cfg.FacilityMarker, keepMarker)
	byArea = append(byArea, a.syntheticAreas(casesByDepartment)...)

	return &model.DailyRecord{
		Date:                  date,
		TotalCases:            totalCases,
		TotalDeaths:           totalDeaths,
		TotalHospitalizations: totalHospitalized,
		CasesByAge:            sections[SectionAge].Counts(doc),
		CasesByGender:         NormalizeLabels(sections[SectionGender].Counts(doc), a.cfg.LabelCorrections),
		CasesByRace:           sections[SectionRaceCases].Counts(doc),
		DeathsByRace:          sections[SectionRaceDeaths].Counts(doc),
		CasesByArea:           byArea,
	}
}

// syntheticAreas derives the rows of the cities missing from the area table
func (a *Assembler) syntheticAreas(byDepartment map[string]int) []model.AreaEntry {
	entries := make([]model.AreaEntry, 0, len(a.cfg.SyntheticAreas))
	for _, city := range a.cfg.SyntheticAreas {
		entry := model.AreaEntry{Area: city.Area}
		if n, ok := byDepartment[city.Department]; ok {
			rate := CaseRate(n, city.Population, a.cfg.RateScale)
			entry.Cases = &n
			entry.Rate = &rate
		}
		entries = append(entries, entry)
	}
	return entries
}

// CaseRate returns cases per scale residents rounded to two decimals
func CaseRate(cases, population int, scale float64) float64 {
	return math.Round(float64(cases)/float64(population)*scale*100) / 100
}
