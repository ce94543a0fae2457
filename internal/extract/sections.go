package extract

import (
	"regexp"
	"time"

	"github.com/ppiankov/lacph/internal/model"
)

// SectionTag names a logical section of a release
type SectionTag string

// Sections read from every release; the tag values are the record field names.
const (
	SectionCases      SectionTag = "cases"
	SectionDeaths     SectionTag = "deaths"
	SectionHospital   SectionTag = "hospitalizations"
	SectionAge        SectionTag = "cases_by_age"
	SectionGender     SectionTag = "cases_by_gender"
	SectionRaceCases  SectionTag = "cases_by_race"
	SectionRaceDeaths SectionTag = "deaths_by_race"
	SectionArea       SectionTag = "cases_by_area"
)

// Section describes how to find and read one section of a release
type Section struct {
	Tag SectionTag
	// Header matches the start of the section's bold label
	Header *regexp.Regexp
	// Entry captures one label/numeral pair (or area triple) of the section
	Entry *regexp.Regexp
	// NestedFrom is the first release using the nested layout; zero means
	// the section was always nested
	NestedFrom model.Date
	// AvailableFrom is the first release carrying the section
	AvailableFrom model.Date
	// WholeDocument sections are matched against the full release text
	WholeDocument bool
}

// Layout returns the layout used by the release published on date
func (s Section) Layout(date model.Date) LayoutMode {
	if s.NestedFrom.IsZero() || !date.Before(s.NestedFrom) {
		return Nested
	}
	return Flat
}

// Available reports whether releases published on date carry the section
func (s Section) Available(date model.Date) bool {
	return s.AvailableFrom.IsZero() || !date.Before(s.AvailableFrom)
}

// Text isolates the section's text within doc
func (s Section) Text(doc *Document) string {
	if !s.Available(doc.Date()) {
		return ""
	}
	if s.WholeDocument {
		return WholeText(doc)
	}
	return Extract(doc, s.Header, s.Layout(doc.Date()))
}

// Counts parses the section's label → count pairs
func (s Section) Counts(doc *Document) map[string]int {
	return ParsePairs(s.Text(doc), s.Entry)
}

const lacOnly = `\(Los Angeles County Cases Only-excl LB and Pas\)`

var (
	entryByDepartment = regexp.MustCompile(`(Los Angeles County \(excl\. LB and Pas\)|Long Beach|Pasadena)[\s-]*(\d[\d,]*)`)
	entryRace         = regexp.MustCompile(`([A-Z][A-Za-z/ ]+[a-z])\s+(\d[\d,]*)`)
)

// DefaultSections returns the section table covering every known release format
func DefaultSections() map[SectionTag]Section {
	formatNested := model.NewDate(2020, time.April, 4)

	return map[SectionTag]Section{
		SectionCases: {
			Tag:    SectionCases,
			Header: regexp.MustCompile(`Laboratory Confirmed Cases -- ([\d,]+|--) Total Cases`),
			Entry:  entryByDepartment,
		},
		SectionDeaths: {
			Tag:    SectionDeaths,
			Header: regexp.MustCompile(`Deaths\s+([\d,]+|--)`),
			Entry:  entryByDepartment,
		},
		SectionHospital: {
			Tag:        SectionHospital,
			Header:     regexp.MustCompile(`Hospitalization`),
			Entry:      regexp.MustCompile(`([A-Z][A-Za-z() ]+[)a-z])\s*(\d[\d,]*)`),
			NestedFrom: formatNested,
		},
		SectionAge: {
			Tag:        SectionAge,
			Header:     regexp.MustCompile(`Age Group ` + lacOnly),
			Entry:      regexp.MustCompile(`(\d+ to \d+|over \d+)\s*--\s*(\d[\d,]*)`),
			NestedFrom: formatNested,
		},
		SectionGender: {
			Tag:           SectionGender,
			Header:        regexp.MustCompile(`Gender ` + lacOnly),
			Entry:         regexp.MustCompile(`(Mm*ale|Female|Other)\s+(\d[\d,]*)`),
			AvailableFrom: formatNested,
		},
		SectionRaceCases: {
			Tag:           SectionRaceCases,
			Header:        regexp.MustCompile(`Race/Ethnicity ` + lacOnly),
			Entry:         entryRace,
			AvailableFrom: model.NewDate(2020, time.April, 7),
		},
		SectionRaceDeaths: {
			Tag:           SectionRaceDeaths,
			Header:        regexp.MustCompile(`Deaths Race/Ethnicity ` + lacOnly),
			Entry:         entryRace,
			AvailableFrom: model.NewDate(2020, time.April, 7),
		},
		SectionArea: {
			Tag:           SectionArea,
			Header:        regexp.MustCompile(`CITY / COMMUNITY\** \(Rate\**\)`),
			Entry:         regexp.MustCompile(`([A-Z][A-Za-z/\-\. ]+[a-z]\**)\s+([0-9][0-9,]*|--)\s+\(\s*(--|[0-9]+(?:\.[0-9]+)?)\s*\)`),
			WholeDocument: true,
		},
	}
}
