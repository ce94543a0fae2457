package model

// DailyRecord is the normalized statistics of one press release
type DailyRecord struct {
	Date                  Date           `yaml:"date" json:"date"`
	TotalCases            *int           `yaml:"cases" json:"cases"`                       // nil when withheld
	TotalDeaths           *int           `yaml:"deaths" json:"deaths"`                     // nil when withheld
	TotalHospitalizations *int           `yaml:"hospitalizations" json:"hospitalizations"` // nil when withheld
	CasesByAge            map[string]int `yaml:"cases_by_age" json:"cases_by_age"`
	CasesByGender         map[string]int `yaml:"cases_by_gender" json:"cases_by_gender"`
	CasesByRace           map[string]int `yaml:"cases_by_race" json:"cases_by_race"`
	DeathsByRace          map[string]int `yaml:"deaths_by_race" json:"deaths_by_race"`
	CasesByArea           []AreaEntry    `yaml:"cases_by_area" json:"cases_by_area"`
}

// AreaEntry is one row of the city / community table
type AreaEntry struct {
	Area  string   `yaml:"area" json:"area"`
	Cases *int     `yaml:"cases" json:"cases"` // nil when the release withheld the count
	Rate  *float64 `yaml:"rate" json:"rate"`   // cases per RateScale residents
}

// RequiredRecordFields lists the top-level keys every serialized record carries
var RequiredRecordFields = []string{
	"date",
	"cases",
	"deaths",
	"hospitalizations",
	"cases_by_age",
	"cases_by_gender",
	"cases_by_race",
	"deaths_by_race",
	"cases_by_area",
}

// Area returns the entry with the given name
func (r *DailyRecord) Area(name string) (AreaEntry, bool) {
	for _, entry := range r.CasesByArea {
		if entry.Area == name {
			return entry, true
		}
	}
	return AreaEntry{}, false
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to v
func FloatPtr(v float64) *float64 {
	return &v
}
