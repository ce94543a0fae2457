package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/lacph/internal/model"
)

// Labels still being investigated are not a category of their own
var reUnderInvestigation = regexp.MustCompile(`(?i)^\s*under investigation`)

// parseNumeral converts a numeral that may carry thousands separators
func parseNumeral(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParsePairs collects label → count entries from section text. entry must
// capture the label in its first group and the numeral in its last.
func ParsePairs(text string, entry *regexp.Regexp) map[string]int {
	result := make(map[string]int)
	for _, m := range entry.FindAllStringSubmatch(text, -1) {
		if len(m) < 3 {
			continue
		}
		label := strings.TrimSpace(m[1])
		if reUnderInvestigation.MatchString(label) {
			continue
		}
		n, ok := parseNumeral(m[len(m)-1])
		if !ok {
			continue
		}
		result[label] = n
	}
	return result
}

// NormalizeLabels rewrites misspelled labels to their canonical form
func NormalizeLabels(counts map[string]int, corrections map[string]string) map[string]int {
	for raw, canonical := range corrections {
		n, ok := counts[raw]
		if !ok {
			continue
		}
		delete(counts, raw)
		counts[canonical] = n
	}
	return counts
}

// ParseAreas collects (area, count, rate) triples. entry captures the area,
// the count and the rate in that order. A missing-count sentinel nulls both
// count and rate. The trailing correctional-facility marker is stripped
// unless keepMarker is set.
func ParseAreas(text string, entry *regexp.Regexp, sentinel, marker string, keepMarker bool) []model.AreaEntry {
	areas := make([]model.AreaEntry, 0)
	for _, m := range entry.FindAllStringSubmatch(text, -1) {
		if len(m) < 4 {
			continue
		}
		name, cases, rate := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
		if !keepMarker {
			name = strings.TrimRight(name, marker)
		}

		area := model.AreaEntry{Area: name}
		if cases != sentinel {
			if n, ok := parseNumeral(cases); ok {
				area.Cases = &n
				if rate != sentinel {
					if r, err := strconv.ParseFloat(rate, 64); err == nil {
						area.Rate = &r
					}
				}
			}
		}
		areas = append(areas, area)
	}
	return areas
}
