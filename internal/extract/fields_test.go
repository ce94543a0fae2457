package extract

import (
	"regexp"
	"testing"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs_StripsThousandsSeparators(t *testing.T) {
	entry := regexp.MustCompile(`(\d+ to \d+|over \d+)\s*--\s*(\d[\d,]*)`)
	text := "0 to 17 -- 1795\n18 to 40 --15,155\n41 to 65 --17,106\nover 65 --8376"

	got := ParsePairs(text, entry)

	assert.Equal(t, map[string]int{
		"0 to 17":  1795,
		"18 to 40": 15155,
		"41 to 65": 17106,
		"over 65":  8376,
	}, got)
}

func TestParsePairs_DropsUnderInvestigation(t *testing.T) {
	entry := regexp.MustCompile(`([A-Z][A-Za-z/ ]+[a-z])\s+(\d[\d,]*)`)

	tests := []struct {
		name string
		text string
	}{
		{"title case", "Asian 3376\nUnder Investigation 19606\nWhite 12"},
		{"lower case", "Asian 3376\nUnder investigation 19606\nWhite 12"},
		{"upper case", "Asian 3376\nUNDER INVESTIGATION 19606\nWhite 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePairs(tt.text, entry)
			assert.Equal(t, map[string]int{"Asian": 3376, "White": 12}, got)
		})
	}
}

func TestParsePairs_EmptyTextYieldsEmptyMap(t *testing.T) {
	got := ParsePairs("", regexp.MustCompile(`(\w+) (\d+)`))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeLabels(t *testing.T) {
	counts := map[string]int{"Female": 31109, "Mmale": 32202, "Other": 10}

	got := NormalizeLabels(counts, map[string]string{"Mmale": "Male"})

	assert.Equal(t, map[string]int{"Female": 31109, "Male": 32202, "Other": 10}, got)
}

func TestNormalizeLabels_NoMisspelling(t *testing.T) {
	counts := map[string]int{"Female": 1, "Male": 2}
	got := NormalizeLabels(counts, map[string]string{"Mmale": "Male"})
	assert.Equal(t, map[string]int{"Female": 1, "Male": 2}, got)
}

func TestParseAreas(t *testing.T) {
	entry := DefaultSections()[SectionArea].Entry
	text := `
City of Burbank 371 ( 346.15 )
Los Angeles - Van Nuys 629 ( 674.94 )
Unincorporated - Castaic* 1,012 ( 465.57 )
Unincorporated - Whittier Narrows -- ( -- )
Unincorporated - Lake Los Angeles -- ( 12.5 )
Unincorporated - Palmdale 4 ( -- )
`

	t.Run("marker kept", func(t *testing.T) {
		got := ParseAreas(text, entry, "--", "*", true)
		assert.Equal(t, []model.AreaEntry{
			{Area: "City of Burbank", Cases: model.IntPtr(371), Rate: model.FloatPtr(346.15)},
			{Area: "Los Angeles - Van Nuys", Cases: model.IntPtr(629), Rate: model.FloatPtr(674.94)},
			{Area: "Unincorporated - Castaic*", Cases: model.IntPtr(1012), Rate: model.FloatPtr(465.57)},
			{Area: "Unincorporated - Whittier Narrows"},
			{Area: "Unincorporated - Lake Los Angeles"},
			{Area: "Unincorporated - Palmdale", Cases: model.IntPtr(4)},
		}, got)
	})

	t.Run("marker stripped", func(t *testing.T) {
		got := ParseAreas(text, entry, "--", "*", false)
		require.Len(t, got, 6)
		assert.Equal(t, "Unincorporated - Castaic", got[2].Area)
	})
}

func TestParseAreas_MissingCountAlwaysNullsRate(t *testing.T) {
	entry := DefaultSections()[SectionArea].Entry

	for _, rate := range []string{"--", "0", "12.5", "999.99"} {
		got := ParseAreas("Unincorporated - Acton -- ( "+rate+" )", entry, "--", "*", true)
		require.Len(t, got, 1, "rate %s", rate)
		assert.Equal(t, model.AreaEntry{Area: "Unincorporated - Acton"}, got[0], "rate %s", rate)
	}
}

func TestCaseRate(t *testing.T) {
	assert.Equal(t, 46.26, CaseRate(214, PopulationLongBeach, RateScale))
	assert.Equal(t, 48.22, CaseRate(68, PopulationPasadena, RateScale))
	assert.Equal(t, 0.0, CaseRate(0, PopulationPasadena, RateScale))
}
