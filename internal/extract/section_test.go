package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return raw
}

func parseFixture(t *testing.T, name string) *Document {
	t.Helper()
	doc, err := ParseDocument(loadFixture(t, name), nil)
	require.NoError(t, err)
	return doc
}

func TestParseDocument_Date(t *testing.T) {
	doc := parseFixture(t, "release-2020-04-03.html")
	// The date inside <script> is ignored.
	assert.Equal(t, model.NewDate(2020, time.April, 3), doc.Date())
}

func TestParseDocument_NoDate(t *testing.T) {
	_, err := ParseDocument([]byte("<html><body><p>No date here</p></body></html>"), nil)
	assert.ErrorIs(t, err, ErrNoDate)
}

func TestParseDocument_SkipsDateShapedNonDates(t *testing.T) {
	doc, err := ParseDocument([]byte("<p>Cases 12, 2020</p><p>June 09, 2020</p>"), nil)
	require.NoError(t, err)
	assert.Equal(t, model.NewDate(2020, time.June, 9), doc.Date())
}

func TestParseDocument_Container(t *testing.T) {
	raw := []byte(`<html><body>
<div class="navbar"><b>Deaths 1</b></div>
<div class="container p-4"><p>April 23, 2020</p><b>Deaths 2</b></div>
</body></html>`)
	header := regexp.MustCompile(`Deaths\s+([\d,]+)`)

	doc, err := ParseDocument(raw, nil)
	require.NoError(t, err)
	got, found := HeaderNumeral(doc, header, "--")
	require.True(t, found)
	assert.Equal(t, 2, *got)

	// Releases with broken markup are read as a whole.
	doc, err = ParseDocument(raw, []model.Date{model.NewDate(2020, time.April, 23)})
	require.NoError(t, err)
	got, found = HeaderNumeral(doc, header, "--")
	require.True(t, found)
	assert.Equal(t, 1, *got)
}

func TestParseDocument_MissingContainerUsesWholeDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`<p>May 01, 2020</p><div><b>Deaths 7</b></div>`), nil)
	require.NoError(t, err)
	got, found := HeaderNumeral(doc, regexp.MustCompile(`Deaths\s+([\d,]+)`), "--")
	require.True(t, found)
	assert.Equal(t, 7, *got)
}

func TestExtract_LayoutModes(t *testing.T) {
	age := DefaultSections()[SectionAge]

	flat := parseFixture(t, "release-2020-04-03.html")
	nested := parseFixture(t, "release-2020-04-04.html")

	flatText := Extract(flat, age.Header, Flat)
	assert.Contains(t, flatText, "0 to 17 -- 71")
	assert.Len(t, ParsePairs(flatText, age.Entry), 4)

	nestedText := Extract(nested, age.Header, Nested)
	assert.Contains(t, nestedText, "0 to 17 -- 90")
	assert.Len(t, ParsePairs(nestedText, age.Entry), 4)

	// A list hoisted out of its label's paragraph is not a sibling of the label.
	hoisted := parseFixture(t, "release-2020-05-14.html")
	raceDeaths := DefaultSections()[SectionRaceDeaths]
	assert.Empty(t, Extract(hoisted, raceDeaths.Header, Flat))
	assert.NotEmpty(t, Extract(hoisted, raceDeaths.Header, Nested))
}

func TestExtract_FlatSkipsLineBreak(t *testing.T) {
	raw := []byte(`<div class="container p-4"><p>April 03, 2020</p>
<b>Age Group (Los Angeles County Cases Only-excl LB and Pas)</b><br>
<ul><li>0 to 17 -- 71</li><li>18 to 40 -- 1,448</li><li>41 to 65 -- 1,526</li><li>over 65 -- 701</li></ul>
<b>Hospitalization</b><br>
<ul><li>Hospitalized (Ever) 897</li></ul>
</div>`)
	doc, err := ParseDocument(raw, nil)
	require.NoError(t, err)

	age := DefaultSections()[SectionAge]
	assert.Len(t, ParsePairs(Extract(doc, age.Header, Flat), age.Entry), 4)

	hospital := DefaultSections()[SectionHospital]
	assert.Equal(t, map[string]int{"Hospitalized (Ever)": 897},
		ParsePairs(Extract(doc, hospital.Header, Flat), hospital.Entry))
}

func TestExtract_NestedLabelsShareBlock(t *testing.T) {
	raw := []byte(`<div class="container p-4"><p>April 10, 2020</p>
<div><b>Deaths 10</b><ul><li>Long Beach 4</li></ul><b>Hospitalization</b><br><ul><li>Hospitalized (Ever) 55</li></ul></div>
</div>`)
	doc, err := ParseDocument(raw, nil)
	require.NoError(t, err)

	hospital := DefaultSections()[SectionHospital]
	text := Extract(doc, hospital.Header, Nested)
	assert.Contains(t, text, "Hospitalized (Ever) 55")
	assert.NotContains(t, text, "Long Beach")

	deaths := DefaultSections()[SectionDeaths]
	assert.Equal(t, map[string]int{"Long Beach": 4},
		ParsePairs(Extract(doc, deaths.Header, Nested), deaths.Entry))
}

func TestExtract_NestedLabelWithoutListStopsAtNextLabel(t *testing.T) {
	raw := []byte(`<div class="container p-4"><p>April 10, 2020</p>
<div><b>Hospitalization</b><b>Deaths 10</b><ul><li>Long Beach 4</li></ul></div>
</div>`)
	doc, err := ParseDocument(raw, nil)
	require.NoError(t, err)

	hospital := DefaultSections()[SectionHospital]
	assert.Empty(t, Extract(doc, hospital.Header, Nested))
}

func TestExtract_ListHoistedOutOfParagraph(t *testing.T) {
	doc := parseFixture(t, "release-2020-05-14.html")
	section := DefaultSections()[SectionRaceDeaths]

	text := Extract(doc, section.Header, Nested)
	assert.Contains(t, text, "Hispanic/Latino 573")
}

func TestExtract_NestedStopsAtNextLabel(t *testing.T) {
	raw := []byte(`<div class="container p-4"><p>May 01, 2020</p>
<p><b>Gender (Los Angeles County Cases Only-excl LB and Pas)</b></p>
<p><b>Other header</b></p>
<ul><li>Female 10</li></ul>
</div>`)
	doc, err := ParseDocument(raw, nil)
	require.NoError(t, err)

	gender := DefaultSections()[SectionGender]
	assert.Empty(t, Extract(doc, gender.Header, Nested))
}

func TestExtract_NoMatch(t *testing.T) {
	doc := parseFixture(t, "release-2020-04-03.html")
	gender := DefaultSections()[SectionGender]

	assert.Empty(t, Extract(doc, gender.Header, Nested))
	assert.Empty(t, Extract(doc, gender.Header, Flat))
}

func TestExtract_LabelMustMatchAtStart(t *testing.T) {
	doc := parseFixture(t, "release-2020-05-14.html")
	raceCases := DefaultSections()[SectionRaceCases]

	// "Deaths Race/Ethnicity ..." must not be taken for the case table.
	text := Extract(doc, raceCases.Header, Nested)
	assert.Contains(t, text, "Hispanic/Latino 9,862")
}

func TestText_BreaksBlocks(t *testing.T) {
	doc, err := ParseDocument([]byte(`<p>May 01, 2020</p><ul><li>Asian 1</li><li>Black 2</li></ul>`), nil)
	require.NoError(t, err)

	text := WholeText(doc)
	assert.True(t, strings.Contains(text, "Asian 1\n"), "got %q", text)
	assert.Equal(t, map[string]int{"Asian": 1, "Black": 2},
		ParsePairs(Text(doc.Body().Find("ul")), DefaultSections()[SectionRaceCases].Entry))
}

func TestSection_Layout(t *testing.T) {
	sections := DefaultSections()
	cutover := model.NewDate(2020, time.April, 4)

	for _, tag := range []SectionTag{SectionAge, SectionHospital} {
		s := sections[tag]
		assert.Equal(t, Flat, s.Layout(cutover.AddDays(-1)), tag)
		assert.Equal(t, Nested, s.Layout(cutover), tag)
		assert.Equal(t, Nested, s.Layout(cutover.AddDays(30)), tag)
	}

	for _, tag := range []SectionTag{SectionCases, SectionDeaths, SectionGender, SectionRaceCases, SectionRaceDeaths} {
		assert.Equal(t, Nested, sections[tag].Layout(model.NewDate(2020, time.March, 30)), tag)
	}
}

func TestSection_Available(t *testing.T) {
	gender := DefaultSections()[SectionGender]
	assert.False(t, gender.Available(model.NewDate(2020, time.April, 3)))
	assert.True(t, gender.Available(model.NewDate(2020, time.April, 4)))

	age := DefaultSections()[SectionAge]
	assert.True(t, age.Available(model.NewDate(2020, time.March, 30)))
}
