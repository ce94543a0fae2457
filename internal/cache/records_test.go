package cache

import (
	"errors"
	"testing"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(date model.Date) *model.DailyRecord {
	return &model.DailyRecord{
		Date:                  date,
		TotalCases:            model.IntPtr(5277),
		TotalDeaths:           model.IntPtr(117),
		TotalHospitalizations: nil,
		CasesByAge:            map[string]int{"0 to 17": 79, "18 to 40": 1971},
		CasesByGender:         map[string]int{"Male": 2529, "Female": 2432},
		CasesByRace:           map[string]int{},
		DeathsByRace:          map[string]int{},
		CasesByArea: []model.AreaEntry{
			{Area: "Alhambra", Cases: model.IntPtr(29), Rate: model.FloatPtr(33.42)},
			{Area: "Lake Los Angeles", Cases: nil, Rate: nil},
			{Area: "Castaic*", Cases: model.IntPtr(1012), Rate: model.FloatPtr(465.57)},
			{Area: "City of Long Beach", Cases: model.IntPtr(236), Rate: model.FloatPtr(51.01)},
		},
	}
}

func TestRecordCache_RoundTrip(t *testing.T) {
	date := model.NewDate(2020, 4, 4)
	rc := NewRecordCache(NewDiskCache(t.TempDir(), "yaml"), nil)

	want := sampleRecord(date)
	require.NoError(t, rc.Put(date, want))

	got, ok := rc.Get(date)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRecordCache_DateMustMatchKey(t *testing.T) {
	store := NewMemoryCache()
	rc := NewRecordCache(store, nil)

	data, err := EncodeRecord(sampleRecord(model.NewDate(2020, 4, 5)))
	require.NoError(t, err)
	require.NoError(t, store.Set(DateKey(model.NewDate(2020, 4, 4)), data))

	_, ok := rc.Get(model.NewDate(2020, 4, 4))
	assert.False(t, ok)
}

func TestDecodeRecord_RejectsMissingFields(t *testing.T) {
	_, err := DecodeRecord([]byte("date: 2020-04-04\ncases: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deaths")

	_, err = DecodeRecord([]byte("- 1\n- 2\n"))
	assert.Error(t, err)
}

func TestDecodeRecord_NullBreakdownsBecomeEmpty(t *testing.T) {
	raw := `date: "2020-04-03"
cases: 4045
deaths: 78
hospitalizations: 897
cases_by_age: null
cases_by_gender: null
cases_by_race: null
deaths_by_race: null
cases_by_area: null
`
	rec, err := DecodeRecord([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, model.NewDate(2020, 4, 3), rec.Date)
	assert.NotNil(t, rec.CasesByGender)
	assert.Empty(t, rec.CasesByGender)
	assert.NotNil(t, rec.CasesByArea)
}

func TestSnapshotCache(t *testing.T) {
	store := NewMemoryCache()
	history := []model.DailyRecord{
		*sampleRecord(model.NewDate(2020, 4, 4)),
		*sampleRecord(model.NewDate(2020, 4, 5)),
	}

	sc := NewSnapshotCache(store, nil, nil)
	require.NoError(t, sc.Put(SnapshotKey, history))

	got, ok := sc.Get(SnapshotKey)
	require.True(t, ok)
	assert.Equal(t, history, got)

	_, ok = store.Get("all-lacph")
	assert.True(t, ok)
}

func TestSnapshotCache_ValidatorRejects(t *testing.T) {
	store := NewMemoryCache()
	history := []model.DailyRecord{*sampleRecord(model.NewDate(2020, 4, 4))}

	require.NoError(t, NewSnapshotCache(store, nil, nil).Put(SnapshotKey, history))

	stale := NewSnapshotCache(store, func(records []model.DailyRecord) error {
		if len(records) != 2 {
			return errors.New("stale snapshot")
		}
		return nil
	}, nil)
	_, ok := stale.Get(SnapshotKey)
	assert.False(t, ok)
}

func TestDecodeSnapshot_RejectsMalformedItem(t *testing.T) {
	good, err := EncodeRecord(sampleRecord(model.NewDate(2020, 4, 4)))
	require.NoError(t, err)

	_, err = DecodeSnapshot([]byte("- date: \"2020-04-04\"\n"))
	assert.Error(t, err)

	_, err = DecodeSnapshot([]byte("[]"))
	assert.Error(t, err)

	_, err = DecodeRecord(good)
	assert.NoError(t, err)
}
