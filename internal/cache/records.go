package cache

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ppiankov/lacph/internal/model"
	"gopkg.in/yaml.v3"
)

// SnapshotKey names the bulk snapshot entry
const SnapshotKey = "all-" + Source

// DocumentCache stores raw press releases verbatim
type DocumentCache = ReadThrough[model.Date, []byte]

// RecordCache stores one parsed record per release date
type RecordCache = ReadThrough[model.Date, *model.DailyRecord]

// SnapshotCache stores the full ordered history as one entry
type SnapshotCache = ReadThrough[string, []model.DailyRecord]

// NewDocumentCache creates the raw release layer
func NewDocumentCache(store Cache, logger *slog.Logger) *DocumentCache {
	return NewReadThrough(store, Layer[model.Date, []byte]{
		Name:   "documents",
		Key:    DateKey,
		Encode: func(b []byte) ([]byte, error) { return b, nil },
		Decode: func(b []byte) ([]byte, error) { return b, nil },
	}, logger)
}

// NewRecordCache creates the parsed record layer
func NewRecordCache(store Cache, logger *slog.Logger) *RecordCache {
	return NewReadThrough(store, Layer[model.Date, *model.DailyRecord]{
		Name:   "records",
		Key:    DateKey,
		Encode: EncodeRecord,
		Decode: DecodeRecord,
		Validate: func(date model.Date, rec *model.DailyRecord) error {
			if rec.Date != date {
				return fmt.Errorf("entry holds %s", rec.Date)
			}
			return nil
		},
	}, logger)
}

// NewSnapshotCache creates the bulk history layer. validate may reject a
// snapshot that no longer matches the set of known releases.
func NewSnapshotCache(store Cache, validate func([]model.DailyRecord) error, logger *slog.Logger) *SnapshotCache {
	layer := Layer[string, []model.DailyRecord]{
		Name:   "snapshot",
		Key:    func(k string) string { return k },
		Encode: EncodeSnapshot,
		Decode: DecodeSnapshot,
	}
	if validate != nil {
		layer.Validate = func(_ string, records []model.DailyRecord) error { return validate(records) }
	}
	return NewReadThrough(store, layer, logger)
}

// EncodeRecord serializes a record as YAML
func EncodeRecord(rec *model.DailyRecord) ([]byte, error) {
	if rec == nil {
		return nil, errors.New("nil record")
	}
	return yaml.Marshal(rec)
}

// DecodeRecord parses a YAML record, rejecting entries missing any top-level
// field
func DecodeRecord(data []byte) (*model.DailyRecord, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if err := checkShape(fields); err != nil {
		return nil, err
	}

	var rec model.DailyRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	normalize(&rec)
	return &rec, nil
}

// EncodeSnapshot serializes the ordered history as a YAML sequence
func EncodeSnapshot(records []model.DailyRecord) ([]byte, error) {
	return yaml.Marshal(records)
}

// DecodeSnapshot parses a YAML history, validating every record's shape
func DecodeSnapshot(data []byte) ([]model.DailyRecord, error) {
	var items []map[string]any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("empty snapshot")
	}
	for i, fields := range items {
		if err := checkShape(fields); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	var records []model.DailyRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	for i := range records {
		normalize(&records[i])
	}
	return records, nil
}

func checkShape(fields map[string]any) error {
	if fields == nil {
		return errors.New("record is not a mapping")
	}
	for _, key := range model.RequiredRecordFields {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("record missing field %q", key)
		}
	}
	if _, ok := fields["date"].(string); !ok {
		return errors.New("record date is not a string")
	}
	return nil
}

// normalize restores empty breakdowns that were serialized as null
func normalize(rec *model.DailyRecord) {
	for _, m := range []*map[string]int{&rec.CasesByAge, &rec.CasesByGender, &rec.CasesByRace, &rec.DeathsByRace} {
		if *m == nil {
			*m = map[string]int{}
		}
	}
	if rec.CasesByArea == nil {
		rec.CasesByArea = []model.AreaEntry{}
	}
}
