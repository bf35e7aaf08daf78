package models

import (
	"fmt"
	"math"
	"time"
)

// Record is the serialized form of an entity: a mapping from field names to
// primitive (or nested) values, exactly as stored in the backing document.
type Record map[string]any

// TimeLayout is the on-disk timestamp format. RFC 3339 with nanoseconds,
// so persisted timestamps stay human-readable and sortable.
const TimeLayout = time.RFC3339Nano

// MalformedRecordError reports a persisted record that is missing a required
// field or holds an unrecognized value. It is raised only during decoding.
type MalformedRecordError struct {
	Entity string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: field %q: %s", e.Entity, e.Field, e.Reason)
}

func recString(rec Record, entity, field string) (string, error) {
	v, ok := rec[field]
	if !ok {
		return "", &MalformedRecordError{Entity: entity, Field: field, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedRecordError{Entity: entity, Field: field, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

// recOptString tolerates an absent or null value, returning "".
func recOptString(rec Record, entity, field string) (string, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedRecordError{Entity: entity, Field: field, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

func recFloat(rec Record, entity, field string) (float64, error) {
	v, ok := rec[field]
	if !ok {
		return 0, &MalformedRecordError{Entity: entity, Field: field, Reason: "missing"}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, &MalformedRecordError{Entity: entity, Field: field, Reason: fmt.Sprintf("expected number, got %T", v)}
}

func recInt(rec Record, entity, field string) (int, error) {
	n, err := recFloat(rec, entity, field)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, &MalformedRecordError{Entity: entity, Field: field, Reason: fmt.Sprintf("expected whole number, got %v", n)}
	}
	return int(n), nil
}

func recTime(rec Record, entity, field string) (time.Time, error) {
	s, err := recString(rec, entity, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, &MalformedRecordError{Entity: entity, Field: field, Reason: fmt.Sprintf("invalid timestamp %q", s)}
	}
	return t, nil
}
