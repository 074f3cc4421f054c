// internal/core/domain/result_row.go
package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"pipedriver/internal/platform/errors"
)

// ResultRow is one record of the remote service's output. Its schema is
// open-ended: whatever keys the service returns are carried through to the
// CSV writer. Wire key order is preserved because the first row's key order
// becomes the CSV header.
type ResultRow struct {
	keys   []string
	values map[string]any
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (r *ResultRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(errors.ErrInvalidResponse, "result row is not valid JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Wrap(errors.ErrInvalidResponse, "result row is not a JSON object")
	}

	r.keys = nil
	r.values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(errors.ErrInvalidResponse, "malformed result row")
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.Wrap(errors.ErrInvalidResponse, "malformed result row key")
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(errors.ErrInvalidResponse, "malformed value for key %q", key)
		}

		if _, seen := r.values[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.values[key] = value
	}

	return nil
}

// MarshalJSON is not order-preserving; rows are only ever written as CSV.
func (r ResultRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values)
}

// Keys returns the row's keys in wire order.
func (r ResultRow) Keys() []string {
	return r.keys
}

// Has reports whether the row carries the given key.
func (r ResultRow) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Len returns the number of keys in the row.
func (r ResultRow) Len() int {
	return len(r.keys)
}

// Cell renders the value for key as a CSV cell. Missing keys and nulls are
// empty cells; non-scalar values fall back to their compact JSON encoding.
func (r ResultRow) Cell(key string) string {
	v, ok := r.values[key]
	if !ok || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
