package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is an ordered sequence of card labels stored as a JSONB column. A nil
// value serializes as an empty array, never as JSON null.
type Tags []string

func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = Tags{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}
