package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Document is an opaque JSON object stored in a document column.
// It is serialized exactly once at the store boundary; callers always
// see the decoded structure, never the raw JSON text.
type Document map[string]any

// Value implements driver.Valuer. A nil document maps to SQL NULL.
func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner, accepting NULL, TEXT and BLOB columns.
func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return d.decode(v)
	case string:
		return d.decode([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into Document", src)
	}
}

func (d *Document) decode(data []byte) error {
	if len(data) == 0 {
		*d = nil
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	*d = out
	return nil
}
