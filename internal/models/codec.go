package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list column stored as a JSON array in a single TEXT field.
// All list-valued columns (keywords, images, sources, tags, statistics) go
// through this one codec instead of per-field parse-or-default logic.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// SourceList is a list of research sources stored as a JSON array.
type SourceList []Source

// Value implements driver.Valuer
func (l SourceList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *SourceList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// scanJSON decodes a TEXT/BLOB column into dst; NULL and empty both decode
// to the zero value.
func scanJSON(src, dst interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
