package domain

import (
	"fmt"
	"time"
)

// CustomerRecord is one row of the externally-owned customer table: an
// ordered open mapping from column name to scalar value. The schema is
// unknown at compile time; Columns preserves the result-set order.
type CustomerRecord struct {
	Columns []string
	Values  map[string]any
}

// Get returns the value of a column, nil when the column is absent or NULL.
func (r *CustomerRecord) Get(column string) any {
	if r == nil || r.Values == nil {
		return nil
	}
	return r.Values[column]
}

// GetString renders a column value as a string; absent and NULL both come
// back as ("", false).
func (r *CustomerRecord) GetString(column string) (string, bool) {
	v := r.Get(column)
	if v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return stringify(v), true
	}
}

func stringify(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006/01/02 15:04:05")
	}
	return fmt.Sprintf("%v", v)
}

// CustomerSearchResult is the allow-listed strongly-typed projection of a
// customer row used for search-result display.
type CustomerSearchResult struct {
	CustomerKey  string  `json:"customer_key"`
	CustomerName string  `json:"customer_name"`
	TelNo        *string `json:"tel_no,omitempty"`
	Email        *string `json:"email,omitempty"`
}

// Customer search match modes
const (
	MatchExact   = "exact"
	MatchPartial = "partial"
)

// CustomerSearchRequest maps configured column names to entered values.
type CustomerSearchRequest struct {
	Conditions map[string]string
}
