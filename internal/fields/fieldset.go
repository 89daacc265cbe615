// Package fields maps per-project custom field definitions onto the ten
// generic storage columns of an inquiry. The column number (slot) is the
// only binding key between a definition and a stored value.
package fields

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/denwadesk/denwa-backend/internal/domain"
	"github.com/denwadesk/denwa-backend/pkg/logger"
)

// Kind is the declared type of a custom field.
type Kind string

// Field kinds
const (
	KindText   Kind = "Text"
	KindNumber Kind = "Number"
	KindDate   Kind = "Date"
	KindSelect Kind = "Select"
)

// ParseKind maps a stored FieldType string to a Kind.
// Unknown values degrade to Text; the type is never inferred from content.
func ParseKind(s string) Kind {
	switch s {
	case string(KindNumber):
		return KindNumber
	case string(KindDate):
		return KindDate
	case string(KindSelect):
		return KindSelect
	default:
		return KindText
	}
}

// Field is one editable custom field: definition metadata plus the current
// value, round-tripping to storage column ColumnNumber.
type Field struct {
	ColumnNumber int
	FieldName    string
	DisplayName  string
	Kind         Kind
	Required     bool
	// Options is populated for Select fields only. The leading empty
	// entry represents "no selection".
	Options []string
	Value   *string
}

// SetValue sets the field value; a blank string clears it.
func (f *Field) SetValue(v string) {
	if v == "" {
		f.Value = nil
		return
	}
	f.Value = &v
}

// IsBlank reports whether the field currently has no usable value.
func (f *Field) IsBlank() bool {
	return f.Value == nil || strings.TrimSpace(*f.Value) == ""
}

// FieldSet is the ordered collection of enabled fields for one project.
type FieldSet struct {
	Fields []*Field
}

// Build creates the editable field models for a project's enabled
// definitions, already ordered by display order. Select options are decoded
// from the stored JSON list; a malformed list degrades to no options.
func Build(defs []*domain.CustomFieldDefinition) *FieldSet {
	fs := &FieldSet{}
	for _, def := range defs {
		f := &Field{
			ColumnNumber: def.ColumnNumber,
			FieldName:    def.FieldName,
			DisplayName:  def.DisplayName,
			Kind:         ParseKind(def.FieldType),
			Required:     def.IsRequired,
		}
		if f.Kind == KindSelect {
			f.Options = decodeOptions(def)
		}
		fs.Fields = append(fs.Fields, f)
	}
	return fs
}

func decodeOptions(def *domain.CustomFieldDefinition) []string {
	if def.SelectOptions == nil || *def.SelectOptions == "" {
		return nil
	}
	var options []string
	if err := json.Unmarshal([]byte(*def.SelectOptions), &options); err != nil {
		// lenient on purpose: the field behaves as free text, but the
		// broken project configuration should not go unnoticed
		log := logger.WithProjectID(def.ProjectID)
		log.Warn().
			Str("field_name", def.FieldName).
			Err(err).
			Msg("select options could not be parsed")
		return nil
	}
	return append([]string{""}, options...)
}

// Load projects an inquiry's generic columns onto the field models,
// strictly by column number.
func (fs *FieldSet) Load(h *domain.InquiryHistory) {
	for _, f := range fs.Fields {
		f.Value = h.CustomCol(f.ColumnNumber)
	}
}

// Apply projects the field values back onto the inquiry's generic columns.
// Columns without an enabled definition are left untouched, so disabling a
// definition never erases stored values on existing rows.
func (fs *FieldSet) Apply(h *domain.InquiryHistory) {
	for _, f := range fs.Fields {
		h.SetCustomCol(f.ColumnNumber, f.Value)
	}
}

// Clear empties every field value.
func (fs *FieldSet) Clear() {
	for _, f := range fs.Fields {
		f.Value = nil
	}
}

// ByColumn returns the field bound to slot n, or nil.
func (fs *FieldSet) ByColumn(n int) *Field {
	for _, f := range fs.Fields {
		if f.ColumnNumber == n {
			return f
		}
	}
	return nil
}

// Validate checks that every required field has a non-blank value.
// The error message names the field the operator must fill in.
func (fs *FieldSet) Validate() error {
	for _, f := range fs.Fields {
		if f.Required && f.IsBlank() {
			return fmt.Errorf("「%s」を入力してください。", f.DisplayName)
		}
	}
	return nil
}
