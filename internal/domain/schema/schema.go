// Package schema models the declarative field schema a template manifest
// attaches to each content file, and validates schema declarations
// recursively. Schemas are trees owned by their manifest; nothing here
// ever follows a back-reference, so walking always terminates.
package schema

// Kind is one of the twelve editable-data types a field may declare.
type Kind string

const (
	KindString   Kind = "string"
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindNumber   Kind = "number"
	KindBoolean  Kind = "boolean"
	KindSelect   Kind = "select"
	KindArray    Kind = "array"
	KindObject   Kind = "object"
	KindImage    Kind = "image"
	KindDate     Kind = "date"
	KindURL      Kind = "url"
	KindEmail    Kind = "email"
)

// SupportedKinds enumerates every kind the platform's form editor can
// render. Order matters only for error messages.
var SupportedKinds = []Kind{
	KindString, KindText, KindMarkdown, KindNumber, KindBoolean,
	KindSelect, KindArray, KindObject, KindImage, KindDate,
	KindURL, KindEmail,
}

func IsSupported(k Kind) bool {
	for _, s := range SupportedKinds {
		if k == s {
			return true
		}
	}
	return false
}

// Constraints holds the optional validation rules a field declares.
// Pointer types distinguish "not declared" from zero values.
type Constraints struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	MinItems  *int     `json:"minItems,omitempty"`
	MaxItems  *int     `json:"maxItems,omitempty"`
	Options   []string `json:"options,omitempty"`
	FileSize  string   `json:"fileSize,omitempty"`
	FileTypes []string `json:"fileTypes,omitempty"`
}

// Field is one node of a schema tree. Object fields carry Children,
// array fields carry exactly one Item describing the element type, and
// every other kind is a leaf.
type Field struct {
	Name        string            `json:"name"`
	Kind        Kind              `json:"kind"`
	Label       string            `json:"label,omitempty"`
	Required    bool              `json:"required,omitempty"`
	Constraints Constraints       `json:"constraints,omitempty"`
	Children    map[string]*Field `json:"children,omitempty"`
	Item        *Field            `json:"item,omitempty"`
}
