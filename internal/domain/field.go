package domain

// Field is one carrier-facing field value. The carrier's serialization
// distinguishes a field that was never supplied from one supplied empty,
// so absence is carried as an explicit state rather than "" or nil.
type Field struct {
	Value   string
	Present bool
}

// Absent marks a field as intentionally not supplied. Absent fields are
// omitted from the outbound carrier call entirely.
var Absent = Field{}

// Val wraps a concrete value, including the empty string.
func Val(s string) Field {
	return Field{Value: s, Present: true}
}

// FieldSet is an ordered collection of named carrier fields. Insertion
// order is preserved so serialized output follows the carrier's schema
// order deterministically.
type FieldSet struct {
	names []string
	vals  map[string]Field
}

func NewFieldSet() *FieldSet {
	return &FieldSet{vals: map[string]Field{}}
}

// Put stores a field under the given carrier name. Re-putting an existing
// name overwrites the value and keeps the original position.
func (fs *FieldSet) Put(name string, f Field) {
	if _, ok := fs.vals[name]; !ok {
		fs.names = append(fs.names, name)
	}
	fs.vals[name] = f
}

// Get returns the field stored under name. Unknown names read as Absent.
func (fs *FieldSet) Get(name string) Field {
	return fs.vals[name]
}

// Names returns the field names in insertion order.
func (fs *FieldSet) Names() []string {
	return fs.names
}

// Len returns the number of stored fields.
func (fs *FieldSet) Len() int {
	return len(fs.names)
}
