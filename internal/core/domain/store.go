package domain

// SchemaKey is the reserved top-level key carrying display metadata.
// It lives inside the same persisted document as the data modules but
// is excluded from data iteration.
const SchemaKey = "_schema"

// ExportFilename is the suggested filename for exported stores.
const ExportFilename = "datastore.json"

// Labels maps the logical roles of the store onto human-readable
// display strings. Consumers use them for UI labelling only.
type Labels struct {
	Module string
	Key    string
	Value  string
}

// Schema is the optional display metadata stored under SchemaKey.
// The store passes it through without interpreting it.
type Schema struct {
	Labels Labels
}

// DefaultSchema returns the labels synthesized on export when the
// store carries no schema of its own.
func DefaultSchema() Schema {
	return Schema{Labels: Labels{
		Module: "Module",
		Key:    "Key",
		Value:  "Item",
	}}
}

// Store is the full persisted structure: named modules of key-value
// pairs plus the optional schema entry. Module and key order is
// preserved across serialization.
type Store struct {
	root *Object
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{root: NewObject()}
}

// ParseStore builds a store from a serialized JSON document.
// The root must be a plain object; see ParseObject for the error
// contract.
func ParseStore(data []byte) (*Store, error) {
	root, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Encode serializes the store compactly for persistence.
func (s *Store) Encode() ([]byte, error) {
	return s.root.MarshalJSON()
}

// Modules returns the data module names in stored order, excluding
// the schema entry.
func (s *Store) Modules() []string {
	names := make([]string, 0, s.root.Len())
	for _, k := range s.root.Keys() {
		if k == SchemaKey {
			continue
		}
		names = append(names, k)
	}
	return names
}

// Module returns the named module mapping. ok is false when the module
// is absent or (via an imported document) not a mapping.
func (s *Store) Module(name string) (*Object, bool) {
	v, ok := s.root.Get(name)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Object)
	return obj, ok
}

// Get returns the value at (module, key), or ok=false if either is
// absent.
func (s *Store) Get(module, key string) (Value, bool) {
	mod, ok := s.Module(module)
	if !ok {
		return nil, false
	}
	return mod.Get(key)
}

// Set writes value at (module, key), creating the module if needed and
// overwriting any prior value. A module slot holding a non-mapping
// (possible only through import) is replaced by a fresh mapping; the
// write path only ever produces modules that are mappings.
func (s *Store) Set(module, key string, value Value) {
	mod, ok := s.Module(module)
	if !ok {
		mod = NewObject()
		s.root.Set(module, mod)
	}
	mod.Set(key, value)
}

// Delete removes key from module if present. A module left with no
// keys is removed entirely; empty modules never persist.
func (s *Store) Delete(module, key string) {
	mod, ok := s.Module(module)
	if !ok {
		return
	}
	mod.Delete(key)
	if mod.Len() == 0 {
		s.root.Delete(module)
	}
}

// Schema returns the stored schema, or ok=false when none is present
// or the entry does not have the expected shape.
func (s *Store) Schema() (Schema, bool) {
	v, ok := s.root.Get(SchemaKey)
	if !ok {
		return Schema{}, false
	}
	return schemaFromValue(v)
}

// SetSchema stores schema under the reserved key.
func (s *Store) SetSchema(schema Schema) {
	s.root.Set(SchemaKey, schemaValue(schema))
}

// Raw returns the raw top-level value for name, including SchemaKey
// and module slots that are not mappings. Used when re-serializing
// imported content verbatim.
func (s *Store) Raw(name string) (Value, bool) {
	return s.root.Get(name)
}

// SetRaw stores a top-level value verbatim, bypassing the mapping
// checks of Set. Used when re-serializing imported content.
func (s *Store) SetRaw(name string, value Value) {
	s.root.Set(name, value)
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	return &Store{root: s.root.Clone()}
}

// KeyCount returns the total number of keys across data modules.
func (s *Store) KeyCount() int {
	total := 0
	for _, name := range s.Modules() {
		if mod, ok := s.Module(name); ok {
			total += mod.Len()
		}
	}
	return total
}

// schemaValue converts a schema into its stored representation.
func schemaValue(schema Schema) Value {
	labels := NewObject()
	labels.Set("module", schema.Labels.Module)
	labels.Set("key", schema.Labels.Key)
	labels.Set("value", schema.Labels.Value)

	obj := NewObject()
	obj.Set("labels", labels)
	return obj
}

// schemaFromValue reads a schema out of its stored representation.
func schemaFromValue(v Value) (Schema, bool) {
	obj, ok := v.(*Object)
	if !ok {
		return Schema{}, false
	}
	labelsVal, ok := obj.Get("labels")
	if !ok {
		return Schema{}, false
	}
	labels, ok := labelsVal.(*Object)
	if !ok {
		return Schema{}, false
	}

	var schema Schema
	if s, ok := labels.Get("module"); ok {
		schema.Labels.Module, _ = s.(string)
	}
	if s, ok := labels.Get("key"); ok {
		schema.Labels.Key, _ = s.(string)
	}
	if s, ok := labels.Get("value"); ok {
		schema.Labels.Value, _ = s.(string)
	}
	return schema, true
}
