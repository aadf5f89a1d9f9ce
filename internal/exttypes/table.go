package exttypes

// TableKind distinguishes the two static-layout tables of a class
type TableKind int

const (
	AttributeTable TableKind = iota
	MethodTable
)

// String returns the human-readable table kind
func (k TableKind) String() string {
	switch k {
	case MethodTable:
		return "method"
	default:
		return "attribute"
	}
}

// Slot is one named, typed entry in a static-layout table
type Slot struct {
	Name string
	Type Type
}

// Table is an ordered sequence of named slots whose positions are fixed
// offsets. Parents holds the corresponding tables of the owning class's
// parent classes, in parent order; they are referenced for validation
// comparisons only, never mutated.
type Table struct {
	Kind    TableKind
	Owner   string // display name of the owning class, for diagnostics
	Slots   []Slot
	Parents []*Table

	byName map[string]Type
}

// NewTable creates an empty table for the named class
func NewTable(kind TableKind, owner string) *Table {
	return &Table{
		Kind:   kind,
		Owner:  owner,
		byName: make(map[string]Type),
	}
}

// Len returns the number of slots
func (t *Table) Len() int {
	return len(t.Slots)
}

// Has reports whether a slot with the given name exists
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Lookup returns the type stored under name
func (t *Table) Lookup(name string) (Type, bool) {
	typ, ok := t.byName[name]
	return typ, ok
}

// Append adds a slot at the next position.
// Returns false if the name is already taken: slot names are unique
// within one table.
func (t *Table) Append(name string, typ Type) bool {
	if t.Has(name) {
		return false
	}
	t.Slots = append(t.Slots, Slot{Name: name, Type: typ})
	t.byName[name] = typ
	return true
}

// Set replaces the type of an existing slot, keeping its position.
// Returns false if no slot with the given name exists.
func (t *Table) Set(name string, typ Type) bool {
	if !t.Has(name) {
		return false
	}
	for i := range t.Slots {
		if t.Slots[i].Name == name {
			t.Slots[i].Type = typ
			break
		}
	}
	t.byName[name] = typ
	return true
}

// Names returns the slot names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.Slots))
	for i, slot := range t.Slots {
		names[i] = slot.Name
	}
	return names
}
