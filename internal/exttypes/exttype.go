package exttypes

// ExtensionType is a class compiled with a fixed, non-hash-based
// in-memory layout. One instance exists per declared class; it is built
// once, validated once, then frozen for code generation.
type ExtensionType struct {
	Name       string
	Attributes *Table
	Methods    *Table
	Parents    []*ExtensionType

	// Declared holds the class's own method declarations, in source
	// order, for the per-method validators.
	Declared []*Method

	Line   int
	Column int
}

// Table returns the attribute or method table selected by kind
func (e *ExtensionType) Table(kind TableKind) *Table {
	if kind == MethodTable {
		return e.Methods
	}
	return e.Attributes
}

// Instance returns the scalar type of instances of this class
func (e *ExtensionType) Instance() Scalar {
	return Scalar{Name: e.Name}
}
