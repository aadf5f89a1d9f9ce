package exttypes

// ConstructorName is the name of the designated constructor method
const ConstructorName = "init"

// Method is a declared member of a class, frozen before validation.
// ParamCount is the arity of the underlying function as written,
// receiver included; Signature is the declared signature with the
// receiver excluded, or nil when it is left to inference.
type Method struct {
	Name         string
	Signature    *Signature
	IsStatic     bool
	IsClassBound bool
	ParamCount   int
	Line         int
	Column       int
}

// IsConstructor reports whether this method is the designated constructor
func (m *Method) IsConstructor() bool {
	return m.Name == ConstructorName
}

// ExpectedArgCount returns how many parameter types a declared
// signature must carry: the underlying arity minus the implicit
// receiver. Static methods have no receiver and keep the full count.
func (m *Method) ExpectedArgCount() int {
	if m.IsStatic {
		return m.ParamCount
	}
	return m.ParamCount - 1
}
