package validate

import "github.com/extlang/extc/internal/exttypes"

// Reporter receives non-fatal advisories raised during validation.
// *diagnostic.Diagnostics satisfies it.
type Reporter interface {
	Warningf(line, col int, format string, args ...interface{})
}

// MethodValidator checks one declared method against its owning class.
// Validators are stateless: they read, then either return nil, return a
// fatal error, or report an advisory through rep.
type MethodValidator interface {
	Validate(m *exttypes.Method, ext *exttypes.ExtensionType, rep Reporter) error
}

// ArityValidator checks a declared signature against the number of
// parameters the underlying function expects. Methods without a
// declared signature pass trivially; their arity is inferred later.
type ArityValidator struct{}

func (ArityValidator) Validate(m *exttypes.Method, ext *exttypes.ExtensionType, rep Reporter) error {
	if m.Signature == nil {
		return nil
	}
	expected := m.ExpectedArgCount()
	if len(m.Signature.Params) != expected {
		return &SignatureArityError{
			Method:   m.Name,
			Expected: expected,
			Got:      len(m.Signature.Params),
		}
	}
	return nil
}

// ConstructorShapeValidator rejects constructors declared as class- or
// staticmethods.
type ConstructorShapeValidator struct{}

func (ConstructorShapeValidator) Validate(m *exttypes.Method, ext *exttypes.ExtensionType, rep Reporter) error {
	if m.IsConstructor() && (m.IsClassBound || m.IsStatic) {
		return &ConstructorShapeError{Class: ext.Name, Method: m.Name}
	}
	return nil
}

// ConstructorSignatureAdvisory warns when a constructor omits its
// signature but takes parameters beyond the receiver: those parameters
// will be assumed to have type Object. Never fatal.
type ConstructorSignatureAdvisory struct{}

func (ConstructorSignatureAdvisory) Validate(m *exttypes.Method, ext *exttypes.ExtensionType, rep Reporter) error {
	if !m.IsConstructor() || m.Signature != nil {
		return nil
	}
	if m.ParamCount > 1 {
		rep.Warningf(m.Line, m.Column,
			"constructor for class '%s' has no signature, assuming arguments have type '%s'",
			ext.Name, exttypes.Object)
	}
	return nil
}
