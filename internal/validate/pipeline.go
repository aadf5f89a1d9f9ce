package validate

import (
	"fmt"

	"github.com/extlang/extc/internal/exttypes"
)

// Mode selects how much signature information the compiler demands.
type Mode int

const (
	// Strict requires explicit signatures and reports advisories for
	// omissions that degrade inferred typing.
	Strict Mode = iota
	// Permissive infers generic types and skips the advisory checks;
	// layout ordering is established by construction in this mode, so
	// only slot types are validated.
	Permissive
)

// String returns the mode name as used on the command line
func (m Mode) String() string {
	if m == Permissive {
		return "permissive"
	}
	return "strict"
}

// ParseMode maps a command-line mode name to a Mode
func ParseMode(name string) (Mode, error) {
	switch name {
	case "strict":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	}
	return Strict, fmt.Errorf("unknown mode %q (want 'strict' or 'permissive')", name)
}

// The pipelines are fixed, immutable configuration: ordered validator
// lists selected by compilation mode.
var (
	strictMethodPipeline = []MethodValidator{
		ArityValidator{},
		ConstructorShapeValidator{},
		ConstructorSignatureAdvisory{},
	}
	permissiveMethodPipeline = []MethodValidator{
		ArityValidator{},
		ConstructorShapeValidator{},
	}

	extendingOrderValidators = []ExtTypeValidator{
		OrderValidator{Kind: exttypes.AttributeTable},
		OrderValidator{Kind: exttypes.MethodTable},
	}
	typeValidators = []ExtTypeValidator{
		AttributeTypeValidator{},
		MethodTypeValidator{},
	}

	strictClassPipelines     = [][]ExtTypeValidator{extendingOrderValidators, typeValidators}
	permissiveClassPipelines = [][]ExtTypeValidator{typeValidators}
)

// MethodValidators returns the method pipeline for the given mode.
// Callers must not mutate the returned slice.
func MethodValidators(mode Mode) []MethodValidator {
	if mode == Permissive {
		return permissiveMethodPipeline
	}
	return strictMethodPipeline
}

// ClassValidators returns the class pipelines for the given mode, in
// run order: layout order before slot types, since the type checks
// assume inherited slots already line up.
func ClassValidators(mode Mode) [][]ExtTypeValidator {
	if mode == Permissive {
		return permissiveClassPipelines
	}
	return strictClassPipelines
}

// Method runs the mode's method pipeline over one declared method,
// stopping at the first fatal error.
func Method(mode Mode, m *exttypes.Method, ext *exttypes.ExtensionType, rep Reporter) error {
	for _, v := range MethodValidators(mode) {
		if err := v.Validate(m, ext, rep); err != nil {
			return err
		}
	}
	return nil
}

// Class runs the mode's class pipelines over one class, stopping at
// the first fatal error.
func Class(mode Mode, ext *exttypes.ExtensionType) error {
	for _, pipeline := range ClassValidators(mode) {
		for _, v := range pipeline {
			if err := v.Validate(ext); err != nil {
				return err
			}
		}
	}
	return nil
}
