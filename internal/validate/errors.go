package validate

import (
	"fmt"

	"github.com/extlang/extc/internal/exttypes"
)

// SignatureArityError reports a declared signature whose parameter
// count disagrees with the arity of the underlying function.
type SignatureArityError struct {
	Method   string
	Expected int
	Got      int
}

func (e *SignatureArityError) Error() string {
	return fmt.Sprintf(
		"expected %d argument types in method '%s' (don't include the receiver), got %d",
		e.Expected, e.Method, e.Got)
}

// ConstructorShapeError reports a constructor declared as a class- or
// staticmethod. A constructor initializes a specific instance and must
// always be instance-bound.
type ConstructorShapeError struct {
	Class  string
	Method string
}

func (e *ConstructorShapeError) Error() string {
	return fmt.Sprintf(
		"constructor '%s' of class '%s' must not be a class- or staticmethod",
		e.Method, e.Class)
}

// TableOrderError reports a child table that does not preserve a
// parent's slot order as a leading segment. Code generation must not
// proceed: fixed offsets computed against the parent would be wrong.
type TableOrderError struct {
	Class  string
	Parent string
	Kind   exttypes.TableKind
}

func (e *TableOrderError) Error() string {
	return fmt.Sprintf(
		"%s table of class '%s' does not extend parent '%s' in order",
		e.Kind, e.Class, e.Parent)
}

// IncompatibleSlotError reports a shared slot whose type differs
// between parent and child in an invariant-incompatible way.
type IncompatibleSlotError struct {
	Class      string
	Slot       string
	Kind       exttypes.TableKind
	ChildType  exttypes.Type
	ParentType exttypes.Type
}

func (e *IncompatibleSlotError) Error() string {
	return fmt.Sprintf(
		"incompatible %s slot '%s' in class '%s': redeclared as %s, parent has %s",
		e.Kind, e.Slot, e.Class, e.ChildType, e.ParentType)
}
