package exttypes

import "strings"

// Type is the type stored in a static-layout table slot: either a named
// scalar type or a method signature.
type Type interface {
	String() string
	Equal(other Type) bool
}

// Scalar is a named value type (builtin or a declared class)
type Scalar struct {
	Name string
}

func (s Scalar) String() string { return s.Name }

// Equal reports exact (invariant) equality with another type
func (s Scalar) Equal(other Type) bool {
	o, ok := other.(Scalar)
	return ok && o.Name == s.Name
}

// Builtin scalar types
var (
	Int    = Scalar{Name: "Int"}
	Float  = Scalar{Name: "Float"}
	Bool   = Scalar{Name: "Bool"}
	String = Scalar{Name: "String"}
	Object = Scalar{Name: "Object"} // the universal type assumed when inferring
	Void   = Scalar{Name: "Void"}
)

// Signature is a method type: ordered parameter types plus a return
// type. For instance- and class-bound methods the first parameter is
// the implicit receiver; static signatures carry no receiver.
type Signature struct {
	Params   []Type
	Return   Type
	IsStatic bool
}

func (s *Signature) String() string {
	var sb strings.Builder
	if s.IsStatic {
		sb.WriteString("static ")
	}
	sb.WriteString("(")
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	if s.Return != nil {
		sb.WriteString(s.Return.String())
	} else {
		sb.WriteString(Void.String())
	}
	return sb.String()
}

// Equal reports full structural equality, binding kind included
func (s *Signature) Equal(other Type) bool {
	o, ok := other.(*Signature)
	if !ok {
		return false
	}
	if s.IsStatic != o.IsStatic || len(s.Params) != len(o.Params) {
		return false
	}
	for i, p := range s.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	if s.Return == nil || o.Return == nil {
		return s.Return == o.Return
	}
	return s.Return.Equal(o.Return)
}

// DropSelf returns the signature without the implicit receiver
// parameter. Static signatures have no receiver and are returned
// unchanged.
func (s *Signature) DropSelf() *Signature {
	if s.IsStatic || len(s.Params) == 0 {
		return s
	}
	return &Signature{
		Params:   s.Params[1:],
		Return:   s.Return,
		IsStatic: s.IsStatic,
	}
}
