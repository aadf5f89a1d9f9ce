package ast

// Node is the base interface for all AST nodes
type Node interface {
	Pos() (line, col int)
}

// Program represents a whole declaration file
type Program struct {
	Classes []*ClassDecl
}

func (p *Program) Pos() (int, int) {
	if len(p.Classes) > 0 {
		return p.Classes[0].Pos()
	}
	return 0, 0
}

// ClassDecl represents an extension-type class declaration
type ClassDecl struct {
	Name    string
	Parents []*ParentRef
	Attrs   []*AttrDecl
	Methods []*MethodDecl
	Line    int
	Column  int
}

func (c *ClassDecl) Pos() (int, int) { return c.Line, c.Column }

// ParentRef names a parent class in a class header
type ParentRef struct {
	Name   string
	Line   int
	Column int
}

func (r *ParentRef) Pos() (int, int) { return r.Line, r.Column }

// AttrDecl represents an attribute slot declaration
type AttrDecl struct {
	Name   string
	Type   *TypeRef
	Line   int
	Column int
}

func (a *AttrDecl) Pos() (int, int) { return a.Line, a.Column }

// MethodKind distinguishes how a method is bound
type MethodKind int

const (
	InstanceMethod MethodKind = iota
	StaticMethod
	ClassMethod
)

// String returns the declaration keyword for the method kind
func (k MethodKind) String() string {
	switch k {
	case StaticMethod:
		return "static"
	case ClassMethod:
		return "classmethod"
	default:
		return "instance"
	}
}

// MethodDecl represents a method declaration.
// Params is the underlying parameter list as written (receiver included);
// Signature is the optional declared signature (receiver excluded).
type MethodDecl struct {
	Name      string
	Kind      MethodKind
	Params    []*Param
	Signature *SignatureRef
	Line      int
	Column    int
}

func (m *MethodDecl) Pos() (int, int) { return m.Line, m.Column }

// Param represents an underlying method parameter
type Param struct {
	Name   string
	Line   int
	Column int
}

func (p *Param) Pos() (int, int) { return p.Line, p.Column }

// SignatureRef represents a declared signature clause: (T1, T2) -> R
type SignatureRef struct {
	Params []*TypeRef
	Return *TypeRef
	Line   int
	Column int
}

func (s *SignatureRef) Pos() (int, int) { return s.Line, s.Column }

// TypeRef represents a type reference by name
type TypeRef struct {
	Name   string
	Line   int
	Column int
}

func (t *TypeRef) Pos() (int, int) { return t.Line, t.Column }
