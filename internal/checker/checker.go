package checker

import (
	"github.com/extlang/extc/internal/ast"
	"github.com/extlang/extc/internal/diagnostic"
	"github.com/extlang/extc/internal/exttypes"
	"github.com/extlang/extc/internal/validate"
)

// builtinTypes are the scalar types available without declaration
var builtinTypes = map[string]exttypes.Scalar{
	"Int":    exttypes.Int,
	"Float":  exttypes.Float,
	"Bool":   exttypes.Bool,
	"String": exttypes.String,
	"Object": exttypes.Object,
	"Void":   exttypes.Void,
}

// Checker resolves class declarations into extension types and runs
// the validation pipelines over them
type Checker struct {
	diags   *diagnostic.Diagnostics
	mode    validate.Mode
	classes map[string]*exttypes.ExtensionType
	order   []*exttypes.ExtensionType
}

// Result holds the resolved classes plus all diagnostics
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Classes     []*exttypes.ExtensionType // declaration order
}

// Check resolves and validates a program, returning diagnostics only
func Check(prog *ast.Program, mode validate.Mode) *diagnostic.Diagnostics {
	return CheckWithResult(prog, mode).Diagnostics
}

// CheckWithResult resolves every class declaration, builds its layout
// tables, and runs the mode's validator pipelines. Classes that fail
// validation stay in the result; their diagnostics mark them unusable
// for code generation.
func CheckWithResult(prog *ast.Program, mode validate.Mode) *Result {
	c := &Checker{
		diags:   diagnostic.New(),
		mode:    mode,
		classes: make(map[string]*exttypes.ExtensionType),
	}

	for _, decl := range prog.Classes {
		c.resolveClass(decl)
	}
	for _, ext := range c.order {
		c.validateClass(ext)
	}

	return &Result{Diagnostics: c.diags, Classes: c.order}
}

// resolveClass builds one ExtensionType from its declaration
func (c *Checker) resolveClass(decl *ast.ClassDecl) {
	if _, exists := c.classes[decl.Name]; exists {
		c.diags.Errorf(decl.Line, decl.Column, "class '%s' already declared", decl.Name)
		return
	}
	if _, isBuiltin := builtinTypes[decl.Name]; isBuiltin {
		c.diags.Errorf(decl.Line, decl.Column, "class '%s' shadows a builtin type", decl.Name)
		return
	}

	ext := &exttypes.ExtensionType{
		Name:   decl.Name,
		Line:   decl.Line,
		Column: decl.Column,
	}

	for _, ref := range decl.Parents {
		parent, ok := c.classes[ref.Name]
		if !ok {
			c.diags.Errorf(ref.Line, ref.Column,
				"unknown parent class '%s' (parents must be declared first)", ref.Name)
			continue
		}
		ext.Parents = append(ext.Parents, parent)
	}

	c.buildAttributeTable(ext, decl)
	c.resolveMethods(ext, decl)
	c.buildMethodTable(ext)

	c.classes[decl.Name] = ext
	c.order = append(c.order, ext)
}

// resolveType maps a type reference to a scalar type. Unknown names are
// reported and recovered as Object so checking can continue.
func (c *Checker) resolveType(ref *ast.TypeRef) exttypes.Type {
	if ref == nil {
		return exttypes.Object
	}
	if s, ok := builtinTypes[ref.Name]; ok {
		return s
	}
	if _, ok := c.classes[ref.Name]; ok {
		return exttypes.Scalar{Name: ref.Name}
	}
	c.diags.Errorf(ref.Line, ref.Column, "unknown type '%s'", ref.Name)
	return exttypes.Object
}

// buildAttributeTable lays out the attribute slots: every parent's
// slots first, in parent order, then the class's newly declared
// attributes. A redeclared inherited attribute keeps its inherited
// position; whether its type may change is the type validators' call.
func (c *Checker) buildAttributeTable(ext *exttypes.ExtensionType, decl *ast.ClassDecl) {
	table := exttypes.NewTable(exttypes.AttributeTable, ext.Name)

	for _, parent := range ext.Parents {
		table.Parents = append(table.Parents, parent.Attributes)
		for _, slot := range parent.Attributes.Slots {
			table.Append(slot.Name, slot.Type)
		}
	}

	declared := make(map[string]bool)
	for _, attr := range decl.Attrs {
		if declared[attr.Name] {
			c.diags.Errorf(attr.Line, attr.Column,
				"attribute '%s' declared twice in class '%s'", attr.Name, ext.Name)
			continue
		}
		declared[attr.Name] = true

		typ := c.resolveType(attr.Type)
		if !table.Append(attr.Name, typ) {
			table.Set(attr.Name, typ)
		}
	}

	ext.Attributes = table
}

// resolveMethods freezes the class's own method declarations
func (c *Checker) resolveMethods(ext *exttypes.ExtensionType, decl *ast.ClassDecl) {
	declared := make(map[string]bool)
	for _, m := range decl.Methods {
		if declared[m.Name] {
			c.diags.Errorf(m.Line, m.Column,
				"method '%s' declared twice in class '%s'", m.Name, ext.Name)
			continue
		}
		declared[m.Name] = true

		method := &exttypes.Method{
			Name:         m.Name,
			IsStatic:     m.Kind == ast.StaticMethod,
			IsClassBound: m.Kind == ast.ClassMethod,
			ParamCount:   len(m.Params),
			Line:         m.Line,
			Column:       m.Column,
		}

		c.checkReceiver(m, ext)

		if m.Signature != nil {
			sig := &exttypes.Signature{
				Return:   c.resolveType(m.Signature.Return),
				IsStatic: method.IsStatic,
			}
			for _, param := range m.Signature.Params {
				sig.Params = append(sig.Params, c.resolveType(param))
			}
			method.Signature = sig
		}

		ext.Declared = append(ext.Declared, method)
	}
}

// checkReceiver enforces the receiver shape of each binding kind
func (c *Checker) checkReceiver(m *ast.MethodDecl, ext *exttypes.ExtensionType) {
	switch m.Kind {
	case ast.InstanceMethod:
		if len(m.Params) == 0 {
			c.diags.Errorf(m.Line, m.Column,
				"instance method '%s' of class '%s' must declare a receiver parameter",
				m.Name, ext.Name)
		} else if m.Params[0].Name != "self" {
			c.diags.Warningf(m.Params[0].Line, m.Params[0].Column,
				"receiver of instance method '%s' is conventionally named 'self'", m.Name)
		}
	case ast.ClassMethod:
		if len(m.Params) == 0 {
			c.diags.Errorf(m.Line, m.Column,
				"classmethod '%s' of class '%s' must declare a receiver parameter",
				m.Name, ext.Name)
		} else if m.Params[0].Name != "cls" {
			c.diags.Warningf(m.Params[0].Line, m.Params[0].Column,
				"receiver of classmethod '%s' is conventionally named 'cls'", m.Name)
		}
	case ast.StaticMethod:
		if len(m.Params) > 0 && (m.Params[0].Name == "self" || m.Params[0].Name == "cls") {
			c.diags.Warningf(m.Params[0].Line, m.Params[0].Column,
				"static method '%s' has no implicit receiver; '%s' is an ordinary parameter",
				m.Name, m.Params[0].Name)
		}
	}
}

// buildMethodTable lays out the vtable the same way as the attribute
// table. Slot types are full signatures: the receiver class type is
// prepended for instance- and class-bound methods, and methods without
// a declared signature get an all-Object signature from their arity.
func (c *Checker) buildMethodTable(ext *exttypes.ExtensionType) {
	table := exttypes.NewTable(exttypes.MethodTable, ext.Name)

	for _, parent := range ext.Parents {
		table.Parents = append(table.Parents, parent.Methods)
		for _, slot := range parent.Methods.Slots {
			table.Append(slot.Name, slot.Type)
		}
	}

	for _, m := range ext.Declared {
		slotType := vtableType(m, ext)
		if !table.Append(m.Name, slotType) {
			table.Set(m.Name, slotType)
		}
	}

	ext.Methods = table
}

// vtableType builds the signature stored in the method table slot
func vtableType(m *exttypes.Method, ext *exttypes.ExtensionType) *exttypes.Signature {
	declared := m.Signature
	if declared == nil {
		argc := m.ExpectedArgCount()
		if argc < 0 {
			argc = 0
		}
		params := make([]exttypes.Type, argc)
		for i := range params {
			params[i] = exttypes.Object
		}
		declared = &exttypes.Signature{
			Params:   params,
			Return:   exttypes.Object,
			IsStatic: m.IsStatic,
		}
	}

	if m.IsStatic {
		return declared
	}

	params := make([]exttypes.Type, 0, len(declared.Params)+1)
	params = append(params, ext.Instance())
	params = append(params, declared.Params...)
	return &exttypes.Signature{Params: params, Return: declared.Return}
}

// validateClass runs the mode's pipelines: every declared method first,
// then the class against its parents. Fatal validator errors become
// error diagnostics; advisories arrive through the Reporter interface.
func (c *Checker) validateClass(ext *exttypes.ExtensionType) {
	for _, m := range ext.Declared {
		if err := validate.Method(c.mode, m, ext, c.diags); err != nil {
			c.diags.Errorf(m.Line, m.Column, "%s", err)
		}
	}
	if err := validate.Class(c.mode, ext); err != nil {
		c.diags.Errorf(ext.Line, ext.Column, "%s", err)
	}
}
