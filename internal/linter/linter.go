package linter

import (
	"strings"
	"unicode"

	"github.com/extlang/extc/internal/ast"
	"github.com/extlang/extc/internal/diagnostic"
	"github.com/extlang/extc/internal/exttypes"
)

// Linter performs style and best-practice checks on declaration files.
// It reports warnings (never errors) using the diagnostic system;
// structural safety is the validators' job, not the linter's.
type Linter struct {
	prog *ast.Program
	diag *diagnostic.Diagnostics
}

// Lint runs all lint rules on the given program and returns diagnostics.
func Lint(prog *ast.Program) *diagnostic.Diagnostics {
	l := &Linter{
		prog: prog,
		diag: diagnostic.New(),
	}

	for _, c := range prog.Classes {
		l.lintClass(c)
	}

	return l.diag
}

func (l *Linter) lintClass(c *ast.ClassDecl) {
	l.checkClassNaming(c)
	l.checkDuplicateParents(c)
	l.checkEmptyClass(c)
	l.checkMemberOrder(c)

	for _, attr := range c.Attrs {
		l.checkMemberNaming("attribute", attr.Name, attr.Line, attr.Column)
	}
	for _, m := range c.Methods {
		l.checkMemberNaming("method", m.Name, m.Line, m.Column)
		l.checkMissingSignature(c, m)
	}
}

// --- Lint rules ---

// checkClassNaming warns if a class name is not UpperCamelCase.
func (l *Linter) checkClassNaming(c *ast.ClassDecl) {
	if len(c.Name) > 0 && !unicode.IsUpper(rune(c.Name[0])) {
		l.diag.Warningf(c.Line, c.Column,
			"class '%s' should be UpperCamelCase", c.Name)
	}
	if strings.Contains(c.Name, "_") {
		l.diag.Warningf(c.Line, c.Column,
			"class '%s' should not contain underscores", c.Name)
	}
}

// checkMemberNaming warns if an attribute or method name starts with
// an uppercase letter. Dunder names like the constructor's helpers are
// left alone.
func (l *Linter) checkMemberNaming(kind, name string, line, col int) {
	if strings.HasPrefix(name, "_") {
		return
	}
	if len(name) > 0 && unicode.IsUpper(rune(name[0])) {
		l.diag.Warningf(line, col,
			"%s '%s' should start with a lowercase letter", kind, name)
	}
}

// checkDuplicateParents warns when the same parent is listed twice;
// the checker would build the layout from the first mention only.
func (l *Linter) checkDuplicateParents(c *ast.ClassDecl) {
	seen := make(map[string]bool)
	for _, p := range c.Parents {
		if seen[p.Name] {
			l.diag.Warningf(p.Line, p.Column,
				"class '%s' lists parent '%s' more than once", c.Name, p.Name)
		}
		seen[p.Name] = true
	}
}

// checkEmptyClass warns about classes that declare nothing and inherit
// nothing.
func (l *Linter) checkEmptyClass(c *ast.ClassDecl) {
	if len(c.Parents) == 0 && len(c.Attrs) == 0 && len(c.Methods) == 0 {
		l.diag.Warningf(c.Line, c.Column, "class '%s' is empty", c.Name)
	}
}

// checkMemberOrder warns when attributes are declared after methods.
func (l *Linter) checkMemberOrder(c *ast.ClassDecl) {
	if len(c.Attrs) == 0 || len(c.Methods) == 0 {
		return
	}
	firstMethodLine, _ := c.Methods[0].Pos()
	for _, attr := range c.Attrs {
		if attr.Line > firstMethodLine {
			l.diag.Warningf(attr.Line, attr.Column,
				"attribute '%s' declared after methods; keep attributes first", attr.Name)
			return
		}
	}
}

// checkMissingSignature warns when a non-constructor method omits its
// signature clause. The constructor case is already covered by the
// strict-mode advisory.
func (l *Linter) checkMissingSignature(c *ast.ClassDecl, m *ast.MethodDecl) {
	if m.Signature == nil && m.Name != exttypes.ConstructorName {
		l.diag.Warningf(m.Line, m.Column,
			"method '%s.%s' has no signature; its types will be inferred as Object",
			c.Name, m.Name)
	}
}
