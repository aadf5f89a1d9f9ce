package formatter

import (
	"fmt"
	"strings"

	"github.com/extlang/extc/internal/ast"
)

// Format takes an AST Program and returns canonical declaration source.
func Format(prog *ast.Program) string {
	f := &formatter{}
	f.formatProgram(prog)
	return f.sb.String()
}

type formatter struct {
	sb     strings.Builder
	indent int
}

// --- helpers ---

func (f *formatter) emit(s string) {
	f.sb.WriteString(s)
}

func (f *formatter) emitf(format string, args ...any) {
	f.sb.WriteString(fmt.Sprintf(format, args...))
}

func (f *formatter) emitLinef(format string, args ...any) {
	f.sb.WriteString(f.indentStr())
	f.sb.WriteString(fmt.Sprintf(format, args...))
	f.sb.WriteString("\n")
}

func (f *formatter) emitLine(s string) {
	f.sb.WriteString(f.indentStr())
	f.sb.WriteString(s)
	f.sb.WriteString("\n")
}

func (f *formatter) blankLine() {
	f.sb.WriteString("\n")
}

func (f *formatter) incIndent() { f.indent++ }
func (f *formatter) decIndent() { f.indent-- }

func (f *formatter) indentStr() string {
	return strings.Repeat("    ", f.indent)
}

// --- program-level ---

func (f *formatter) formatProgram(prog *ast.Program) {
	for i, c := range prog.Classes {
		if i > 0 {
			f.blankLine()
		}
		f.formatClassDecl(c)
	}
}

func (f *formatter) formatClassDecl(c *ast.ClassDecl) {
	f.emit(f.indentStr())
	f.emitf("class %s", c.Name)
	if len(c.Parents) > 0 {
		f.emit("(")
		for i, p := range c.Parents {
			if i > 0 {
				f.emit(", ")
			}
			f.emit(p.Name)
		}
		f.emit(")")
	}

	if len(c.Attrs) == 0 && len(c.Methods) == 0 {
		f.emit(" { }\n")
		return
	}

	f.emit(" {\n")
	f.incIndent()

	for _, attr := range c.Attrs {
		f.emitLinef("attr %s: %s;", attr.Name, attr.Type.Name)
	}

	// Blank line between the attribute and method sections
	if len(c.Attrs) > 0 && len(c.Methods) > 0 {
		f.blankLine()
	}

	for _, m := range c.Methods {
		f.formatMethodDecl(m)
	}

	f.decIndent()
	f.emitLine("}")
}

func (f *formatter) formatMethodDecl(m *ast.MethodDecl) {
	f.emit(f.indentStr())
	switch m.Kind {
	case ast.StaticMethod:
		f.emit("static ")
	case ast.ClassMethod:
		f.emit("classmethod ")
	}
	f.emitf("def %s(", m.Name)
	for i, p := range m.Params {
		if i > 0 {
			f.emit(", ")
		}
		f.emit(p.Name)
	}
	f.emit(")")

	if m.Signature != nil {
		f.emit(" signature (")
		for i, t := range m.Signature.Params {
			if i > 0 {
				f.emit(", ")
			}
			f.emit(t.Name)
		}
		f.emitf(") -> %s", m.Signature.Return.Name)
	}

	f.emit(";\n")
}
