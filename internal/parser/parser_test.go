package parser

import (
	"strings"
	"testing"

	"github.com/extlang/extc/internal/ast"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	p := New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("parse errors: %s", p.Diagnostics().Format("test"))
	}
	return prog
}

func TestParseEmptyClass(t *testing.T) {
	prog := parseProgram(t, "class Base { }")

	if len(prog.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(prog.Classes))
	}
	c := prog.Classes[0]
	if c.Name != "Base" {
		t.Errorf("expected name Base, got %q", c.Name)
	}
	if len(c.Parents) != 0 || len(c.Attrs) != 0 || len(c.Methods) != 0 {
		t.Error("expected an empty class")
	}
}

func TestParseParents(t *testing.T) {
	prog := parseProgram(t, "class C(A, B) { }")

	c := prog.Classes[0]
	if len(c.Parents) != 2 {
		t.Fatalf("expected 2 parents, got %d", len(c.Parents))
	}
	if c.Parents[0].Name != "A" || c.Parents[1].Name != "B" {
		t.Errorf("expected parents [A B], got [%s %s]", c.Parents[0].Name, c.Parents[1].Name)
	}
}

func TestParseAttrDecl(t *testing.T) {
	prog := parseProgram(t, `class Base {
    attr count: Int;
    attr name: String;
}`)

	attrs := prog.Classes[0].Attrs
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Name != "count" || attrs[0].Type.Name != "Int" {
		t.Errorf("attr[0] wrong: %s: %s", attrs[0].Name, attrs[0].Type.Name)
	}
	if attrs[1].Name != "name" || attrs[1].Type.Name != "String" {
		t.Errorf("attr[1] wrong: %s: %s", attrs[1].Name, attrs[1].Type.Name)
	}
}

func TestParseMethodDecl(t *testing.T) {
	prog := parseProgram(t, `class Base {
    def bump(self, n) signature (Int) -> Int;
}`)

	methods := prog.Classes[0].Methods
	if len(methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(methods))
	}
	m := methods[0]
	if m.Name != "bump" || m.Kind != ast.InstanceMethod {
		t.Errorf("method header wrong: %s %v", m.Name, m.Kind)
	}
	if len(m.Params) != 2 || m.Params[0].Name != "self" || m.Params[1].Name != "n" {
		t.Errorf("params wrong: %v", m.Params)
	}
	if m.Signature == nil {
		t.Fatal("expected a signature clause")
	}
	if len(m.Signature.Params) != 1 || m.Signature.Params[0].Name != "Int" {
		t.Errorf("signature params wrong: %v", m.Signature.Params)
	}
	if m.Signature.Return.Name != "Int" {
		t.Errorf("signature return wrong: %s", m.Signature.Return.Name)
	}
}

func TestParseMethodKinds(t *testing.T) {
	prog := parseProgram(t, `class Base {
    static def zero() signature () -> Int;
    classmethod def describe(cls);
    def init(self);
}`)

	methods := prog.Classes[0].Methods
	if len(methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(methods))
	}
	if methods[0].Kind != ast.StaticMethod {
		t.Errorf("expected static, got %v", methods[0].Kind)
	}
	if len(methods[0].Params) != 0 {
		t.Errorf("static zero() should have no params, got %d", len(methods[0].Params))
	}
	if methods[1].Kind != ast.ClassMethod {
		t.Errorf("expected classmethod, got %v", methods[1].Kind)
	}
	if methods[1].Signature != nil {
		t.Error("describe has no signature clause")
	}
	if methods[2].Kind != ast.InstanceMethod {
		t.Errorf("expected instance, got %v", methods[2].Kind)
	}
}

func TestParseEmptySignature(t *testing.T) {
	prog := parseProgram(t, `class Base {
    static def nop() signature () -> Void;
}`)

	sig := prog.Classes[0].Methods[0].Signature
	if sig == nil {
		t.Fatal("expected signature")
	}
	if len(sig.Params) != 0 {
		t.Errorf("expected no signature params, got %d", len(sig.Params))
	}
	if sig.Return.Name != "Void" {
		t.Errorf("expected Void return, got %s", sig.Return.Name)
	}
}

func TestParseMultipleClasses(t *testing.T) {
	prog := parseProgram(t, `class A { }
class B(A) {
    attr x: Int;
}`)

	if len(prog.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(prog.Classes))
	}
	if prog.Classes[1].Name != "B" || prog.Classes[1].Parents[0].Name != "A" {
		t.Error("second class header wrong")
	}
}

func TestParsePositions(t *testing.T) {
	prog := parseProgram(t, "class A {\n    attr x: Int;\n}")

	line, col := prog.Classes[0].Pos()
	if line != 1 || col != 1 {
		t.Errorf("class position wrong: %d:%d", line, col)
	}
	line, _ = prog.Classes[0].Attrs[0].Pos()
	if line != 2 {
		t.Errorf("attr position wrong: line %d", line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		substr string
	}{
		{
			name:   "missing class name",
			source: "class { }",
			substr: "expected IDENT",
		},
		{
			name:   "top-level junk",
			source: "attr x: Int;",
			substr: "at top level",
		},
		{
			name:   "junk in class body",
			source: "class A { signature }",
			substr: "in class body",
		},
		{
			name:   "missing semicolon",
			source: "class A { attr x: Int }",
			substr: "expected SEMICOLON",
		},
		{
			name:   "missing arrow",
			source: "class A { def m(self) signature (Int) Int; }",
			substr: "expected ARROW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.source)
			p.Parse()
			if !p.Diagnostics().HasErrors() {
				t.Fatal("expected parse errors")
			}
			if !strings.Contains(p.Diagnostics().Format("test"), tt.substr) {
				t.Errorf("expected %q in:\n%s", tt.substr, p.Diagnostics().Format("test"))
			}
		})
	}
}

func TestParseRecoversAfterError(t *testing.T) {
	// The bad member must not swallow the rest of the file
	p := New(`class A {
    attr : Int;
    attr y: Int;
}
class B { }`)
	prog := p.Parse()

	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected parse errors")
	}
	if len(prog.Classes) != 2 {
		t.Errorf("expected recovery to keep both classes, got %d", len(prog.Classes))
	}
}
