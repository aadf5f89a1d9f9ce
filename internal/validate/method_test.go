package validate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/extlang/extc/internal/exttypes"
)

// recorder captures advisories for assertions
type recorder struct {
	warnings []string
}

func (r *recorder) Warningf(line, col int, format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func owningClass(name string) *exttypes.ExtensionType {
	return &exttypes.ExtensionType{
		Name:       name,
		Attributes: exttypes.NewTable(exttypes.AttributeTable, name),
		Methods:    exttypes.NewTable(exttypes.MethodTable, name),
	}
}

func sigOf(ret exttypes.Type, params ...exttypes.Type) *exttypes.Signature {
	return &exttypes.Signature{Params: params, Return: ret}
}

func TestArityValidator(t *testing.T) {
	ext := owningClass("Base")

	tests := []struct {
		name     string
		method   *exttypes.Method
		expected int // expected count in the arity error; -1 means pass
	}{
		{
			name:     "no declared signature passes trivially",
			method:   &exttypes.Method{Name: "bump", ParamCount: 3},
			expected: -1,
		},
		{
			name: "instance method with matching arity",
			method: &exttypes.Method{
				Name:       "bump",
				ParamCount: 2, // self, n
				Signature:  sigOf(exttypes.Int, exttypes.Int),
			},
			expected: -1,
		},
		{
			name: "instance method with too many argument types",
			method: &exttypes.Method{
				Name:       "bump",
				ParamCount: 2,
				Signature:  sigOf(exttypes.Int, exttypes.Int, exttypes.Int),
			},
			expected: 1,
		},
		{
			name: "static method keeps its full count",
			method: &exttypes.Method{
				Name:       "zero",
				IsStatic:   true,
				ParamCount: 2,
				Signature:  sigOf(exttypes.Int, exttypes.Int, exttypes.Int),
			},
			expected: -1,
		},
		{
			name: "static method with receiver-adjusted count fails",
			method: &exttypes.Method{
				Name:       "zero",
				IsStatic:   true,
				ParamCount: 2,
				Signature:  sigOf(exttypes.Int, exttypes.Int),
			},
			expected: 2,
		},
		{
			name: "classmethod drops its implicit receiver",
			method: &exttypes.Method{
				Name:         "describe",
				IsClassBound: true,
				ParamCount:   1, // cls
				Signature:    sigOf(exttypes.String),
			},
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ArityValidator{}.Validate(tt.method, ext, &recorder{})
			if tt.expected < 0 {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}

			var arityErr *SignatureArityError
			if !errors.As(err, &arityErr) {
				t.Fatalf("expected SignatureArityError, got %v", err)
			}
			if arityErr.Expected != tt.expected {
				t.Errorf("expected count %d in error, got %d", tt.expected, arityErr.Expected)
			}
			if arityErr.Method != tt.method.Name {
				t.Errorf("error names method %q, want %q", arityErr.Method, tt.method.Name)
			}
		})
	}
}

func TestConstructorShapeValidator(t *testing.T) {
	ext := owningClass("Base")

	tests := []struct {
		name    string
		method  *exttypes.Method
		wantErr bool
	}{
		{
			name:    "static constructor rejected",
			method:  &exttypes.Method{Name: exttypes.ConstructorName, IsStatic: true, ParamCount: 1},
			wantErr: true,
		},
		{
			name:    "class-bound constructor rejected",
			method:  &exttypes.Method{Name: exttypes.ConstructorName, IsClassBound: true, ParamCount: 1},
			wantErr: true,
		},
		{
			name:   "instance-bound constructor accepted",
			method: &exttypes.Method{Name: exttypes.ConstructorName, ParamCount: 2},
		},
		{
			name:   "static non-constructor accepted",
			method: &exttypes.Method{Name: "zero", IsStatic: true, ParamCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConstructorShapeValidator{}.Validate(tt.method, ext, &recorder{})
			if tt.wantErr {
				var shapeErr *ConstructorShapeError
				if !errors.As(err, &shapeErr) {
					t.Fatalf("expected ConstructorShapeError, got %v", err)
				}
				if shapeErr.Class != "Base" {
					t.Errorf("error names class %q, want Base", shapeErr.Class)
				}
			} else if err != nil {
				t.Fatalf("expected pass, got %v", err)
			}
		})
	}
}

func TestConstructorSignatureAdvisory(t *testing.T) {
	ext := owningClass("Base")

	tests := []struct {
		name       string
		method     *exttypes.Method
		wantAdvice bool
	}{
		{
			name:       "no signature with parameters beyond the receiver",
			method:     &exttypes.Method{Name: exttypes.ConstructorName, ParamCount: 2},
			wantAdvice: true,
		},
		{
			name:   "no signature, receiver only",
			method: &exttypes.Method{Name: exttypes.ConstructorName, ParamCount: 1},
		},
		{
			name: "declared signature suppresses the advisory",
			method: &exttypes.Method{
				Name:       exttypes.ConstructorName,
				ParamCount: 2,
				Signature:  sigOf(exttypes.Void, exttypes.Int),
			},
		},
		{
			name:   "non-constructor never advised",
			method: &exttypes.Method{Name: "bump", ParamCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			if err := (ConstructorSignatureAdvisory{}).Validate(tt.method, ext, rec); err != nil {
				t.Fatalf("advisory must never be fatal, got %v", err)
			}
			if tt.wantAdvice {
				if len(rec.warnings) != 1 {
					t.Fatalf("expected one advisory, got %d", len(rec.warnings))
				}
				if !strings.Contains(rec.warnings[0], "Base") {
					t.Errorf("advisory should name the class, got %q", rec.warnings[0])
				}
			} else if len(rec.warnings) != 0 {
				t.Errorf("expected no advisory, got %v", rec.warnings)
			}
		})
	}
}

func TestMethodPipelineModes(t *testing.T) {
	ext := owningClass("Base")
	ctor := &exttypes.Method{Name: exttypes.ConstructorName, ParamCount: 2}

	rec := &recorder{}
	if err := Method(Strict, ctor, ext, rec); err != nil {
		t.Fatalf("strict pipeline: %v", err)
	}
	if len(rec.warnings) != 1 {
		t.Errorf("strict mode should emit the constructor advisory, got %d", len(rec.warnings))
	}

	rec = &recorder{}
	if err := Method(Permissive, ctor, ext, rec); err != nil {
		t.Fatalf("permissive pipeline: %v", err)
	}
	if len(rec.warnings) != 0 {
		t.Errorf("permissive mode must skip the advisory, got %v", rec.warnings)
	}
}

func TestMethodPipelineStopsAtShapeError(t *testing.T) {
	ext := owningClass("Base")
	// A static constructor with no signature would also qualify for the
	// advisory; the fatal shape error must come first and suppress it.
	ctor := &exttypes.Method{Name: exttypes.ConstructorName, IsStatic: true, ParamCount: 2}

	rec := &recorder{}
	err := Method(Strict, ctor, ext, rec)

	var shapeErr *ConstructorShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ConstructorShapeError, got %v", err)
	}
	if len(rec.warnings) != 0 {
		t.Errorf("advisory must not run after a fatal error, got %v", rec.warnings)
	}
}
