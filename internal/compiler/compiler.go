package compiler

import (
	"github.com/extlang/extc/internal/checker"
	"github.com/extlang/extc/internal/diagnostic"
	"github.com/extlang/extc/internal/exttypes"
	"github.com/extlang/extc/internal/parser"
	"github.com/extlang/extc/internal/validate"
)

// Result holds the output of analyzing one declaration file
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Classes     []*exttypes.ExtensionType
}

// Analyze runs the full pipeline: parse -> resolve -> validate.
// Parse errors stop the pipeline; the classes are only populated when
// the source parses cleanly.
func Analyze(source string, mode validate.Mode) *Result {
	p := parser.New(source)
	prog := p.Parse()

	if p.Diagnostics().HasErrors() {
		return &Result{Diagnostics: p.Diagnostics()}
	}

	res := checker.CheckWithResult(prog, mode)
	return &Result{Diagnostics: res.Diagnostics, Classes: res.Classes}
}

// Check runs parse + validation only, returning diagnostics
func Check(source string, mode validate.Mode) *diagnostic.Diagnostics {
	return Analyze(source, mode).Diagnostics
}
