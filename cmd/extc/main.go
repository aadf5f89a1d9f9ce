package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/extlang/extc/internal/compiler"
	"github.com/extlang/extc/internal/formatter"
	"github.com/extlang/extc/internal/linter"
	"github.com/extlang/extc/internal/parser"
	"github.com/extlang/extc/internal/validate"
)

const usage = `extc - structural compatibility checker for extension types

Usage:
  extc check [--mode=strict|permissive] <file.xt>    Validate class declarations
  extc layout [--mode=strict|permissive] <file.xt>   Print resolved slot tables
  extc fmt [-w] <file.xt>                            Format declarations canonically
  extc lint <file.xt>                                Report style warnings
  extc repl                                          Interactive checking session

Modes:
  strict       require declared signatures; validate layout order and slot
               types, and warn when constructor signatures are omitted
  permissive   infer omitted signatures as Object; validate slot types only

Examples:
  extc check point.xt                  Validate point.xt in strict mode
  extc check --mode=permissive p.xt    Validate without the signature advisories
  extc layout point.xt                 Show attribute and method slot offsets
  extc fmt -w point.xt                 Rewrite point.xt in canonical form
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		handleCheck(os.Args[2:])
	case "layout":
		handleLayout(os.Args[2:])
	case "fmt":
		handleFmt(os.Args[2:])
	case "lint":
		handleLint(os.Args[2:])
	case "repl":
		if err := runREPL(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// parseModeFlag parses the common flags of check/layout and returns
// the selected mode plus the input path
func parseModeFlag(name string, args []string) (validate.Mode, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	modeName := fs.String("mode", "strict", "compilation mode (strict or permissive)")
	fs.Parse(args)

	mode, err := validate.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file\n")
		os.Exit(1)
	}
	return mode, fs.Arg(0)
}

func readSource(path string) string {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}
	return string(source)
}

func handleCheck(args []string) {
	mode, path := parseModeFlag("check", args)
	res := compiler.Analyze(readSource(path), mode)

	if res.Diagnostics.Count() > 0 {
		fmt.Fprintln(os.Stderr, renderDiagnostics(res.Diagnostics, filepath.Base(path)))
	}
	if res.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("ok: %d class(es) validated in %s mode", len(res.Classes), mode)))
}

func handleLayout(args []string) {
	mode, path := parseModeFlag("layout", args)
	res := compiler.Analyze(readSource(path), mode)

	if res.Diagnostics.Count() > 0 {
		fmt.Fprintln(os.Stderr, renderDiagnostics(res.Diagnostics, filepath.Base(path)))
	}
	if res.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	for _, ext := range res.Classes {
		fmt.Println(renderClassLayout(ext))
	}
}

func handleFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "write result to the source file instead of stdout")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file\n")
		os.Exit(1)
	}
	path := fs.Arg(0)
	source := readSource(path)

	p := parser.New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		fmt.Fprintln(os.Stderr, renderDiagnostics(p.Diagnostics(), filepath.Base(path)))
		os.Exit(1)
	}

	formatted := formatter.Format(prog)
	if *write {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %s\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(formatted)
}

func handleLint(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file\n")
		os.Exit(1)
	}
	path := fs.Arg(0)

	p := parser.New(readSource(path))
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		fmt.Fprintln(os.Stderr, renderDiagnostics(p.Diagnostics(), filepath.Base(path)))
		os.Exit(1)
	}

	diag := linter.Lint(prog)
	if diag.Count() > 0 {
		fmt.Fprintln(os.Stderr, renderDiagnostics(diag, filepath.Base(path)))
		return
	}
	fmt.Println(okStyle.Render("ok: no style issues"))
}
