// Command exprc compiles a built-in demo expression and evaluates it for
// the given named inputs:
//
//	exprc poly x=3 y=5
//	exprc -backend closure -disasm norm x=3 y=4
//	exprc -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/exprjit/internal/ast"
	exprjit "github.com/funvibe/exprjit/pkg/embed"
)

const (
	colorGreen = "\x1b[32m"
	colorReset = "\x1b[0m"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "exprc: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("exprc", flag.ContinueOnError)
	backendName := fs.String("backend", cfg.Backend, "execution backend: vm or closure")
	disasm := fs.Bool("disasm", cfg.Disasm, "print compiled bytecode before the result")
	list := fs.Bool("list", false, "list demo expressions and exit")
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		listDemos(os.Stdout)
		return nil
	}

	args := fs.Args()
	if len(args) == 0 {
		listDemos(os.Stderr)
		return fmt.Errorf("no demo name given")
	}

	d, ok := findDemo(args[0])
	if !ok {
		return fmt.Errorf("unknown demo %q (try -list)", args[0])
	}

	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}

	fn, err := exprjit.Compile(d.tree, d.binds, *backendName)
	if err != nil {
		return err
	}

	if *disasm {
		if out, ok := fn.Disassemble(); ok {
			fmt.Fprint(os.Stderr, out)
		} else {
			fmt.Fprintf(os.Stderr, "backend %q does not support disassembly\n", fn.Backend())
		}
	}

	result, err := fn.CallNamed(values)
	if err != nil {
		return err
	}

	if useColor(cfg.Color) {
		fmt.Printf("%s = %s%g%s\n", ast.Format(d.tree), colorGreen, result, colorReset)
	} else {
		fmt.Printf("%s = %g\n", ast.Format(d.tree), result)
	}
	return nil
}

// parseValues turns name=value pairs into the map CallNamed expects.
func parseValues(pairs []string) (map[string]float64, error) {
	values := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q is not of the form name=value", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %v", pair, err)
		}
		values[name] = v
	}
	return values, nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

func listDemos(w *os.File) {
	fmt.Fprintln(w, "available demos:")
	for _, d := range demos {
		fmt.Fprintf(w, "  %-6s %s  (inputs: %s)\n",
			d.name, ast.Format(d.tree), strings.Join(d.binds.Names(), ", "))
	}
}
