package xmlpick

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/alanb33/xmlpick/ir"
)

// Filter is a compiled boolean expression evaluated against an extracted
// element mapping. Field names are identifiers in the expression; fields
// absent from an element evaluate as nil.
type Filter struct {
	prog *vm.Program
}

// CompileFilter compiles src, e.g. `ZONE == "4"`, into a Filter.
func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}
	return &Filter{prog: prog}, nil
}

// Keep reports whether node satisfies the filter.
func (f *Filter) Keep(node *ir.Node) (bool, error) {
	env, _ := node.ToGo().(map[string]any)
	if env == nil {
		env = map[string]any{}
	}
	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, err
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter evaluated to %T, not bool", out)
	}
	return keep, nil
}
