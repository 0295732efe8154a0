package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/alanb33/xmlpick"
	"github.com/alanb33/xmlpick/encode"
	"github.com/alanb33/xmlpick/format"
	"github.com/alanb33/xmlpick/ir"
)

const usageText = `xmlpick - extract XML elements by tag as text, JSON, or YAML

Usage:
  xmlpick --tag <tag> [--output text|json|yaml] [--where <expr>] [--out <file>] <file.xml>

Examples:
  xmlpick --tag PLANT plant_catalog.xml
  xmlpick -t PLANT -o json plant_catalog.xml
  xmlpick -t PLANT -o yaml --where 'ZONE == "4"' plant_catalog.xml
  xmlpick -t PLANT -o json --out plants plant_catalog.xml   # writes plants.json

The file must exist and have a .xml suffix; otherwise xmlpick prints
nothing and exits successfully. Malformed XML is reported as an error.`

type rootConfig struct {
	*cli.Command
	Tag     string `cli:"name=tag aliases=t desc='tag name of the elements to extract'"`
	Output  string `cli:"name=output aliases=o desc='output format: text, json, or yaml'"`
	Out     string `cli:"name=out desc='write to this file instead of stdout; without an extension the format suffix is appended'"`
	Where   string `cli:"name=where desc='keep only elements for which this expression is true'"`
	NoColor bool   `cli:"name=no-color desc='disable colored output'"`
}

// Root returns the root command for xmlpick.
func Root() *cli.Command {
	cfg := &rootConfig{Output: "text"}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "xmlpick").
		WithSynopsis("xmlpick - extract XML elements by tag as text, JSON, or YAML").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *rootConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 || cfg.Tag == "" {
		return fmt.Errorf("usage: xmlpick --tag <tag> [flags] <file.xml>")
	}
	f, err := format.ParseFormat(cfg.Output)
	if err != nil {
		return fmt.Errorf("%w (valid: %s)", err, formatNames())
	}

	nodes, ok, err := xmlpick.Extract(args[0], cfg.Tag)
	if err != nil {
		return err
	}
	if !ok {
		// Not a usable .xml path: no result, no output.
		return nil
	}
	if cfg.Where != "" {
		nodes, err = filterNodes(nodes, cfg.Where)
		if err != nil {
			return err
		}
	}

	var w io.Writer = cc.Out
	if cfg.Out != "" && cfg.Out != "-" {
		file, err := os.Create(outPath(cfg.Out, f))
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	switch {
	case f.IsJSON():
		_, err := fmt.Fprintln(w, encode.MustJSON(ir.FromSlice(nodes)))
		return err
	case f.IsYAML():
		return encode.EncodeYAML(ir.FromSlice(nodes), w)
	case f.IsText():
		var opts []encode.Option
		if cfg.useColor(w) {
			opts = append(opts, encode.Colors(encode.NewPalette()))
		}
		for _, n := range nodes {
			if err := encode.Display(n, w, opts...); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("format")
	}
}

func filterNodes(nodes []*ir.Node, where string) ([]*ir.Node, error) {
	filter, err := xmlpick.CompileFilter(where)
	if err != nil {
		return nil, err
	}
	kept := make([]*ir.Node, 0, len(nodes))
	for _, n := range nodes {
		keep, err := filter.Keep(n)
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, n)
		}
	}
	return kept, nil
}

// outPath returns the file name for --out, appending the format suffix
// when path carries no extension of its own.
func outPath(path string, f format.Format) string {
	if filepath.Ext(path) == "" {
		return path + f.Suffix()
	}
	return path
}

func formatNames() string {
	all := format.AllFormats()
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// useColor keys the color decision off the writer output actually goes
// to; writers without a file descriptor never color.
func (cfg *rootConfig) useColor(out io.Writer) bool {
	if cfg.NoColor {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
