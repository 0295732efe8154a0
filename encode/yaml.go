package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/alanb33/xmlpick/ir"
)

// EncodeYAML writes node to w as YAML. Objects become mappings with
// fields in the node's field order, absent text becomes null.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// yamlValue converts node to the goccy marshalling types, using MapSlice
// so that field order survives.
func yamlValue(y *ir.Node) any {
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.TextType:
		return y.Text
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(y.Fields))
		for i, f := range y.Fields {
			ms = append(ms, yaml.MapItem{Key: f, Value: yamlValue(y.Values[i])})
		}
		return ms
	case ir.ArrayType:
		s := make([]any, len(y.Values))
		for i, v := range y.Values {
			s[i] = yamlValue(v)
		}
		return s
	default:
		panic("type")
	}
}
