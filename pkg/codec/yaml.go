package codec

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// YAML renders a JSON value as a YAML document, keeping object key order.
func YAML(v any) ([]byte, error) {
	node, err := yamlNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// MarshalYAML lets yaml.v3 encode objects without losing member order.
func (o *Object) MarshalYAML() (interface{}, error) {
	return yamlNode(o)
}

func yamlNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x}, nil
	case json.Number:
		tag := "!!int"
		if _, err := strconv.ParseInt(string(x), 10, 64); err != nil {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(x)}, nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(x) == 0 {
			seq.Style = yaml.FlowStyle
		}
		for _, item := range x {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	case *Object:
		return yamlMapping(x.Members())
	case map[string]any:
		return yamlMapping(sortedMembers(x))
	}
	if n, ok := numberFromGo(v); ok {
		return yamlNode(n)
	}
	return nil, fmt.Errorf("cannot encode %T as YAML", v)
}

func yamlMapping(members []Member) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(members) == 0 {
		m.Style = yaml.FlowStyle
	}
	for _, member := range members {
		value, err := yamlNode(member.Value)
		if err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: member.Key}
		m.Content = append(m.Content, key, value)
	}
	return m, nil
}
