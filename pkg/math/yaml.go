package math

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vectors read from scene files as flow sequences: [x, y, z].

func decodeFloats(node *yaml.Node, n int) ([]float32, error) {
	var vals []float32
	if err := node.Decode(&vals); err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("line %d: expected %d components, got %d", node.Line, n, len(vals))
	}
	return vals, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec2) UnmarshalYAML(node *yaml.Node) error {
	vals, err := decodeFloats(node, 2)
	if err != nil {
		return err
	}
	*v = Vec2{vals[0], vals[1]}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	vals, err := decodeFloats(node, 3)
	if err != nil {
		return err
	}
	*v = Vec3{vals[0], vals[1], vals[2]}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Three components are accepted
// as an opaque color.
func (v *Vec4) UnmarshalYAML(node *yaml.Node) error {
	var vals []float32
	if err := node.Decode(&vals); err != nil {
		return err
	}
	switch len(vals) {
	case 3:
		*v = Vec4{vals[0], vals[1], vals[2], 1}
	case 4:
		*v = Vec4{vals[0], vals[1], vals[2], vals[3]}
	default:
		return fmt.Errorf("line %d: expected 3 or 4 components, got %d", node.Line, len(vals))
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec3) MarshalYAML() (interface{}, error) {
	return flow([]float32{v.X, v.Y, v.Z}), nil
}

func flow(vals []float32) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range vals {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(f)})
	}
	return n
}
