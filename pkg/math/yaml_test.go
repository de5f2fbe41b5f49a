package math

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestVectorsFromYAML(t *testing.T) {
	var doc struct {
		Scale Vec3 `yaml:"scale"`
		UV    Vec2 `yaml:"uv"`
		Color Vec4 `yaml:"color"`
		Tint  Vec4 `yaml:"tint"`
	}
	src := `
scale: [20, 0.3, 9.4]
uv: [2, 1]
color: [0.3, 0.2, 0.0, 1.0]
tint: [0.5, 0.5, 0.5]
`
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Scale != (Vec3{20, 0.3, 9.4}) {
		t.Errorf("scale = %v", doc.Scale)
	}
	if doc.UV != (Vec2{2, 1}) {
		t.Errorf("uv = %v", doc.UV)
	}
	if doc.Color != (Vec4{0.3, 0.2, 0, 1}) {
		t.Errorf("color = %v", doc.Color)
	}
	if doc.Tint != (Vec4{0.5, 0.5, 0.5, 1}) {
		t.Errorf("tint = %v, want opaque", doc.Tint)
	}
}

func TestVectorWrongArity(t *testing.T) {
	var doc struct {
		Scale Vec3 `yaml:"scale"`
	}
	err := yaml.Unmarshal([]byte("scale: [1, 2]\n"), &doc)
	if err == nil || !strings.Contains(err.Error(), "expected 3 components") {
		t.Errorf("expected arity error, got %v", err)
	}
}

func TestVec3MarshalFlow(t *testing.T) {
	out, err := yaml.Marshal(map[string]Vec3{"pos": {1, 2.5, -3}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "pos: [1, 2.5, -3]" {
		t.Errorf("Marshal = %q", got)
	}
}
