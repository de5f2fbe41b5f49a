package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

//go:embed desk.yaml
var deskYAML []byte

// ErrUnknownMesh is returned when a part names a shape that does not exist.
var ErrUnknownMesh = errors.New("unknown mesh")

// Description is a scene file: the textures to load, optional material and
// light overrides, and the objects to draw in order.
type Description struct {
	Textures  []texture.Spec        `yaml:"textures"`
	Materials []material.Material   `yaml:"materials"`
	Lights    []lighting.PointLight `yaml:"lights"`
	Objects   []Object              `yaml:"objects"`
}

// Object is a named group of parts.
type Object struct {
	Name  string `yaml:"name"`
	Parts []Part `yaml:"parts"`
}

// Part is one draw call with the state changes that precede it.
// Nil pointers leave the corresponding shader state untouched.
type Part struct {
	Mesh     string     `yaml:"mesh"`
	Parts    []string   `yaml:"parts"`
	Scale    *math.Vec3 `yaml:"scale"`
	Rotation math.Vec3  `yaml:"rotation"` // degrees around X, Y, Z
	Position math.Vec3  `yaml:"position"`
	Texture  string     `yaml:"texture"`
	Color    *math.Vec4 `yaml:"color"`
	UVScale  *math.Vec2 `yaml:"uv_scale"`
	Material string     `yaml:"material"`
}

// Model returns the part's model matrix. A missing scale means 1.
func (p Part) Model() math.Mat4 {
	scale := math.V3(1, 1, 1)
	if p.Scale != nil {
		scale = *p.Scale
	}
	return math.Compose(scale, p.Rotation.X, p.Rotation.Y, p.Rotation.Z, p.Position)
}

// Desk returns the built-in desk tableau.
func Desk() (*Description, error) {
	d, err := Parse(deskYAML)
	if err != nil {
		return nil, fmt.Errorf("desk scene: %w", err)
	}
	return d, nil
}

// LoadFile reads a scene description from disk. An empty path returns the
// built-in desk tableau.
func LoadFile(path string) (*Description, error) {
	if path == "" {
		return Desk()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a scene description. Unknown keys are errors.
func Parse(data []byte) (*Description, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks structural problems that would make the scene unusable.
// Texture and material references are resolved at render time instead.
func (d *Description) Validate() error {
	if len(d.Textures) > texture.MaxSlots {
		return fmt.Errorf("%d textures declared, at most %d supported", len(d.Textures), texture.MaxSlots)
	}
	tags := make(map[string]bool, len(d.Textures))
	for _, t := range d.Textures {
		if t.Tag == "" || t.File == "" {
			return fmt.Errorf("texture %q: tag and file are required", t.Tag)
		}
		if tags[t.Tag] {
			return fmt.Errorf("texture %q: %w", t.Tag, texture.ErrDuplicateTag)
		}
		tags[t.Tag] = true
	}

	for _, m := range d.Materials {
		if m.Tag == "" {
			return errors.New("material without tag")
		}
	}

	if len(d.Objects) == 0 {
		return errors.New("scene has no objects")
	}
	names := make(map[string]bool, len(d.Objects))
	for _, o := range d.Objects {
		if o.Name == "" {
			return errors.New("object without name")
		}
		if names[o.Name] {
			return fmt.Errorf("duplicate object %q", o.Name)
		}
		names[o.Name] = true
		if len(o.Parts) == 0 {
			return fmt.Errorf("object %q has no parts", o.Name)
		}
		for i, p := range o.Parts {
			if _, err := mesh.ParseKind(p.Mesh); err != nil {
				return fmt.Errorf("object %q part %d: %w %q", o.Name, i, ErrUnknownMesh, p.Mesh)
			}
			if _, err := mesh.ParseParts(p.Parts); err != nil {
				return fmt.Errorf("object %q part %d: %w", o.Name, i, err)
			}
		}
	}
	return nil
}

// ObjectNames returns the object names in render order.
func (d *Description) ObjectNames() []string {
	out := make([]string, len(d.Objects))
	for i, o := range d.Objects {
		out[i] = o.Name
	}
	return out
}
