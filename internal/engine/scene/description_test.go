package scene

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/pkg/math"
)

func TestDeskScene(t *testing.T) {
	d, err := Desk()
	if err != nil {
		t.Fatalf("Desk: %v", err)
	}

	want := []string{"table", "lamp", "backdrop", "laptop", "monitor", "keyboard", "mouse", "mug", "mousepad"}
	if got := d.ObjectNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("objects = %v, want %v", got, want)
	}
	if len(d.Textures) != 11 {
		t.Errorf("textures = %d, want 11", len(d.Textures))
	}

	declared := map[string]bool{}
	for _, s := range d.Textures {
		declared[s.Tag] = true
	}
	lib := material.NewLibrary(material.Defaults()...)
	for _, o := range d.Objects {
		for i, p := range o.Parts {
			if p.Texture != "" && !declared[p.Texture] {
				t.Errorf("%s part %d uses undeclared texture %q", o.Name, i, p.Texture)
			}
			if p.Material != "" {
				if _, ok := lib.Find(p.Material); !ok {
					t.Errorf("%s part %d uses unknown material %q", o.Name, i, p.Material)
				}
			}
		}
	}
}

func TestPartModel(t *testing.T) {
	p := Part{
		Scale:    &math.Vec3{X: 13, Y: 0.3, Z: 8},
		Rotation: math.V3(90, 0, 0),
		Position: math.V3(0, 3, -5.5),
	}
	want := math.Compose(math.V3(13, 0.3, 8), 90, 0, 0, math.V3(0, 3, -5.5))
	if got := p.Model(); got != want {
		t.Errorf("Model() = %v, want %v", got, want)
	}

	// No scale means unit scale.
	q := Part{Position: math.V3(1, 2, 3)}
	if got, want := q.Model(), math.Translate(1, 2, 3); got != want {
		t.Errorf("Model() without scale = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tooMany := "textures:\n"
	for i := 0; i <= texture.MaxSlots; i++ {
		tooMany += "  - {tag: t" + string(rune('a'+i)) + ", file: x.png}\n"
	}
	tooMany += "objects: [{name: a, parts: [{mesh: box}]}]\n"

	tests := []struct {
		name   string
		yaml   string
		is     error
		substr string
	}{
		{
			name: "unknown mesh",
			yaml: "objects: [{name: a, parts: [{mesh: teapot}]}]",
			is:   ErrUnknownMesh,
		},
		{
			name:   "unknown field",
			yaml:   "objects: [{name: a, parts: [{mesh: box, colour: [1, 0, 0]}]}]",
			substr: "colour",
		},
		{
			name: "duplicate texture",
			yaml: "textures: [{tag: a, file: a.png}, {tag: a, file: b.png}]\nobjects: [{name: a, parts: [{mesh: box}]}]",
			is:   texture.ErrDuplicateTag,
		},
		{
			name:   "no objects",
			yaml:   "textures: []",
			substr: "no objects",
		},
		{
			name:   "duplicate object",
			yaml:   "objects: [{name: a, parts: [{mesh: box}]}, {name: a, parts: [{mesh: box}]}]",
			substr: "duplicate object",
		},
		{
			name:   "empty object",
			yaml:   "objects: [{name: a}]",
			substr: "no parts",
		},
		{
			name:   "bad part name",
			yaml:   "objects: [{name: a, parts: [{mesh: box, parts: [lid]}]}]",
			substr: "lid",
		},
		{
			name:   "too many textures",
			yaml:   tooMany,
			substr: "at most",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v is not %v", err, tt.is)
			}
			if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	d, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile(\"\"): %v", err)
	}
	if len(d.Objects) != 9 {
		t.Fatalf("built-in scene has %d objects, want 9", len(d.Objects))
	}

	path := filepath.Join(t.TempDir(), "one.yaml")
	src := "objects:\n  - name: ball\n    parts:\n      - mesh: sphere\n        color: [1, 0, 0]\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := d.Objects[0].Parts[0].Color; got == nil || *got != math.RGBA(1, 0, 0, 1) {
		t.Errorf("color = %v, want opaque red", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
