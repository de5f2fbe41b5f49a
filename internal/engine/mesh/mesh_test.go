package mesh

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/pkg/math"
)

func TestBuildAllKinds(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			m, err := Build(k)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if m.Kind != k {
				t.Errorf("Kind = %v, want %v", m.Kind, k)
			}
			if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
				t.Fatalf("index count %d is not a positive multiple of 3", len(m.Indices))
			}
			for _, idx := range m.Indices {
				if int(idx) >= len(m.Vertices) {
					t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
				}
			}
			for i, v := range m.Vertices {
				if l := v.Normal.Length(); math32.Abs(l-1) > 1e-4 {
					t.Fatalf("vertex %d normal length %v", i, l)
				}
			}

			covered := 0
			for _, r := range m.Ranges {
				if r.Offset != covered {
					t.Fatalf("range %+v does not start at %d", r, covered)
				}
				covered += r.Count
			}
			if covered != len(m.Indices) {
				t.Errorf("ranges cover %d of %d indices", covered, len(m.Indices))
			}
		})
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := Build(Kind(99)); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

// Triangles wind counter-clockwise when seen from the side their normals face.
func TestWindingMatchesNormals(t *testing.T) {
	for _, k := range Kinds() {
		m, _ := Build(k)
		bad := 0
		m.Triangles(All, func(a, b, c Vertex) {
			geo := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
			if geo.Length() < 1e-6 {
				return
			}
			n := a.Normal.Add(b.Normal).Add(c.Normal)
			if geo.Dot(n) <= 0 {
				bad++
			}
		})
		if bad > 0 {
			t.Errorf("%v: %d triangles wound against their normals", k, bad)
		}
	}
}

func TestBounds(t *testing.T) {
	const eps = 1e-4
	tests := []struct {
		kind     Kind
		min, max math.Vec3
	}{
		{Box, math.V3(-0.5, -0.5, -0.5), math.V3(0.5, 0.5, 0.5)},
		{Plane, math.V3(-1, 0, -1), math.V3(1, 0, 1)},
		{Cylinder, math.V3(-1, 0, -1), math.V3(1, 1, 1)},
		{Cone, math.V3(-1, 0, -1), math.V3(1, 1, 1)},
		{TaperedCylinder, math.V3(-1, 0, -1), math.V3(1, 1, 1)},
		{Sphere, math.V3(-1, -1, -1), math.V3(1, 1, 1)},
		{Pyramid4, math.V3(-0.5, -0.5, -0.5), math.V3(0.5, 0.5, 0.5)},
		{Torus, math.V3(-1.2, -1.2, -0.2), math.V3(1.2, 1.2, 0.2)},
	}
	near := func(a, b math.Vec3) bool {
		return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
	}
	for _, tt := range tests {
		m, _ := Build(tt.kind)
		min, max := m.Bounds()
		if !near(min, tt.min) || !near(max, tt.max) {
			t.Errorf("%v bounds = %v..%v, want %v..%v", tt.kind, min, max, tt.min, tt.max)
		}
	}
}

func TestTaperedTopRadius(t *testing.T) {
	m, _ := Build(TaperedCylinder)
	var maxR float32
	m.Triangles(Top, func(a, b, c Vertex) {
		for _, v := range []Vertex{a, b, c} {
			if v.Position.Y != 1 {
				t.Fatalf("top vertex at y=%v", v.Position.Y)
			}
			r := math32.Hypot(v.Position.X, v.Position.Z)
			if r > maxR {
				maxR = r
			}
		}
	})
	if math32.Abs(maxR-0.5) > 1e-4 {
		t.Errorf("top radius = %v, want 0.5", maxR)
	}
}

func TestSelectParts(t *testing.T) {
	cyl, _ := Build(Cylinder)
	sides := cyl.Select(Sides)
	if len(sides) != 1 {
		t.Fatalf("Select(Sides) = %d ranges, want 1", len(sides))
	}
	cyl.Triangles(Sides, func(a, b, c Vertex) {
		if a.Normal.Y != 0 || b.Normal.Y != 0 || c.Normal.Y != 0 {
			t.Fatal("side normal has a vertical component")
		}
	})

	top := 0
	cyl.Triangles(Top, func(a, b, c Vertex) {
		top++
		if a.Normal != math.V3(0, 1, 0) {
			t.Fatalf("top normal = %v", a.Normal)
		}
	})
	if top != roundSegments {
		t.Errorf("top triangles = %d, want %d", top, roundSegments)
	}

	if got := len(cyl.Select(Top | Sides)); got != 2 {
		t.Errorf("Select(Top|Sides) = %d ranges, want 2", got)
	}

	cone, _ := Build(Cone)
	if len(cone.Select(Top)) != 0 {
		t.Error("cone should have no top part")
	}

	plane, _ := Build(Plane)
	if len(plane.Select(Sides)) != 0 || len(plane.Select(Top)) != 1 {
		t.Errorf("plane ranges = %+v", plane.Ranges)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseKind("Tapered_Cylinder"); err != nil || got != TaperedCylinder {
		t.Errorf("ParseKind is case sensitive: %v, %v", got, err)
	}
	if _, err := ParseKind("teapot"); err == nil {
		t.Error("expected error for unknown mesh")
	}
}

func TestParseParts(t *testing.T) {
	tests := []struct {
		in      []string
		want    Parts
		wantErr bool
	}{
		{nil, All, false},
		{[]string{"sides"}, Sides, false},
		{[]string{"top", "Bottom"}, Top | Bottom, false},
		{[]string{"all"}, All, false},
		{[]string{"lid"}, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseParts(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseParts(%v) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseParts(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildAll(t *testing.T) {
	meshes, err := BuildAll()
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(meshes) != len(Kinds()) {
		t.Fatalf("built %d meshes, want %d", len(meshes), len(Kinds()))
	}
	for i, k := range Kinds() {
		if meshes[i].Kind != k {
			t.Errorf("mesh %d kind = %v, want %v", i, meshes[i].Kind, k)
		}
	}
}

func TestTorusTubeExtremesSampled(t *testing.T) {
	if torusSides%4 != 0 {
		t.Fatalf("torusSides = %d, want a multiple of 4", torusSides)
	}
	m, _ := Build(Torus)
	min, max := m.Bounds()
	if math32.Abs(max.Z-torusTube) > 1e-5 || math32.Abs(min.Z+torusTube) > 1e-5 {
		t.Errorf("torus z extent = %v..%v, want ±%v", min.Z, max.Z, torusTube)
	}
}
