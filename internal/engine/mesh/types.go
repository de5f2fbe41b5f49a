// Package mesh generates the primitive shapes the scene is assembled from.
package mesh

import (
	"fmt"
	"strings"

	"github.com/Faultbox/deskscene/pkg/math"
)

// Kind identifies one primitive shape.
type Kind int

const (
	Box Kind = iota
	Plane
	Cylinder
	Cone
	Prism
	Pyramid4
	Sphere
	TaperedCylinder
	Torus
	kindCount
)

var kindNames = [...]string{
	Box:             "box",
	Plane:           "plane",
	Cylinder:        "cylinder",
	Cone:            "cone",
	Prism:           "prism",
	Pyramid4:        "pyramid4",
	Sphere:          "sphere",
	TaperedCylinder: "tapered_cylinder",
	Torus:           "torus",
}

// Kinds returns every shape kind.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a shape name to its Kind. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mesh %q", name)
}

// Parts selects sections of a shape. Shapes without caps keep all of their
// faces in Sides; a plane is a single Top face.
type Parts uint8

const (
	Top Parts = 1 << iota
	Bottom
	Sides

	All = Top | Bottom | Sides
)

// ParseParts reads a list such as ["top", "sides"]. An empty list selects All.
func ParseParts(names []string) (Parts, error) {
	if len(names) == 0 {
		return All, nil
	}
	var p Parts
	for _, n := range names {
		switch strings.ToLower(n) {
		case "top":
			p |= Top
		case "bottom":
			p |= Bottom
		case "sides":
			p |= Sides
		case "all":
			p |= All
		default:
			return 0, fmt.Errorf("unknown mesh part %q", n)
		}
	}
	return p, nil
}

// Vertex is one mesh vertex.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Range is a contiguous run of indices belonging to one part.
type Range struct {
	Part   Parts
	Offset int // first index
	Count  int // number of indices
}

// Mesh is CPU-side geometry. Indices form triangles.
type Mesh struct {
	Kind     Kind
	Vertices []Vertex
	Indices  []uint32
	Ranges   []Range
}

// Select returns the index ranges for the requested parts in build order.
func (m *Mesh) Select(parts Parts) []Range {
	var out []Range
	for _, r := range m.Ranges {
		if r.Part&parts != 0 {
			out = append(out, r)
		}
	}
	return out
}

// Triangles calls fn for every triangle in the selected parts.
func (m *Mesh) Triangles(parts Parts, fn func(a, b, c Vertex)) {
	for _, r := range m.Select(parts) {
		for i := r.Offset; i+2 < r.Offset+r.Count; i += 3 {
			fn(m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]])
		}
	}
}

// Bounds returns the axis-aligned bounds of all vertices.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		p := v.Position
		min = math.V3(minf(min.X, p.X), minf(min.Y, p.Y), minf(min.Z, p.Z))
		max = math.V3(maxf(max.X, p.X), maxf(max.Y, p.Y), maxf(max.Z, p.Z))
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
