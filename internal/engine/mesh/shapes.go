package mesh

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/pkg/math"
)

// Tessellation used by the round shapes.
const (
	roundSegments = 36
	sphereStacks  = 18
	torusSegments = 36
	torusSides    = 24 // multiple of 4 so the tube extremes are vertices

	torusMajor = 1.0
	torusTube  = 0.2
)

// Build returns the geometry for a shape. Round shapes with a base
// (cylinder, cone, tapered cylinder) stand on y=0 with height 1; all other
// shapes are centered at the origin.
func Build(kind Kind) (*Mesh, error) {
	b := &builder{m: &Mesh{Kind: kind}}
	switch kind {
	case Box:
		b.box()
	case Plane:
		b.plane()
	case Cylinder:
		b.lathe(roundSegments, 1, 1, 0, 1, 0, true)
	case Cone:
		b.lathe(roundSegments, 1, 0, 0, 1, 0, true)
	case TaperedCylinder:
		b.lathe(roundSegments, 1, 0.5, 0, 1, 0, true)
	case Prism:
		b.lathe(3, 0.5, 0.5, -0.5, 0.5, 0, false)
	case Pyramid4:
		b.lathe(4, math32.Sqrt2/2, 0, -0.5, 0.5, math32.Pi/4, false)
	case Sphere:
		b.sphere()
	case Torus:
		b.torus()
	default:
		return nil, fmt.Errorf("build mesh: %w", errUnknownKind(kind))
	}
	return b.m, nil
}

// BuildAll builds every shape kind, in Kinds order.
func BuildAll() ([]*Mesh, error) {
	out := make([]*Mesh, 0, kindCount)
	for _, k := range Kinds() {
		m, err := Build(k)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

type errUnknownKind Kind

func (e errUnknownKind) Error() string {
	return fmt.Sprintf("unknown mesh kind %d", int(e))
}

// builder appends vertices and indices and records part ranges.
type builder struct {
	m     *Mesh
	part  Parts
	start int
}

func (b *builder) begin(part Parts) {
	b.part = part
	b.start = len(b.m.Indices)
}

func (b *builder) end() {
	n := len(b.m.Indices) - b.start
	if n == 0 {
		return
	}
	// Consecutive calls for the same part extend its range.
	if last := len(b.m.Ranges) - 1; last >= 0 {
		r := &b.m.Ranges[last]
		if r.Part == b.part && r.Offset+r.Count == b.start {
			r.Count += n
			return
		}
	}
	b.m.Ranges = append(b.m.Ranges, Range{Part: b.part, Offset: b.start, Count: n})
}

func (b *builder) vertex(p, n math.Vec3, u, v float32) uint32 {
	b.m.Vertices = append(b.m.Vertices, Vertex{Position: p, Normal: n, UV: math.Vec2{X: u, Y: v}})
	return uint32(len(b.m.Vertices) - 1)
}

// tri appends a counter-clockwise triangle.
func (b *builder) tri(i0, i1, i2 uint32) {
	b.m.Indices = append(b.m.Indices, i0, i1, i2)
}

func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

// face adds a rectangle centered at c spanning ±u and ±v. u x v must point
// along the outward normal.
func (b *builder) face(part Parts, c, u, v math.Vec3) {
	b.begin(part)
	n := u.Cross(v).Normalize()
	i0 := b.vertex(c.Sub(u).Sub(v), n, 0, 0)
	i1 := b.vertex(c.Add(u).Sub(v), n, 1, 0)
	i2 := b.vertex(c.Add(u).Add(v), n, 1, 1)
	i3 := b.vertex(c.Sub(u).Add(v), n, 0, 1)
	b.quad(i0, i1, i2, i3)
	b.end()
}

func (b *builder) box() {
	const h = 0.5
	x := math.V3(h, 0, 0)
	y := math.V3(0, h, 0)
	z := math.V3(0, 0, h)
	b.face(Sides, z, x, y)                     // front
	b.face(Sides, z.Scale(-1), x.Scale(-1), y) // back
	b.face(Sides, x, z.Scale(-1), y)           // right
	b.face(Sides, x.Scale(-1), z, y)           // left
	b.face(Top, y, x, z.Scale(-1))             // top
	b.face(Bottom, y.Scale(-1), x, z)          // bottom
}

// plane spans -1..1 on X and Z at y=0, facing +Y.
func (b *builder) plane() {
	b.face(Top, math.Vec3{}, math.V3(1, 0, 0), math.V3(0, 0, -1))
}

// lathe builds a ring-based solid between y0 (radius r0) and y1 (radius r1).
// A zero top radius closes the sides in an apex. Smooth shading interpolates
// normals around the ring; flat shading gives every side its own normal.
func (b *builder) lathe(segments int, r0, r1, y0, y1, offset float32, smooth bool) {
	ring := func(i int, r, y float32) math.Vec3 {
		s, c := math32.Sincos(offset + 2*math32.Pi*float32(i)/float32(segments))
		return math.V3(r*s, y, r*c)
	}
	height := y1 - y0
	slant := func(theta float32) math.Vec3 {
		s, c := math32.Sincos(theta)
		return math.V3(s*height, r0-r1, c*height).Normalize()
	}

	b.begin(Sides)
	for i := 0; i < segments; i++ {
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)
		p0, p1 := ring(i, r0, y0), ring(i+1, r0, y0)
		q0, q1 := ring(i, r1, y1), ring(i+1, r1, y1)

		var n0, n1, nm math.Vec3
		if smooth {
			step := 2 * math32.Pi / float32(segments)
			a0 := offset + step*float32(i)
			n0, n1, nm = slant(a0), slant(a0+step), slant(a0+step/2)
		} else {
			top := q0
			if r1 == 0 {
				top = math.V3(0, y1, 0)
			}
			n0 = p1.Sub(p0).Cross(top.Sub(p0)).Normalize()
			n1, nm = n0, n0
		}

		i0 := b.vertex(p0, n0, u0, 0)
		i1 := b.vertex(p1, n1, u1, 0)
		if r1 == 0 {
			apex := b.vertex(math.V3(0, y1, 0), nm, (u0+u1)/2, 1)
			b.tri(i0, i1, apex)
			continue
		}
		i2 := b.vertex(q1, n1, u1, 1)
		i3 := b.vertex(q0, n0, u0, 1)
		b.quad(i0, i1, i2, i3)
	}
	b.end()

	if r1 > 0 {
		b.cap(Top, segments, r1, y1, offset, math.V3(0, 1, 0))
	}
	b.cap(Bottom, segments, r0, y0, offset, math.V3(0, -1, 0))
}

// cap fills a ring at height y with a triangle fan facing n.
func (b *builder) cap(part Parts, segments int, r, y, offset float32, n math.Vec3) {
	b.begin(part)
	center := b.vertex(math.V3(0, y, 0), n, 0.5, 0.5)
	ids := make([]uint32, segments+1)
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(offset + 2*math32.Pi*float32(i)/float32(segments))
		ids[i] = b.vertex(math.V3(r*s, y, r*c), n, 0.5+0.5*s, 0.5-0.5*c)
	}
	for i := 0; i < segments; i++ {
		if n.Y > 0 {
			b.tri(center, ids[i], ids[i+1])
		} else {
			b.tri(center, ids[i+1], ids[i])
		}
	}
	b.end()
}

// sphere has radius 1 around the origin.
func (b *builder) sphere() {
	b.begin(Sides)
	cols := roundSegments + 1
	base := uint32(len(b.m.Vertices))
	for st := 0; st <= sphereStacks; st++ {
		phi := math32.Pi * float32(st) / sphereStacks
		sp, cp := math32.Sincos(phi)
		for sl := 0; sl <= roundSegments; sl++ {
			theta := 2 * math32.Pi * float32(sl) / roundSegments
			s, c := math32.Sincos(theta)
			p := math.V3(sp*s, cp, sp*c)
			b.vertex(p, p, float32(sl)/roundSegments, 1-float32(st)/sphereStacks)
		}
	}
	for st := 0; st < sphereStacks; st++ {
		for sl := 0; sl < roundSegments; sl++ {
			upper := base + uint32(st*cols+sl)
			lower := upper + uint32(cols)
			switch st {
			case 0:
				b.tri(lower, lower+1, upper+1)
			case sphereStacks - 1:
				b.tri(lower, upper+1, upper)
			default:
				b.quad(lower, lower+1, upper+1, upper)
			}
		}
	}
	b.end()
}

// torus lies in the XY plane around the Z axis.
func (b *builder) torus() {
	b.begin(Sides)
	cols := torusSides + 1
	base := uint32(len(b.m.Vertices))
	for i := 0; i <= torusSegments; i++ {
		sphi, cphi := math32.Sincos(2 * math32.Pi * float32(i) / torusSegments)
		for j := 0; j <= torusSides; j++ {
			spsi, cpsi := math32.Sincos(2 * math32.Pi * float32(j) / torusSides)
			ring := torusMajor + torusTube*cpsi
			p := math.V3(ring*cphi, ring*sphi, torusTube*spsi)
			n := math.V3(cpsi*cphi, cpsi*sphi, spsi)
			b.vertex(p, n, float32(i)/torusSegments, float32(j)/torusSides)
		}
	}
	for i := 0; i < torusSegments; i++ {
		for j := 0; j < torusSides; j++ {
			a := base + uint32(i*cols+j)
			c := a + uint32(cols)
			b.quad(a, c, c+1, a+1)
		}
	}
	b.end()
}
