package scene

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// Box returns an axis-aligned box centered at the origin.
func Box(width, height, depth float32, color [3]float32) *Mesh {
	x := width / 2
	y := height / 2
	z := depth / 2

	m := &Mesh{}

	// Each face gets its own four vertices so normals stay flat.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
	}

	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: c, Normal: f.normal, Color: color})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return m
}

// Plane returns a flat quad in the XZ plane, normal up, centered at the
// origin.
func Plane(width, depth float32, color [3]float32) *Mesh {
	x := width / 2
	z := depth / 2
	up := [3]float32{0, 1, 0}

	return &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-x, 0, -z}, Normal: up, Color: color},
			{Position: [3]float32{x, 0, -z}, Normal: up, Color: color},
			{Position: [3]float32{x, 0, z}, Normal: up, Color: color},
			{Position: [3]float32{-x, 0, z}, Normal: up, Color: color},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// Cylinder returns a closed cylinder along the Y axis, centered at the
// origin. segments must be at least 3.
func Cylinder(radius, height float32, segments int, color [3]float32) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	h := height / 2

	// Side: one quad per segment with radial normals.
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float32(i) / float32(segments)
		a1 := 2 * math.Pi * float32(i+1) / float32(segments)

		x0, z0 := math.Cos(a0)*radius, math.Sin(a0)*radius
		x1, z1 := math.Cos(a1)*radius, math.Sin(a1)*radius
		n0 := [3]float32{math.Cos(a0), 0, math.Sin(a0)}
		n1 := [3]float32{math.Cos(a1), 0, math.Sin(a1)}

		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{x0, -h, z0}, Normal: n0, Color: color},
			Vertex{Position: [3]float32{x1, -h, z1}, Normal: n1, Color: color},
			Vertex{Position: [3]float32{x1, h, z1}, Normal: n1, Color: color},
			Vertex{Position: [3]float32{x0, h, z0}, Normal: n0, Color: color},
		)
		m.Indices = append(m.Indices, base, base+2, base+1, base, base+3, base+2)
	}

	// Caps: triangle fans around center vertices.
	for _, end := range []struct {
		y      float32
		normal [3]float32
	}{
		{h, [3]float32{0, 1, 0}},
		{-h, [3]float32{0, -1, 0}},
	} {
		center := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, end.y, 0}, Normal: end.normal, Color: color})
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float32(i) / float32(segments)
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{math.Cos(a) * radius, end.y, math.Sin(a) * radius},
				Normal:   end.normal,
				Color:    color,
			})
		}
		for i := 0; i < segments; i++ {
			next := uint32(i+1)%uint32(segments) + center + 1
			cur := uint32(i) + center + 1
			if end.normal[1] > 0 {
				m.Indices = append(m.Indices, center, next, cur)
			} else {
				m.Indices = append(m.Indices, center, cur, next)
			}
		}
	}

	return m
}

// TorusSegment returns an arc of a torus in the XY plane, centered at
// the origin. The arc sweeps from angle 0 counterclockwise through arc
// radians around the Z axis; a full 2*Pi closes the ring. segments is
// the step count along the arc, sides the step count around the tube.
func TorusSegment(majorRadius, minorRadius, arc float32, segments, sides int, color [3]float32) *Mesh {
	if segments < 1 {
		segments = 1
	}
	if sides < 3 {
		sides = 3
	}
	m := &Mesh{}

	ring := func(t float32) (center math.Vec3, verts []Vertex) {
		a := arc * t
		dir := math.Vec3{X: math.Cos(a), Y: math.Sin(a)}
		center = dir.Scale(majorRadius)
		for s := 0; s <= sides; s++ {
			b := 2 * math.Pi * float32(s) / float32(sides)
			// Tube normal: radial within the ring plane plus the Z
			// component around the tube.
			n := dir.Scale(math.Cos(b))
			n.Z = math.Sin(b)
			p := center.Add(n.Scale(minorRadius))
			verts = append(verts, Vertex{
				Position: [3]float32{p.X, p.Y, p.Z},
				Normal:   [3]float32{n.X, n.Y, n.Z},
				Color:    color,
			})
		}
		return center, verts
	}

	for i := 0; i <= segments; i++ {
		_, verts := ring(float32(i) / float32(segments))
		m.Vertices = append(m.Vertices, verts...)
	}

	stride := uint32(sides + 1)
	for i := 0; i < segments; i++ {
		row := uint32(i) * stride
		for s := 0; s < sides; s++ {
			a := row + uint32(s)
			b := a + 1
			c := a + stride
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	return m
}

// Cone returns a cone along the Y axis with its base at -height/2 and
// apex at +height/2.
func Cone(radius, height float32, segments int, color [3]float32) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	h := height / 2

	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float32(i) / float32(segments)
		a1 := 2 * math.Pi * float32(i+1) / float32(segments)
		am := (a0 + a1) / 2

		// Flat-shaded side triangle; the slant normal skips the exact
		// apex normal since the silhouette hides it anyway.
		slant := math.Vec3{X: math.Cos(am) * height, Y: radius, Z: math.Sin(am) * height}.Normalize()
		n := [3]float32{slant.X, slant.Y, slant.Z}

		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{math.Cos(a0) * radius, -h, math.Sin(a0) * radius}, Normal: n, Color: color},
			Vertex{Position: [3]float32{0, h, 0}, Normal: n, Color: color},
			Vertex{Position: [3]float32{math.Cos(a1) * radius, -h, math.Sin(a1) * radius}, Normal: n, Color: color},
		)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}

	// Base cap.
	down := [3]float32{0, -1, 0}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, -h, 0}, Normal: down, Color: color})
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float32(i) / float32(segments)
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{math.Cos(a) * radius, -h, math.Sin(a) * radius},
			Normal:   down,
			Color:    color,
		})
	}
	for i := 0; i < segments; i++ {
		cur := uint32(i) + center + 1
		next := uint32(i+1)%uint32(segments) + center + 1
		m.Indices = append(m.Indices, center, cur, next)
	}

	return m
}
