package scene

import (
	"testing"

	"github.com/driftlabs/driftline/pkg/math"
)

func almostEqual(a, b math.Vec3) bool {
	const eps = 1e-4
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNodeAddRemove(t *testing.T) {
	s := New()
	a := NewNode("a")
	b := NewNode("b")

	s.Add(a)
	a.Add(b)

	if b.Parent() != a {
		t.Fatal("child parent not set")
	}
	if len(a.Children()) != 1 {
		t.Fatalf("expected 1 child, got %d", len(a.Children()))
	}

	if !s.Remove(b) {
		t.Fatal("Remove returned false for attached node")
	}
	if b.Parent() != nil {
		t.Error("removed node still has a parent")
	}
	if s.Remove(b) {
		t.Error("Remove returned true for detached node")
	}
}

func TestNodeReparenting(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")

	a.Add(c)
	b.Add(c)

	if len(a.Children()) != 0 {
		t.Error("node still attached to old parent after re-parenting")
	}
	if c.Parent() != b {
		t.Error("node not attached to new parent")
	}
}

func TestWorldMatrixComposesParentFirst(t *testing.T) {
	parent := NewNode("parent")
	parent.Position = math.Vec3{X: 10, Y: 0, Z: 0}
	parent.Rotation.Y = math.Pi / 2

	child := NewNode("child")
	child.Position = math.Vec3{X: 0, Y: 0, Z: 1}
	parent.Add(child)

	// Parent rotates +90° around Y: the child's local +Z offset maps to
	// world +X, on top of the parent's translation.
	got := child.WorldPosition()
	want := math.Vec3{X: 11, Y: 0, Z: 0}
	if !almostEqual(got, want) {
		t.Errorf("world position = %v, want %v", got, want)
	}
}

func TestWalkSkipsInvisibleSubtrees(t *testing.T) {
	s := New()
	visible := NewNode("visible")
	hidden := NewNode("hidden")
	hiddenChild := NewNode("hidden-child")

	s.Add(visible)
	s.Add(hidden)
	hidden.Add(hiddenChild)
	hidden.Visible = false

	var seen []string
	s.Walk(func(n *Node, _ math.Mat4) {
		seen = append(seen, n.Name)
	})

	for _, name := range seen {
		if name == "hidden" || name == "hidden-child" {
			t.Errorf("walk visited invisible node %q", name)
		}
	}
	found := false
	for _, name := range seen {
		if name == "visible" {
			found = true
		}
	}
	if !found {
		t.Error("walk skipped a visible node")
	}
}

func TestBoxGeometry(t *testing.T) {
	m := Box(2, 4, 6, [3]float32{1, 0, 0})

	if len(m.Vertices) != 24 {
		t.Errorf("box has %d vertices, want 24", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("box has %d indices, want 36", len(m.Indices))
	}

	// All vertices on the surface of the half-extents.
	for i, v := range m.Vertices {
		if math.Abs(v.Position[0]) > 1 || math.Abs(v.Position[1]) > 2 || math.Abs(v.Position[2]) > 3 {
			t.Fatalf("vertex %d outside box extents: %v", i, v.Position)
		}
	}
}

func TestCylinderSegmentsScaleWithDetail(t *testing.T) {
	low := Cylinder(1, 1, 8, [3]float32{0, 0, 0})
	high := Cylinder(1, 1, 20, [3]float32{0, 0, 0})

	if len(high.Vertices) <= len(low.Vertices) {
		t.Errorf("high detail (%d verts) not above low detail (%d verts)",
			len(high.Vertices), len(low.Vertices))
	}
	if len(low.Indices)%3 != 0 || len(high.Indices)%3 != 0 {
		t.Error("cylinder index counts are not multiples of 3")
	}
}

func TestMeshAppendOffsetsIndices(t *testing.T) {
	a := Plane(1, 1, [3]float32{1, 1, 1})
	b := Plane(1, 1, [3]float32{1, 1, 1})
	vertCount := uint32(len(a.Vertices))

	a.Append(b)

	if len(a.Vertices) != 8 {
		t.Fatalf("expected 8 vertices after append, got %d", len(a.Vertices))
	}
	for _, idx := range a.Indices[6:] {
		if idx < vertCount {
			t.Fatalf("appended index %d not offset past %d", idx, vertCount)
		}
	}
}

func TestMeshTransformRotatesNormals(t *testing.T) {
	m := Plane(2, 2, [3]float32{1, 1, 1}) // normal +Y
	m.Transform(math.RotateX(math.Pi / 2))

	n := m.Vertices[0].Normal
	got := math.Vec3{X: n[0], Y: n[1], Z: n[2]}
	want := math.Vec3{X: 0, Y: 0, Z: 1}
	if !almostEqual(got, want) {
		t.Errorf("rotated normal = %v, want %v", got, want)
	}
}

func TestTorusSegmentSpansArc(t *testing.T) {
	segments, sides := 12, 8
	m := TorusSegment(5, 0.5, math.Pi, segments, sides, [3]float32{1, 1, 1})

	wantVerts := (segments + 1) * (sides + 1)
	if len(m.Vertices) != wantVerts {
		t.Fatalf("vertex count = %d, want %d", len(m.Vertices), wantVerts)
	}
	if len(m.Indices) != segments*sides*6 {
		t.Fatalf("index count = %d, want %d", len(m.Indices), segments*sides*6)
	}

	// A half arc in the XY plane stays at or above the tube's lowest
	// point and never dips below -minorRadius.
	for _, v := range m.Vertices {
		if v.Position[1] < -0.5001 {
			t.Fatalf("vertex below arc base: %v", v.Position)
		}
	}

	// End rings sit near the +X and -X axis respectively.
	first := m.Vertices[0].Position
	last := m.Vertices[len(m.Vertices)-1].Position
	if first[0] < 4 {
		t.Errorf("arc start x = %v, want near majorRadius", first[0])
	}
	if last[0] > -4 {
		t.Errorf("arc end x = %v, want near -majorRadius", last[0])
	}
}
