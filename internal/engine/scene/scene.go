package scene

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// Scene owns the node graph plus the frame-level lighting parameters
// the renderer needs.
type Scene struct {
	root *Node

	// Directional light, set once at level build.
	SunDir  math.Vec3
	Ambient [3]float32
	Diffuse [3]float32

	// Sky clear color.
	ClearColor [3]float32
}

// New creates a scene with neutral daylight lighting.
func New() *Scene {
	return &Scene{
		root:       NewNode("root"),
		SunDir:     math.Vec3{X: 0.3, Y: 0.8, Z: 0.5}.Normalize(),
		Ambient:    [3]float32{0.45, 0.45, 0.5},
		Diffuse:    [3]float32{0.85, 0.82, 0.75},
		ClearColor: [3]float32{0.53, 0.72, 0.92},
	}
}

// Root returns the graph root.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches a node to the root.
func (s *Scene) Add(n *Node) {
	s.root.Add(n)
}

// Remove detaches a node from its parent, wherever it sits in the
// graph. Returns false if the node was not attached.
func (s *Scene) Remove(n *Node) bool {
	if n == nil || n.parent == nil {
		return false
	}
	return n.parent.Remove(n)
}

// Walk calls fn for every visible node in the graph, depth-first, with
// the node's world matrix. Children of an invisible node are skipped.
func (s *Scene) Walk(fn func(n *Node, world math.Mat4)) {
	s.walk(s.root, math.Identity(), fn)
}

func (s *Scene) walk(n *Node, parentWorld math.Mat4, fn func(*Node, math.Mat4)) {
	if !n.Visible {
		return
	}
	world := parentWorld.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		s.walk(c, world, fn)
	}
}

// Dispose releases the GL resources of every mesh in the graph.
func (s *Scene) Dispose() {
	s.disposeNode(s.root)
}

func (s *Scene) disposeNode(n *Node) {
	if n.Mesh != nil {
		n.Mesh.Dispose()
	}
	for _, c := range n.children {
		s.disposeNode(c)
	}
}
