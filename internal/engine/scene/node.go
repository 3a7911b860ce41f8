// Package scene provides a retained-mode 3D scene graph. Nodes carry a
// local transform and an optional mesh; the renderer walks the graph
// once per frame and draws whatever is visible.
package scene

import (
	"github.com/driftlabs/driftline/pkg/math"
)

// Node is a scene graph node. Transforms compose parent-first, so a
// child's world matrix is parent.World * child.Local.
type Node struct {
	Name string

	Position math.Vec3
	Rotation math.Vec3 // Euler angles in radians, applied Y then X then Z
	Scale    math.Vec3

	Mesh    *Mesh
	Visible bool

	parent   *Node
	children []*Node
}

// NewNode creates an empty, visible node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   math.Vec3{X: 1, Y: 1, Z: 1},
		Visible: true,
	}
}

// Add attaches a child node. A node already attached elsewhere is
// re-parented.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches a direct child. Returns false if child is not ours.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children. The slice is owned by the node.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalMatrix returns the node's local transform matrix.
func (n *Node) LocalMatrix() math.Mat4 {
	m := math.Translate(n.Position.X, n.Position.Y, n.Position.Z)
	if n.Rotation.Y != 0 {
		m = m.Mul(math.RotateY(n.Rotation.Y))
	}
	if n.Rotation.X != 0 {
		m = m.Mul(math.RotateX(n.Rotation.X))
	}
	if n.Rotation.Z != 0 {
		m = m.Mul(math.RotateZ(n.Rotation.Z))
	}
	if n.Scale != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		m = m.Mul(math.Scale(n.Scale.X, n.Scale.Y, n.Scale.Z))
	}
	return m
}

// WorldMatrix returns the node's transform composed with all ancestors.
func (n *Node) WorldMatrix() math.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul(n.LocalMatrix())
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.WorldMatrix().TransformPoint(math.Vec3{})
}
