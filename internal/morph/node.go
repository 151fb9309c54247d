package morph

// Node is one element of a model graph. Mesh is nil for grouping nodes.
type Node struct {
	Name     string
	Mesh     *Mesh
	Children []*Node
}

// Traverse visits n and its descendants depth-first. Safe on a nil node.
func (n *Node) Traverse(fn func(node any)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// MorphDictionary returns the mesh's target dictionary, or nil.
func (n *Node) MorphDictionary() map[string]int {
	if n.Mesh == nil {
		return nil
	}
	return n.Mesh.Dict
}

// MorphInfluences returns the mesh's influence slice, or nil.
func (n *Node) MorphInfluences() []float32 {
	if n.Mesh == nil {
		return nil
	}
	return n.Mesh.Influences
}

// MarkMorphsDirty flags the mesh for re-deformation.
func (n *Node) MarkMorphsDirty() {
	if n.Mesh != nil {
		n.Mesh.Dirty = true
	}
}

// Meshes collects every mesh below n in traversal order.
func (n *Node) Meshes() []*Mesh {
	var out []*Mesh
	n.Traverse(func(node any) {
		if m := node.(*Node).Mesh; m != nil {
			out = append(out, m)
		}
	})
	return out
}

// Clone deep-copies the influence state and shares immutable geometry,
// so each copy can be bound independently.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Name: n.Name}
	if n.Mesh != nil {
		m := *n.Mesh
		m.Influences = make([]float32, len(n.Mesh.Influences))
		copy(m.Influences, n.Mesh.Influences)
		c.Mesh = &m
	}
	for _, ch := range n.Children {
		c.Children = append(c.Children, ch.Clone())
	}
	return c
}
