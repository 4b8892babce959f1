package panes

import "fmt"

// Node is anything that can draw itself into the current canvas area.
// Render must leave the canvas area stack as it found it.
type Node interface {
	Render(c *Canvas)
}

// container is implemented by nodes that own child nodes.
type container interface {
	children() []Node
}

// contains reports whether target is root or one of its descendants.
func contains(root, target Node) bool {
	if root == target {
		return true
	}
	if p, ok := root.(container); ok {
		for _, child := range p.children() {
			if contains(child, target) {
				return true
			}
		}
	}
	return false
}

// mustAdopt panics when adding child to parent would create a cycle.
func mustAdopt(parent, child Node) {
	if child == nil {
		panic("panes: nil child node")
	}
	if contains(child, parent) {
		panic(fmt.Sprintf("panes: adding %T would make it its own descendant", child))
	}
}
