package tree

import (
	"fmt"

	"github.com/mibar/ptree/internal/stack"
)

// Validate walks the links from the root and checks them against the id index
// and the cached depth and height of every node. It returns an InvariantError
// describing the first inconsistency found.
func (t *Tree[T]) Validate() error {
	if t.root == nil {
		if ids := t.nodes.Keys(); len(ids) != 0 {
			return &InvariantError{ID: ids[0], Detail: fmt.Sprintf("empty tree indexes %d nodes", len(ids))}
		}
		return nil
	}
	if t.root.parent != nil {
		return &InvariantError{ID: t.root.id, Detail: "root has a parent"}
	}
	if t.root.depth != 0 {
		return &InvariantError{ID: t.root.id, Detail: fmt.Sprintf("root depth %d, want 0", t.root.depth)}
	}

	s := stack.New[*Node[T]]()
	s.Push(t.root)

	reached := make(map[string]struct{}, t.nodes.Len())
	for !s.IsEmpty() {
		n, _ := s.Pop()
		if _, dup := reached[n.id]; dup {
			return &InvariantError{ID: n.id, Detail: "node reachable more than once"}
		}
		reached[n.id] = struct{}{}
		if !t.indexed(n) {
			return &InvariantError{ID: n.id, Detail: "reachable node is not indexed"}
		}
		if n.owner != t {
			return &InvariantError{ID: n.id, Detail: "node is owned by another tree"}
		}

		h := 0
		for _, c := range n.children.Values() {
			if c.parent != n {
				return &InvariantError{ID: c.id, Detail: fmt.Sprintf("parent link does not point to %q", n.id)}
			}
			if c.depth != n.depth+1 {
				return &InvariantError{ID: c.id, Detail: fmt.Sprintf("depth %d, want %d", c.depth, n.depth+1)}
			}
			h = max(h, c.height+1)
			s.Push(c)
		}
		if n.height != h {
			return &InvariantError{ID: n.id, Detail: fmt.Sprintf("height %d, want %d", n.height, h)}
		}
	}

	if len(reached) == t.nodes.Len() {
		return nil
	}
	for _, id := range t.nodes.Keys() {
		if _, ok := reached[id]; !ok {
			return &InvariantError{ID: id, Detail: "indexed node is not reachable from the root"}
		}
	}
	return nil
}
