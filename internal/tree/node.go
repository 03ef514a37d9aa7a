package tree

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/mibar/ptree/internal/index"
)

// Hasher is implemented by payloads that carry their own stable identity.
// A non-empty Hash is used as the node id when no explicit id is given.
type Hasher interface {
	Hash() string
}

// Node is a single vertex. Link structure (parent, children, depth, height)
// is only changed by the Tree the node belongs to.
type Node[T any] struct {
	id     string
	value  T
	depth  int
	height int

	parent   *Node[T]
	children index.Index[string, *Node[T]]
	owner    *Tree[T]
}

// NewNode creates a standalone node. The id is the explicit id when given and
// non-empty, else the payload's Hash, else a random UUID.
// Panics if more than one id is provided.
func NewNode[T any](value T, id ...string) *Node[T] {
	if len(id) > 1 {
		panic("a node has exactly one id")
	}
	return &Node[T]{
		id:       assignID(value, id),
		value:    value,
		children: index.New[string, *Node[T]](),
	}
}

func assignID[T any](value T, id []string) string {
	if len(id) == 1 && id[0] != "" {
		return id[0]
	}
	if h, ok := any(value).(Hasher); ok && !isNilPointer(h) {
		if s := h.Hash(); s != "" {
			return s
		}
	}
	return uuid.NewString()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (n *Node[T]) ID() string      { return n.id }
func (n *Node[T]) Value() T        { return n.value }
func (n *Node[T]) SetValue(v T)    { n.value = v }
func (n *Node[T]) Depth() int      { return n.depth }
func (n *Node[T]) Height() int     { return n.height }
func (n *Node[T]) HasParent() bool { return n.parent != nil }

// Parent returns nil for a root or detached node.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

func (n *Node[T]) HasChildren() bool   { return n.children.Len() > 0 }
func (n *Node[T]) ChildrenCount() int  { return n.children.Len() }
func (n *Node[T]) Children() []*Node[T] { return n.children.Values() }

// Child returns the direct child with the given id.
func (n *Node[T]) Child(id string) (*Node[T], error) {
	c, ok := n.children.Get(id)
	if !ok {
		return nil, nodeErr("child", id, ErrUnknownNode)
	}
	return c, nil
}

func (n *Node[T]) HasSiblings() bool { return n.SiblingsCount() > 0 }

func (n *Node[T]) SiblingsCount() int {
	if n.parent == nil {
		return 0
	}
	return n.parent.children.Len() - 1
}

// Siblings returns the parent's other children in insertion order.
func (n *Node[T]) Siblings() []*Node[T] {
	if n.parent == nil {
		return nil
	}
	all := n.parent.children.Values()
	out := make([]*Node[T], 0, len(all)-1)
	for _, s := range all {
		if s != n {
			out = append(out, s)
		}
	}
	return out
}

// Sibling returns the sibling with the given id. A node is not its own sibling.
func (n *Node[T]) Sibling(id string) (*Node[T], error) {
	if n.parent == nil || id == n.id {
		return nil, nodeErr("sibling", id, ErrUnknownNode)
	}
	s, ok := n.parent.children.Get(id)
	if !ok {
		return nil, nodeErr("sibling", id, ErrUnknownNode)
	}
	return s, nil
}

// Equals compares identity only: two nodes are equal when their ids are.
func (n *Node[T]) Equals(other *Node[T]) bool {
	return other != nil && n.id == other.id
}

func (n *Node[T]) addChild(c *Node[T]) {
	n.children.Put(c.id, c)
	c.parent = n
	c.setDepth(n.depth + 1)
	n.raiseHeight(c.height + 1)
}

// unlink detaches n from its parent. Children stay attached to n.
func (n *Node[T]) unlink() {
	if p := n.parent; p != nil {
		n.parent = nil
		p.removeChild(n)
	}
	n.depth = 0
}

func (n *Node[T]) removeChild(c *Node[T]) {
	if cur, ok := n.children.Get(c.id); !ok || cur != c {
		return
	}
	n.children.Delete(c.id)
	if c.parent == n {
		c.parent = nil
	}
	// Only the tallest child can lower the height.
	if c.height+1 == n.height {
		n.recomputeHeight()
	}
}

// clearChildren unlinks every child of n at once and recomputes heights a
// single time.
func (n *Node[T]) clearChildren() {
	for _, c := range n.children.Values() {
		if c.parent == n {
			c.parent = nil
		}
	}
	n.children = index.New[string, *Node[T]]()
	n.setHeight(0)
}

// reset returns n to the standalone state of a fresh node.
func (n *Node[T]) reset() {
	n.parent = nil
	n.children = index.New[string, *Node[T]]()
	n.depth = 0
	n.height = 0
	n.owner = nil
}

// setDepth sets the depth of n and shifts its descendants to match.
func (n *Node[T]) setDepth(d int) {
	n.depth = d
	for _, c := range n.children.Values() {
		c.setDepth(d + 1)
	}
}

// setHeight overrides the cached height of n and brings every ancestor back
// to 1 + max(child heights).
func (n *Node[T]) setHeight(h int) {
	n.height = h
	if n.parent != nil {
		n.parent.recomputeHeight()
	}
}

// raiseHeight lifts n and its ancestors so that n.height >= h, stopping at the
// first ancestor that is already tall enough.
func (n *Node[T]) raiseHeight(h int) {
	for cur := n; cur != nil && cur.height < h; cur = cur.parent {
		cur.height = h
		h++
	}
}

// recomputeHeight walks up from n while heights change.
func (n *Node[T]) recomputeHeight() {
	for cur := n; cur != nil; cur = cur.parent {
		h := cur.childHeight()
		if h == cur.height {
			return
		}
		cur.height = h
	}
}

func (n *Node[T]) childHeight() int {
	h := 0
	for _, c := range n.children.Values() {
		if c.height+1 > h {
			h = c.height + 1
		}
	}
	return h
}
