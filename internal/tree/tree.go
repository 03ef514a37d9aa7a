package tree

import (
	"github.com/rs/zerolog"

	"github.com/mibar/ptree/internal/index"
	"github.com/mibar/ptree/internal/stack"
)

const (
	opAdd    = "add"
	opRemove = "remove"
)

// Tree is a single-root tree with O(1) node lookup by id. It is the only
// owner of link structure: every mutation updates the links and the id index
// in the same call, after all validation has passed.
//
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root  *Node[T]
	nodes index.Index[string, *Node[T]]

	limits  Limits
	log     zerolog.Logger
	metrics *Metrics
}

// New creates an empty tree, or a tree rooted at root when one is given.
// Panics if more than one root is provided.
func New[T any](root ...*Node[T]) (*Tree[T], error) {
	if len(root) > 1 {
		panic("single-root tree: at most one root allowed")
	}
	t := &Tree[T]{
		nodes: index.New[string, *Node[T]](),
		log:   zerolog.Nop(),
	}
	if len(root) == 1 {
		if err := t.AddNode(root[0]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](root ...*Node[T]) *Tree[T] {
	t, err := New(root...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tree[T]) WithLimits(l Limits) *Tree[T] {
	t.limits = l
	return t
}

func (t *Tree[T]) WithLogger(l zerolog.Logger) *Tree[T] {
	t.log = l
	return t
}

// WithMetrics attaches m and publishes the current size and height.
func (t *Tree[T]) WithMetrics(m *Metrics) *Tree[T] {
	t.metrics = m
	m.set(t.nodes.Len(), t.rootHeight())
	return t
}

// AddNode links node under parent. Without a parent, node becomes the root.
// Panics on nil arguments or if more than one parent is provided.
func (t *Tree[T]) AddNode(node *Node[T], parent ...*Node[T]) error {
	if node == nil {
		panic("cannot add a nil node")
	}
	if len(parent) > 1 {
		panic("single-parent tree: at most one parent allowed")
	}

	var p *Node[T]
	if len(parent) == 1 {
		if parent[0] == nil {
			panic("cannot add to a nil parent")
		}
		p = parent[0]
	}

	if err := t.validateAdd(node, p); err != nil {
		t.reject(opAdd, err)
		return err
	}

	pid := ""
	if p == nil {
		t.root = node
	} else {
		p.addChild(node)
		pid = p.id
	}
	node.owner = t
	t.nodes.Put(node.id, node)

	t.log.Debug().
		Str("id", node.id).
		Str("parent", pid).
		Int("depth", node.depth).
		Int("size", t.nodes.Len()).
		Msg("node added")
	t.metrics.observe(opAdd, t.nodes.Len(), t.rootHeight())
	return nil
}

// MustAddNode is like AddNode but panics on error. It returns the tree so
// calls can be chained.
func (t *Tree[T]) MustAddNode(node *Node[T], parent ...*Node[T]) *Tree[T] {
	if err := t.AddNode(node, parent...); err != nil {
		panic(err)
	}
	return t
}

func (t *Tree[T]) validateAdd(node, p *Node[T]) error {
	depth := 0
	if p == nil {
		if t.root != nil {
			return nodeErr(opAdd, node.id, ErrAlreadyRooted)
		}
	} else {
		if !t.indexed(p) {
			return nodeErr(opAdd, p.id, ErrUnknownParent)
		}
		depth = p.depth + 1
	}
	if t.nodes.Has(node.id) {
		return nodeErr(opAdd, node.id, ErrDuplicateID)
	}
	if node.owner != nil || node.parent != nil {
		return nodeErr(opAdd, node.id, ErrNodeAttached)
	}
	return t.limits.check(depth, t.nodes.Len()+1)
}

// RemoveNode removes node and its entire subtree. Every removed node becomes
// standalone again and may be added to any tree.
func (t *Tree[T]) RemoveNode(node *Node[T]) error {
	if node == nil {
		panic("cannot remove a nil node")
	}
	if !t.indexed(node) {
		err := nodeErr(opRemove, node.id, ErrUnknownNode)
		t.reject(opRemove, err)
		return err
	}
	if t.IsRoot(node) {
		err := nodeErr(opRemove, node.id, ErrRootRemoval)
		t.reject(opRemove, err)
		return err
	}

	pid := node.parent.id
	node.unlink()
	removed := t.release(node)

	t.log.Debug().
		Str("id", node.id).
		Str("parent", pid).
		Int("removed", removed).
		Int("size", t.nodes.Len()).
		Msg("node removed")
	t.metrics.observe(opRemove, t.nodes.Len(), t.rootHeight())
	return nil
}

// MustRemoveNode is like RemoveNode but panics on error.
func (t *Tree[T]) MustRemoveNode(node *Node[T]) *Tree[T] {
	if err := t.RemoveNode(node); err != nil {
		panic(err)
	}
	return t
}

// RemoveChildrenNodes removes every child subtree of parent. The parent stays
// in the tree as a childless node.
func (t *Tree[T]) RemoveChildrenNodes(parent *Node[T]) error {
	if parent == nil {
		panic("cannot remove children of a nil node")
	}
	if !t.indexed(parent) {
		err := nodeErr(opRemove, parent.id, ErrUnknownNode)
		t.reject(opRemove, err)
		return err
	}
	if !parent.HasChildren() {
		return nil
	}

	removed := 0
	for _, c := range parent.Children() {
		removed += t.release(c)
	}
	parent.clearChildren()

	t.log.Debug().
		Str("parent", parent.id).
		Int("removed", removed).
		Int("size", t.nodes.Len()).
		Msg("children removed")
	t.metrics.observe(opRemove, t.nodes.Len(), t.rootHeight())
	return nil
}

// release drops the subtree rooted at n from the index and resets every node
// in it. The link from n to its parent is left to the caller.
func (t *Tree[T]) release(n *Node[T]) int {
	s := stack.New[*Node[T]]()
	s.Push(n)

	count := 0
	for !s.IsEmpty() {
		cur, _ := s.Pop()
		s.Push(cur.children.Values()...)
		t.nodes.Delete(cur.id)
		cur.reset()
		count++
	}
	return count
}

func (t *Tree[T]) reject(op string, err error) {
	t.log.Debug().Err(err).Str("op", op).Msg("mutation rejected")
	t.metrics.rejected(op)
}

// indexed reports whether n itself, not just its id, is in the tree.
func (t *Tree[T]) indexed(n *Node[T]) bool {
	cur, ok := t.nodes.Get(n.id)
	return ok && cur == n
}

func (t *Tree[T]) rootHeight() int {
	if t.root == nil {
		return 0
	}
	return t.root.height
}

// Root returns nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Get returns nil if id is not in the tree.
func (t *Tree[T]) Get(id string) *Node[T] {
	n, _ := t.nodes.Get(id)
	return n
}

func (t *Tree[T]) Has(id string) bool { return t.nodes.Has(id) }
func (t *Tree[T]) Size() int          { return t.nodes.Len() }

// IsRoot compares ids with the current root. False for an empty tree.
func (t *Tree[T]) IsRoot(n *Node[T]) bool {
	return t.root != nil && t.root.Equals(n)
}

// Leaves returns the childless nodes. The root is never a leaf, so a
// single-node tree has none.
func (t *Tree[T]) Leaves() []*Node[T] {
	return t.filter(func(n *Node[T]) bool {
		return !n.HasChildren() && n != t.root
	})
}

// NonLeaves returns the nodes with at least one child.
func (t *Tree[T]) NonLeaves() []*Node[T] {
	return t.filter(func(n *Node[T]) bool { return n.HasChildren() })
}

// Nodes returns every node in insertion order, or only those at the given
// depth. Panics if more than one depth is provided.
func (t *Tree[T]) Nodes(depth ...int) []*Node[T] {
	if len(depth) > 1 {
		panic("at most one depth allowed")
	}
	if len(depth) == 0 {
		return t.nodes.Values()
	}
	d := depth[0]
	return t.filter(func(n *Node[T]) bool { return n.depth == d })
}

func (t *Tree[T]) Depth(n *Node[T]) int  { return n.depth }
func (t *Tree[T]) Height(n *Node[T]) int { return n.height }

func (t *Tree[T]) filter(keep func(*Node[T]) bool) []*Node[T] {
	var result []*Node[T]
	for _, n := range t.nodes.Values() {
		if keep(n) {
			result = append(result, n)
		}
	}
	return result
}
