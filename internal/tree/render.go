package tree

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"

	"github.com/mibar/ptree/internal/stack"
)

// Render writes an indented text view of the tree to w, one node per line as
// "id: value", children in insertion order. An empty tree writes nothing.
func (t *Tree[T]) Render(w io.Writer) error {
	if t.root == nil {
		return nil
	}

	root := gtree.NewRoot(label(t.root))
	s := stack.New[renderItem[T]]()
	s.Push(renderItem[T]{node: t.root, out: root})

	for !s.IsEmpty() {
		it, _ := s.Pop()
		for _, c := range it.node.children.Values() {
			s.Push(renderItem[T]{node: c, out: it.out.Add(label(c))})
		}
	}

	return gtree.OutputFromRoot(w, root)
}

type renderItem[T any] struct {
	node *Node[T]
	out  *gtree.Node
}

func label[T any](n *Node[T]) string {
	return fmt.Sprintf("%s: %v", n.id, n.value)
}
