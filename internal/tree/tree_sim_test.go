package tree

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTreeSims(t *testing.T) {
	rapid.Check(t, testTreeSims)
}

func FuzzTree(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testTreeSims))
}

func testTreeSims(t *rapid.T) {
	root := NewNode(0, "root")
	sim := &SimMachine{
		tree:    MustNew(root),
		parents: map[string]string{"root": ""},
	}

	t.Repeat(map[string]func(*rapid.T){
		"":               sim.Check,
		"Add":            sim.Add,
		"AddRoot":        sim.AddRoot,
		"Remove":         sim.Remove,
		"RemoveChildren": sim.RemoveChildren,
		"SetValue":       sim.SetValue,
	})
}

// SimMachine drives a tree with random mutations and compares it against a
// plain child -> parent map.
type SimMachine struct {
	tree *Tree[int]
	// parents maps every id expected in the tree to its parent id; the root
	// maps to "".
	parents map[string]string
}

func (s *SimMachine) Check(t *rapid.T) {
	require.NoError(t, s.tree.Validate())
	require.Equal(t, len(s.parents), s.tree.Size())

	children := s.children()
	for id, pid := range s.parents {
		n := s.tree.Get(id)
		require.NotNil(t, n, "missing %s", id)
		if pid == "" {
			require.True(t, s.tree.IsRoot(n))
		} else {
			require.Equal(t, pid, n.Parent().ID())
		}
		require.Equal(t, s.depth(id), n.Depth(), "depth of %s", id)
		require.Equal(t, s.height(id, children), n.Height(), "height of %s", id)
		require.Equal(t, len(children[id]), n.ChildrenCount())
	}

	leaves := []string{}
	for id, pid := range s.parents {
		if pid != "" && len(children[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	slices.Sort(leaves)
	require.Equal(t, leaves, sortedIDs(s.tree.Leaves()))
}

func (s *SimMachine) Add(t *rapid.T) {
	pid := rapid.SampledFrom(s.ids()).Draw(t, "parent")
	// A small id space makes duplicates likely.
	id := fmt.Sprintf("n%d", rapid.IntRange(0, 40).Draw(t, "id"))
	value := rapid.Int().Draw(t, "value")

	size := s.tree.Size()
	err := s.tree.AddNode(NewNode(value, id), s.tree.Get(pid))
	if _, exists := s.parents[id]; exists {
		require.ErrorIs(t, err, ErrDuplicateID)
		require.Equal(t, size, s.tree.Size())
		return
	}
	require.NoError(t, err)
	s.parents[id] = pid
}

func (s *SimMachine) AddRoot(t *rapid.T) {
	id := fmt.Sprintf("r%d", rapid.IntRange(0, 3).Draw(t, "id"))
	require.ErrorIs(t, s.tree.AddNode(NewNode(0, id)), ErrAlreadyRooted)
}

func (s *SimMachine) Remove(t *rapid.T) {
	id := rapid.SampledFrom(s.ids()).Draw(t, "id")
	n := s.tree.Get(id)

	if s.parents[id] == "" {
		require.ErrorIs(t, s.tree.RemoveNode(n), ErrRootRemoval)
		return
	}

	gone := s.subtree(id)
	require.NoError(t, s.tree.RemoveNode(n))
	for _, g := range gone {
		require.False(t, s.tree.Has(g), "%s still indexed", g)
		require.Nil(t, s.tree.Get(g))
		delete(s.parents, g)
	}
	require.False(t, n.HasParent())
	require.False(t, n.HasChildren())

	require.ErrorIs(t, s.tree.RemoveNode(n), ErrUnknownNode)
}

func (s *SimMachine) RemoveChildren(t *rapid.T) {
	id := rapid.SampledFrom(s.ids()).Draw(t, "id")

	gone := s.subtree(id)
	require.NoError(t, s.tree.RemoveChildrenNodes(s.tree.Get(id)))
	for _, g := range gone {
		if g == id {
			continue
		}
		require.False(t, s.tree.Has(g), "%s still indexed", g)
		delete(s.parents, g)
	}
	require.True(t, s.tree.Has(id))
	require.Equal(t, 0, s.tree.Get(id).Height())
}

func (s *SimMachine) SetValue(t *rapid.T) {
	id := rapid.SampledFrom(s.ids()).Draw(t, "id")
	v := rapid.Int().Draw(t, "value")
	n := s.tree.Get(id)
	n.SetValue(v)
	require.Equal(t, v, s.tree.Get(id).Value())
}

func (s *SimMachine) ids() []string {
	out := make([]string, 0, len(s.parents))
	for id := range s.parents {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *SimMachine) children() map[string][]string {
	out := make(map[string][]string, len(s.parents))
	for id, pid := range s.parents {
		if pid != "" {
			out[pid] = append(out[pid], id)
		}
	}
	return out
}

func (s *SimMachine) depth(id string) int {
	d := 0
	for pid := s.parents[id]; pid != ""; pid = s.parents[pid] {
		d++
	}
	return d
}

func (s *SimMachine) height(id string, children map[string][]string) int {
	h := 0
	for _, c := range children[id] {
		h = max(h, s.height(c, children)+1)
	}
	return h
}

// subtree returns id and all its descendants.
func (s *SimMachine) subtree(id string) []string {
	children := s.children()
	out := []string{id}
	for i := 0; i < len(out); i++ {
		out = append(out, children[out[i]]...)
	}
	return out
}

func sortedIDs[T any](nodes []*Node[T]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	slices.Sort(out)
	return out
}
