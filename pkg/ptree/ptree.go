// Package ptree provides an in-memory, single-root tree of labeled nodes with
// O(1) lookup by id and cached depth and height for every node.
//
// Nodes are created standalone and linked into a tree only through the tree
// itself, which keeps its id index and the parent/child links consistent on
// every mutation:
//
//	root := ptree.NewNode("Catalog", "catalog")
//	t := ptree.MustNew(root)
//	books := ptree.NewNode("Books", "books")
//	if err := t.AddNode(books, root); err != nil {
//		// errors.Is(err, ptree.ErrDuplicateID), ...
//	}
//
// Chaining, panicking on error:
//
//	t := ptree.MustNew[string]().
//		MustAddNode(root).
//		MustAddNode(books, root)
//
// Removing a node removes its whole subtree; removed nodes are standalone
// again and can join another tree. The root itself cannot be removed.
//
// # Ids
//
// A node's id is the explicit id passed to NewNode, else the payload's
// Hash() when it implements [Hasher], else a random UUID.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Guard the whole tree with one mutex
// when sharing it between goroutines: a structural mutation touches several
// nodes and the index at once.
package ptree

import "github.com/mibar/ptree/internal/tree"

type (
	// Node is a single vertex: id, value, parent link, children and cached
	// depth and height.
	Node[T any] = tree.Node[T]
	// Tree is the owning coordinator of a rooted node hierarchy and its id index.
	Tree[T any] = tree.Tree[T]
	// Hasher is implemented by payloads that carry their own stable identity.
	Hasher = tree.Hasher
	// NodeError records the operation and node id that failed.
	NodeError = tree.NodeError
	// LimitError is returned when a mutation would exceed the tree's [Limits].
	LimitError = tree.LimitError
	// InvariantError is returned by Tree.Validate.
	InvariantError = tree.InvariantError
	// Metrics exports tree size, height and mutation counts to Prometheus.
	Metrics = tree.Metrics
	// Limits configures safety limits for a tree.
	//
	// A nil field means "use the default constant". To disable a check, set
	// the field to [Ptr](0). Use [NoLimits] to disable every check.
	Limits = tree.Limits
)

var (
	ErrAlreadyRooted = tree.ErrAlreadyRooted
	ErrUnknownParent = tree.ErrUnknownParent
	ErrDuplicateID   = tree.ErrDuplicateID
	ErrUnknownNode   = tree.ErrUnknownNode
	ErrRootRemoval   = tree.ErrRootRemoval
	ErrNodeAttached  = tree.ErrNodeAttached
	ErrDepthLimit    = tree.ErrDepthLimit
	ErrSizeLimit     = tree.ErrSizeLimit
	ErrCorrupt       = tree.ErrCorrupt
)

const (
	// MaxDepth is the default maximum node depth (10 000).
	MaxDepth = tree.MaxDepth
	// MaxSize is the default maximum number of nodes in a tree (1 000 000).
	MaxSize = tree.MaxSize
)

// NewNode creates a standalone node holding value. At most one id may be
// given; an empty id counts as none.
func NewNode[T any](value T, id ...string) *Node[T] { return tree.NewNode(value, id...) }

// New creates an empty tree, or one rooted at root.
func New[T any](root ...*Node[T]) (*Tree[T], error) { return tree.New(root...) }

// MustNew is like [New] but panics on error.
func MustNew[T any](root ...*Node[T]) *Tree[T] { return tree.MustNew(root...) }

// NewMetrics creates tree collectors under namespace and registers them with
// reg. Attach them with Tree.WithMetrics.
var NewMetrics = tree.NewMetrics

// Ptr returns a pointer to v. Useful for constructing [Limits] inline:
//
//	ptree.Limits{MaxDepth: ptree.Ptr(64)}
func Ptr[T any](v T) *T { return &v }

// DefaultLimits returns the default limits with each field set explicitly.
// This is equivalent to the zero-value Limits{}.
//
// Current defaults:
//   - MaxDepth: 10 000
//   - MaxSize:  1 000 000
func DefaultLimits() Limits { return tree.DefaultLimits() }

// NoLimits returns a [Limits] value that disables every check.
func NoLimits() Limits { return tree.NoLimits() }
