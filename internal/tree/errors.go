package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree operations. Every error returned by this package
// matches one of these with errors.Is.
var (
	// ErrAlreadyRooted is returned when a root is added to a tree that has one.
	ErrAlreadyRooted = errors.New("tree already has a root")

	// ErrUnknownParent is returned when the parent passed to AddNode is not
	// the node indexed in the tree under its id. A different node that only
	// carries an indexed id is unknown too; look the parent up with Tree.Get.
	ErrUnknownParent = errors.New("parent is not in the tree")

	// ErrDuplicateID is returned when a node's id is already indexed.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrUnknownNode is returned when a node or id is not present in the
	// scope of the operation: the tree for RemoveNode, the direct children
	// for Child, the siblings for Sibling.
	ErrUnknownNode = errors.New("node not found")

	// ErrRootRemoval is returned by RemoveNode for the current root.
	ErrRootRemoval = errors.New("root node cannot be removed")

	// ErrNodeAttached is returned when a node that already belongs to a tree
	// is added again.
	ErrNodeAttached = errors.New("node already belongs to a tree")

	ErrDepthLimit = errors.New("depth limit exceeded")
	ErrSizeLimit  = errors.New("size limit exceeded")

	// ErrCorrupt is returned by Validate when the index and the links disagree.
	ErrCorrupt = errors.New("tree invariant violated")
)

// NodeError records the operation and node id that failed.
type NodeError struct {
	Op  string
	ID  string
	Err error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// LimitError is returned when a mutation would push the tree past one of its
// configured Limits.
type LimitError struct {
	Limit string // "depth" or "size"
	Max   int
	Got   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("maximum tree %s %d exceeded: %d", e.Limit, e.Max, e.Got)
}

func (e *LimitError) Unwrap() error {
	if e.Limit == limitDepth {
		return ErrDepthLimit
	}
	return ErrSizeLimit
}

// InvariantError describes the first inconsistency found by Validate.
type InvariantError struct {
	ID     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("node %q: %s", e.ID, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrCorrupt }

func nodeErr(op, id string, err error) error {
	return &NodeError{Op: op, ID: id, Err: err}
}
