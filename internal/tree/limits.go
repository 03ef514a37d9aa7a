package tree

const (
	// MaxDepth is the default maximum node depth.
	MaxDepth = 10_000

	// MaxSize is the default maximum number of nodes in one tree.
	MaxSize = 1_000_000
)

const (
	limitDepth = "depth"
	limitSize  = "size"
)

// Limits configures safety limits for a tree.
//
// A nil field means "use the default constant". Setting a field to Ptr(0)
// disables that check.
type Limits struct {
	MaxDepth *int
	MaxSize  *int
}

func Ptr[T any](v T) *T { return &v }

// DefaultLimits returns the defaults with each field set explicitly.
func DefaultLimits() Limits {
	return Limits{MaxDepth: Ptr(MaxDepth), MaxSize: Ptr(MaxSize)}
}

// NoLimits disables every check.
func NoLimits() Limits {
	return Limits{MaxDepth: Ptr(0), MaxSize: Ptr(0)}
}

func (l Limits) maxDepth() int { return resolve(l.MaxDepth, MaxDepth) }
func (l Limits) maxSize() int  { return resolve(l.MaxSize, MaxSize) }

// check reports a LimitError if a node at depth would exceed a limit once the
// tree holds size nodes.
func (l Limits) check(depth, size int) error {
	if m := l.maxDepth(); m > 0 && depth > m {
		return &LimitError{Limit: limitDepth, Max: m, Got: depth}
	}
	if m := l.maxSize(); m > 0 && size > m {
		return &LimitError{Limit: limitSize, Max: m, Got: size}
	}
	return nil
}

func resolve(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
