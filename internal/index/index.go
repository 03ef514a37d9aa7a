package index

// Index is an insertion-ordered map. Put keeps the original position of an
// existing key; Delete leaves the relative order of the rest unchanged.
type Index[K comparable, V any] interface {
	Put(key K, val V)
	Get(key K) (V, bool)
	Has(key K) bool
	Delete(key K) bool
	Values() []V
	Keys() []K
	Len() int
}

func New[K comparable, V any]() Index[K, V] {
	return &index[K, V]{pos: make(map[K]int)}
}

type entry[K comparable, V any] struct {
	key  K
	val  V
	live bool
}

// Deleted entries stay in place as tombstones until they outnumber the live
// ones, so Delete is amortized O(1).
type index[K comparable, V any] struct {
	pos     map[K]int
	entries []entry[K, V]
	dead    int
}

func (x *index[K, V]) Put(key K, val V) {
	if i, ok := x.pos[key]; ok {
		x.entries[i].val = val
		return
	}
	x.pos[key] = len(x.entries)
	x.entries = append(x.entries, entry[K, V]{key: key, val: val, live: true})
}

func (x *index[K, V]) Get(key K) (V, bool) {
	i, ok := x.pos[key]
	if !ok {
		var zero V
		return zero, false
	}
	return x.entries[i].val, true
}

func (x *index[K, V]) Has(key K) bool {
	_, ok := x.pos[key]
	return ok
}

func (x *index[K, V]) Delete(key K) bool {
	i, ok := x.pos[key]
	if !ok {
		return false
	}
	delete(x.pos, key)
	x.entries[i] = entry[K, V]{} // drop references
	x.dead++
	if x.dead > len(x.pos) {
		x.compact()
	}
	return true
}

func (x *index[K, V]) Values() []V {
	out := make([]V, 0, len(x.pos))
	for _, e := range x.entries {
		if e.live {
			out = append(out, e.val)
		}
	}
	return out
}

func (x *index[K, V]) Keys() []K {
	out := make([]K, 0, len(x.pos))
	for _, e := range x.entries {
		if e.live {
			out = append(out, e.key)
		}
	}
	return out
}

func (x *index[K, V]) Len() int { return len(x.pos) }

func (x *index[K, V]) compact() {
	live := make([]entry[K, V], 0, len(x.pos))
	for _, e := range x.entries {
		if e.live {
			x.pos[e.key] = len(live)
			live = append(live, e)
		}
	}
	x.entries = live
	x.dead = 0
}
