package service

// record wraps one collection member. It is either pending, keyed by the
// temporary ID handed out at speculative insert, or confirmed under the ID the
// store assigned. seq increments on every local write so a slow store reply
// can tell that newer state landed while it was in flight.
type record[T any] struct {
	id      string
	pending bool
	seq     uint64
	val     T
}

// collection is an ordered set of records, newest first. It is not safe for
// concurrent use on its own; the ledger's mutex guards it.
type collection[T any] struct {
	key  func(T) string
	recs []record[T]
}

func newCollection[T any](key func(T) string) *collection[T] {
	return &collection[T]{key: key}
}

func (c *collection[T]) len() int { return len(c.recs) }

func (c *collection[T]) values() []T {
	out := make([]T, len(c.recs))
	for i := range c.recs {
		out[i] = c.recs[i].val
	}
	return out
}

func (c *collection[T]) index(id string) int {
	for i := range c.recs {
		if c.recs[i].id == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.recs[i].val, true
	}
	var zero T
	return zero, false
}

// prependPending makes a speculative entry visible at the head of the
// collection before the store has confirmed it.
func (c *collection[T]) prependPending(tempID string, v T) {
	c.recs = append([]record[T]{{id: tempID, pending: true, val: v}}, c.recs...)
}

// confirm swaps the pending record matched by its temporary ID for the
// store-confirmed value. At most one record is replaced; order is kept.
func (c *collection[T]) confirm(tempID string, v T) bool {
	i := c.index(tempID)
	if i < 0 || !c.recs[i].pending {
		return false
	}
	c.recs[i] = record[T]{id: c.key(v), seq: c.recs[i].seq + 1, val: v}
	return true
}

func (c *collection[T]) drop(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.recs = append(c.recs[:i], c.recs[i+1:]...)
	return true
}

// replace installs v over the record carrying the same ID. It returns the
// previous value and the sequence number the caller must present to restore it.
func (c *collection[T]) replace(v T) (prev T, seq uint64, ok bool) {
	i := c.index(c.key(v))
	if i < 0 {
		var zero T
		return zero, 0, false
	}
	prev = c.recs[i].val
	c.recs[i].val = v
	c.recs[i].seq++
	return prev, c.recs[i].seq, true
}

// restore undoes a replace, unless a newer write already bumped the sequence:
// a stale store reply must not clobber state it did not produce.
func (c *collection[T]) restore(id string, prev T, seq uint64) bool {
	i := c.index(id)
	if i < 0 || c.recs[i].seq != seq {
		return false
	}
	c.recs[i].val = prev
	c.recs[i].seq++
	return true
}

// appendIfAbsent adds confirmed records at the tail, skipping IDs the
// collection already holds. Page fetches overlap after optimistic adds.
func (c *collection[T]) appendIfAbsent(vs ...T) {
	for _, v := range vs {
		if c.index(c.key(v)) >= 0 {
			continue
		}
		c.recs = append(c.recs, record[T]{id: c.key(v), val: v})
	}
}
