package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Body string
}

func newItems() *collection[item] {
	return newCollection(func(i item) string { return i.ID })
}

func TestCollection_ConfirmReplacesPendingOnly(t *testing.T) {
	c := newItems()
	c.appendIfAbsent(item{ID: "a", Body: "old"})
	c.prependPending("tmp-1", item{ID: "tmp-1", Body: "draft"})

	require.True(t, c.confirm("tmp-1", item{ID: "real-1", Body: "draft"}))
	require.Equal(t, []item{{ID: "real-1", Body: "draft"}, {ID: "a", Body: "old"}}, c.values())

	// the temporary ID is gone, confirming again must not match anything
	require.False(t, c.confirm("tmp-1", item{ID: "real-2", Body: "again"}))
	// confirmed records are not confirmable either
	require.False(t, c.confirm("real-1", item{ID: "real-3", Body: "again"}))
	require.Equal(t, 2, c.len())
}

func TestCollection_RestoreRejectsStaleSequence(t *testing.T) {
	c := newItems()
	c.appendIfAbsent(item{ID: "a", Body: "v0"})

	prev1, seq1, ok := c.replace(item{ID: "a", Body: "v1"})
	require.True(t, ok)
	require.Equal(t, "v0", prev1.Body)

	// a second write lands while the first store call is still in flight
	_, _, ok = c.replace(item{ID: "a", Body: "v2"})
	require.True(t, ok)

	// the first write's rollback is stale now and must lose
	require.False(t, c.restore("a", prev1, seq1))
	got, _ := c.get("a")
	require.Equal(t, "v2", got.Body)
}

func TestCollection_RestoreUndoesReplace(t *testing.T) {
	c := newItems()
	c.appendIfAbsent(item{ID: "a", Body: "v0"})

	prev, seq, ok := c.replace(item{ID: "a", Body: "v1"})
	require.True(t, ok)
	require.True(t, c.restore("a", prev, seq))

	got, _ := c.get("a")
	require.Equal(t, "v0", got.Body)
}

func TestCollection_AppendIfAbsentSkipsKnownIDs(t *testing.T) {
	c := newItems()
	c.appendIfAbsent(item{ID: "a"}, item{ID: "b"})
	c.appendIfAbsent(item{ID: "b"}, item{ID: "c"})

	require.Equal(t, []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}, c.values())
}

func TestCollection_Drop(t *testing.T) {
	c := newItems()
	c.appendIfAbsent(item{ID: "a"}, item{ID: "b"})

	require.True(t, c.drop("a"))
	require.False(t, c.drop("a"))
	require.Equal(t, []item{{ID: "b"}}, c.values())
}
