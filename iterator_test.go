package dlist

import (
	"testing"

	"github.com/bradenaw/juniper/iterator"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIter(t *testing.T) {
	l := Of(1, 2, 3)
	it := l.Iter()
	require.Equal(t, 3, it.Len())

	for _, want := range []int{1, 2, 3} {
		got, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, it.Len())
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.NextBack()
	require.False(t, ok)
}

func TestIterDoubleEnded(t *testing.T) {
	it := Of(1, 2, 3, 4, 5).Iter()

	next := func() int { v, _ := it.Next(); return v }
	nextBack := func() int { v, _ := it.NextBack(); return v }

	// The two ends converge; termination is by count, not by pointer
	// comparison, so the meeting point is handled cleanly.
	require.Equal(t, 1, next())
	require.Equal(t, 5, nextBack())
	require.Equal(t, 2, next())
	require.Equal(t, 4, nextBack())
	require.Equal(t, 1, it.Len())
	require.Equal(t, 3, next())

	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.NextBack()
	require.False(t, ok)
}

func TestIterReversedTwice(t *testing.T) {
	l := Of(1, 2, 3, 4)

	var reversed []int
	it := l.Iter()
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		reversed = append(reversed, v)
	}
	require.Equal(t, []int{4, 3, 2, 1}, reversed)

	// Reversing the reversal reproduces the original order.
	var again []int
	for i := len(reversed) - 1; i >= 0; i-- {
		again = append(again, reversed[i])
	}
	if diff := cmp.Diff(iterator.Collect[int](l.Iter()), again); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestIterMut(t *testing.T) {
	l := Of(1, 2, 3)
	it := l.IterMut()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		*p *= 2
	}
	checkList(t, l, 2, 4, 6)
}

func TestIterMutDoubleEnded(t *testing.T) {
	l := Of(1, 2, 3)
	it := l.IterMut()

	p, ok := it.NextBack()
	require.True(t, ok)
	*p = 30
	p, ok = it.Next()
	require.True(t, ok)
	*p = 10
	require.Equal(t, 1, it.Len())

	checkList(t, l, 10, 2, 30)
}

func TestDrain(t *testing.T) {
	l := Of(1, 2, 3, 4)
	d := l.Drain()
	require.Equal(t, 4, d.Len())

	v, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = d.NextBack()
	require.True(t, ok)
	require.Equal(t, 4, v)

	require.Equal(t, []int{2, 3}, iterator.Collect[int](d))
	_, ok = d.Next()
	require.False(t, ok)
	checkList(t, l)
}

func TestDrainCollect(t *testing.T) {
	l := Of(5, 6, 7)
	got := iterator.Collect[int](l.Drain())
	require.Equal(t, []int{5, 6, 7}, got)
	checkList(t, l)
}

func TestIterEmpty(t *testing.T) {
	l := New[string]()

	_, ok := l.Iter().Next()
	require.False(t, ok)
	_, ok = l.IterMut().NextBack()
	require.False(t, ok)
	_, ok = l.Drain().Next()
	require.False(t, ok)
}
