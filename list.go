// Package dlist provides a doubly-linked deque with O(1) push/pop at both
// ends and a cursor that can insert, remove, split, and splice at any
// interior position without re-traversal.
//
// A List is not safe for concurrent use. It may be handed off between
// goroutines, but simultaneous access must be guarded by an external lock.
// Within a single goroutine, at most one mutable view (a Cursor or an
// IterMut) should be live at a time; violating that is caught at runtime and
// panics rather than corrupting the structure.
package dlist

import (
	"fmt"
	"hash/maphash"
	"strings"

	"github.com/bradenaw/juniper/iterator"
	"golang.org/x/exp/constraints"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	elem T
}

// List is a doubly-linked list of T. The zero value is an empty list ready
// to use.
type List[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
	// gen is bumped on every structural mutation. Views (Iter, IterMut,
	// Cursor) snapshot it at creation and refuse to run once it has moved
	// on without them.
	gen uint64
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list containing elems in order, front to back.
func Of[T any](elems ...T) *List[T] {
	l := &List[T]{}
	l.Extend(elems...)
	return l
}

// FromIterator returns a list of iter's elements in yield order.
func FromIterator[T any](iter iterator.Iterator[T]) *List[T] {
	l := &List[T]{}
	l.ExtendIterator(iter)
	return l
}

func (l *List[T]) Len() int      { return l.size }
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// PushFront adds elem to the front of the list.
func (l *List[T]) PushFront(elem T) {
	n := &node[T]{next: l.front, elem: elem}
	if l.front != nil {
		l.front.prev = n
	} else {
		l.back = n
	}
	l.front = n
	l.size++
	l.gen++
}

// PushBack adds elem to the back of the list.
func (l *List[T]) PushBack(elem T) {
	n := &node[T]{prev: l.back, elem: elem}
	if l.back != nil {
		l.back.next = n
	} else {
		l.front = n
	}
	l.back = n
	l.size++
	l.gen++
}

// PopFront removes and returns the front element, or false if the list is
// empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	n := l.front
	l.front = n.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		l.back = nil
	}
	n.next = nil
	// Size is touched only after the header is fully rewired, so the list
	// is consistent on every exit path.
	l.size--
	l.gen++
	return n.elem, true
}

// PopBack removes and returns the back element, or false if the list is
// empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.back == nil {
		var zero T
		return zero, false
	}
	n := l.back
	l.back = n.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		l.front = nil
	}
	n.prev = nil
	l.size--
	l.gen++
	return n.elem, true
}

// Front returns a copy of the front element, or false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	return l.front.elem, true
}

// Back returns a copy of the back element, or false if the list is empty.
func (l *List[T]) Back() (T, bool) {
	if l.back == nil {
		var zero T
		return zero, false
	}
	return l.back.elem, true
}

// FrontRef returns a pointer to the front element, or nil if the list is
// empty. The pointer is valid until the element is removed from the list.
func (l *List[T]) FrontRef() *T {
	if l.front == nil {
		return nil
	}
	return &l.front.elem
}

// BackRef returns a pointer to the back element, or nil if the list is
// empty.
func (l *List[T]) BackRef() *T {
	if l.back == nil {
		return nil
	}
	return &l.back.elem
}

// Clear removes all elements. It unlinks every node individually so that an
// outstanding element pointer from FrontRef or an IterMut pins only its own
// node, not the entire chain.
func (l *List[T]) Clear() {
	n := l.front
	for n != nil {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.front = nil
	l.back = nil
	l.size = 0
	l.gen++
}

// Extend appends elems to the back of the list in order.
func (l *List[T]) Extend(elems ...T) {
	for _, elem := range elems {
		l.PushBack(elem)
	}
}

// ExtendIterator appends iter's elements to the back of the list in yield
// order.
func (l *List[T]) ExtendIterator(iter iterator.Iterator[T]) {
	for {
		elem, ok := iter.Next()
		if !ok {
			return
		}
		l.PushBack(elem)
	}
}

// Clone returns a new list with a copy of l's elements in order. Mutating
// either list afterwards does not affect the other.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	for n := l.front; n != nil; n = n.next {
		out.PushBack(n.elem)
	}
	return out
}

// String formats the list front to back, in the style of fmt for slices.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.front; n != nil; n = n.next {
		if n != l.front {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.elem)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	bn := b.front
	for an := a.front; an != nil; an = an.next {
		if an.elem != bn.elem {
			return false
		}
		bn = bn.next
	}
	return true
}

// EqualFunc reports whether a and b hold pairwise-equal elements in the same
// order, using eq to compare.
func EqualFunc[T any, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	bn := b.front
	for an := a.front; an != nil; an = an.next {
		if !eq(an.elem, bn.elem) {
			return false
		}
		bn = bn.next
	}
	return true
}

// Compare compares a and b lexicographically, element by element from the
// front. The shorter list is less if all shared elements are equal.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	an, bn := a.front, b.front
	for an != nil && bn != nil {
		if an.elem < bn.elem {
			return -1
		}
		if an.elem > bn.elem {
			return 1
		}
		an, bn = an.next, bn.next
	}
	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	}
	return 0
}

// CompareFunc is like Compare but uses cmp for elementwise comparison.
func CompareFunc[T any, U any](a *List[T], b *List[U], cmp func(T, U) int) int {
	an, bn := a.front, b.front
	for an != nil && bn != nil {
		if c := cmp(an.elem, bn.elem); c != 0 {
			return c
		}
		an, bn = an.next, bn.next
	}
	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	}
	return 0
}

// Hash hashes the list's length and then its elements front to back. Mixing
// in the length keeps different splits of the same element stream from
// colliding, e.g. ["he" "llo"] versus ["hello"]. Lists that are Equal hash
// identically under the same seed.
func Hash[T comparable](seed maphash.Seed, l *List[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	maphash.WriteComparable(&h, l.size)
	for n := l.front; n != nil; n = n.next {
		maphash.WriteComparable(&h, n.elem)
	}
	return h.Sum64()
}

// unlink removes n from the chain and nils its links. The caller adjusts
// size and gen.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.front = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.back = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// take empties l and returns its chain and length, for ownership transfer
// during a splice.
func (l *List[T]) take() (front, back *node[T], size int) {
	front, back, size = l.front, l.back, l.size
	l.front = nil
	l.back = nil
	l.size = 0
	l.gen++
	return front, back, size
}
