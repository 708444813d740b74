package dlist

import (
	"github.com/bradenaw/juniper/iterator"
)

// Iter is a double-ended read view over a list. It yields copies of the
// elements and satisfies juniper's iterator.Iterator.
//
// An Iter is invalidated by any structural change to its list; using an
// invalidated Iter panics.
type Iter[T any] struct {
	list *List[T]
	head *node[T]
	tail *node[T]
	n    int
	gen  uint64
}

var _ iterator.Iterator[int] = &Iter[int]{}

// Iter returns an iterator over l's elements from front to back.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{list: l, head: l.front, tail: l.back, n: l.size, gen: l.gen}
}

// Next yields the next element from the front end, or false when the two
// ends have met.
func (it *Iter[T]) Next() (T, bool) {
	it.list.checkGen(it.gen)
	if it.n == 0 {
		var zero T
		return zero, false
	}
	elem := it.head.elem
	it.head = it.head.next
	it.n--
	return elem, true
}

// NextBack yields the next element from the back end, or false when the two
// ends have met.
func (it *Iter[T]) NextBack() (T, bool) {
	it.list.checkGen(it.gen)
	if it.n == 0 {
		var zero T
		return zero, false
	}
	elem := it.tail.elem
	it.tail = it.tail.prev
	it.n--
	return elem, true
}

// Len returns the number of elements not yet yielded from either end.
func (it *Iter[T]) Len() int { return it.n }

// IterMut is a double-ended view over a list that yields pointers to the
// elements, so callers can modify them in place. Only one IterMut should be
// live per list at a time.
//
// An IterMut is invalidated by any structural change to its list; using an
// invalidated IterMut panics. Writing through yielded pointers is not a
// structural change.
type IterMut[T any] struct {
	list *List[T]
	head *node[T]
	tail *node[T]
	n    int
	gen  uint64
}

var _ iterator.Iterator[*int] = &IterMut[int]{}

// IterMut returns a mutating iterator over l's elements from front to back.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{list: l, head: l.front, tail: l.back, n: l.size, gen: l.gen}
}

// Next yields a pointer to the next element from the front end.
func (it *IterMut[T]) Next() (*T, bool) {
	it.list.checkGen(it.gen)
	if it.n == 0 {
		return nil, false
	}
	elem := &it.head.elem
	it.head = it.head.next
	it.n--
	return elem, true
}

// NextBack yields a pointer to the next element from the back end.
func (it *IterMut[T]) NextBack() (*T, bool) {
	it.list.checkGen(it.gen)
	if it.n == 0 {
		return nil, false
	}
	elem := &it.tail.elem
	it.tail = it.tail.prev
	it.n--
	return elem, true
}

// Len returns the number of elements not yet yielded from either end.
func (it *IterMut[T]) Len() int { return it.n }

// Drain is a consuming iterator: every element yielded is removed from the
// underlying list, so exhausting a Drain leaves the list empty. Unlike Iter
// and IterMut it stays valid across other mutations of the list, since each
// step is an ordinary pop.
type Drain[T any] struct {
	list *List[T]
}

var _ iterator.Iterator[int] = Drain[int]{}

// Drain returns a consuming iterator over l, front to back.
func (l *List[T]) Drain() Drain[T] {
	return Drain[T]{list: l}
}

// Next pops and returns the front element.
func (d Drain[T]) Next() (T, bool) { return d.list.PopFront() }

// NextBack pops and returns the back element.
func (d Drain[T]) NextBack() (T, bool) { return d.list.PopBack() }

// Len returns the number of elements remaining.
func (d Drain[T]) Len() int { return d.list.Len() }

func (l *List[T]) checkGen(gen uint64) {
	if l.gen != gen {
		panic("dlist: view used after its list was modified")
	}
}
