//go:build go1.23

package dlist

import "iter"

// All returns an index/element iterator over the list from front to back,
// for use with range. The list must not be structurally modified during
// iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := l.gen
		i := 0
		for n := l.front; n != nil; n = n.next {
			if !yield(i, n.elem) {
				return
			}
			l.checkGen(gen)
			i++
		}
	}
}

// Values returns an iterator over the list's elements from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for n := l.front; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
			l.checkGen(gen)
		}
	}
}

// Backward returns an iterator over the list's elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for n := l.back; n != nil; n = n.prev {
			if !yield(n.elem) {
				return
			}
			l.checkGen(gen)
		}
	}
}

// Collect returns a list of seq's elements in yield order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	l.AppendSeq(seq)
	return l
}

// AppendSeq appends seq's elements to the back of the list in yield order.
func (l *List[T]) AppendSeq(seq iter.Seq[T]) {
	for elem := range seq {
		l.PushBack(elem)
	}
}
