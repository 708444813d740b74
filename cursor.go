package dlist

// Cursor is a seekable position between the elements of a list, able to edit
// the structure in O(1) at wherever it points. A cursor is either on a node,
// in which case Index reports the node's position, or at the "ghost": the
// boundary between the list's back and front, which is also where a fresh
// cursor starts. Walking off either real end lands on the ghost, and moving
// on from the ghost wraps around to the opposite end, so the cursor sees the
// list as circular even though the list itself is not.
//
// A cursor borrows its list exclusively. Mutating the list by any other
// means while the cursor is live invalidates it, and using an invalidated
// cursor panics.
type Cursor[T any] struct {
	list *List[T]
	cur  *node[T] // nil means the ghost position
	idx  int      // meaningful only when cur != nil
	gen  uint64
}

// Cursor returns a cursor over l, starting at the ghost position.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l, gen: l.gen}
}

// Index returns the position of the cursor's node, counting from the front,
// or false if the cursor is at the ghost.
func (c *Cursor[T]) Index() (int, bool) {
	if c.cur == nil {
		return 0, false
	}
	return c.idx, true
}

// MoveNext moves the cursor one step toward the back. From the last node it
// lands on the ghost; from the ghost it lands on the front node, or stays
// put if the list is empty.
func (c *Cursor[T]) MoveNext() {
	c.list.checkGen(c.gen)
	if c.cur != nil {
		c.cur = c.cur.next
		c.idx++
	} else if c.list.front != nil {
		c.cur = c.list.front
		c.idx = 0
	}
}

// MovePrev moves the cursor one step toward the front. From the first node
// it lands on the ghost; from the ghost it lands on the back node, or stays
// put if the list is empty.
func (c *Cursor[T]) MovePrev() {
	c.list.checkGen(c.gen)
	if c.cur != nil {
		c.cur = c.cur.prev
		c.idx--
	} else if c.list.back != nil {
		c.cur = c.list.back
		c.idx = c.list.size - 1
	}
}

// Current returns a pointer to the element the cursor is on, or nil at the
// ghost.
func (c *Cursor[T]) Current() *T {
	c.list.checkGen(c.gen)
	if c.cur == nil {
		return nil
	}
	return &c.cur.elem
}

// PeekNext returns a pointer to the element one step toward the back without
// moving the cursor. From the ghost it sees the front element. It returns
// nil only when there is no such element.
func (c *Cursor[T]) PeekNext() *T {
	c.list.checkGen(c.gen)
	n := c.list.front
	if c.cur != nil {
		n = c.cur.next
	}
	if n == nil {
		return nil
	}
	return &n.elem
}

// PeekPrev returns a pointer to the element one step toward the front
// without moving the cursor. From the ghost it sees the back element.
func (c *Cursor[T]) PeekPrev() *T {
	c.list.checkGen(c.gen)
	n := c.list.back
	if c.cur != nil {
		n = c.cur.prev
	}
	if n == nil {
		return nil
	}
	return &n.elem
}

// InsertBefore inserts elem on the front side of the cursor. At the ghost
// this appends at the back of the list. The cursor stays on its node, whose
// index grows by one.
func (c *Cursor[T]) InsertBefore(elem T) {
	c.list.checkGen(c.gen)
	l := c.list
	switch {
	case c.cur == nil:
		l.PushBack(elem)
	case c.cur.prev == nil:
		l.PushFront(elem)
		c.idx++
	default:
		n := &node[T]{prev: c.cur.prev, next: c.cur, elem: elem}
		c.cur.prev.next = n
		c.cur.prev = n
		l.size++
		l.gen++
		c.idx++
	}
	c.gen = l.gen
}

// InsertAfter inserts elem on the back side of the cursor. At the ghost this
// prepends at the front of the list. The cursor's position is unchanged.
func (c *Cursor[T]) InsertAfter(elem T) {
	c.list.checkGen(c.gen)
	l := c.list
	switch {
	case c.cur == nil:
		l.PushFront(elem)
	case c.cur.next == nil:
		l.PushBack(elem)
	default:
		n := &node[T]{prev: c.cur, next: c.cur.next, elem: elem}
		c.cur.next.prev = n
		c.cur.next = n
		l.size++
		l.gen++
	}
	c.gen = l.gen
}

// RemoveCurrent removes and returns the element the cursor is on, moving the
// cursor to the next node toward the back, or to the ghost if there is none.
// At the ghost it returns false and removes nothing.
func (c *Cursor[T]) RemoveCurrent() (T, bool) {
	c.list.checkGen(c.gen)
	if c.cur == nil {
		var zero T
		return zero, false
	}
	l := c.list
	n := c.cur
	c.cur = n.next // index is unchanged: the successor takes over this slot
	l.unlink(n)
	l.size--
	l.gen++
	c.gen = l.gen
	return n.elem, true
}

// SplitBefore detaches everything strictly before the cursor into a new
// independent list and returns it. The cursor keeps its node, now the front
// of the remainder at index 0. At the ghost the entire list is detached,
// leaving the cursor's list empty.
func (c *Cursor[T]) SplitBefore() *List[T] {
	c.list.checkGen(c.gen)
	l := c.list
	defer func() { c.gen = l.gen }()
	if c.cur == nil {
		front, back, size := l.take()
		return &List[T]{front: front, back: back, size: size}
	}
	prev := c.cur.prev
	if prev == nil {
		// Already at the front, nothing to detach.
		l.gen++
		return &List[T]{}
	}
	out := &List[T]{front: l.front, back: prev, size: c.idx}
	// Sever both directions so the chains are fully disjoint.
	prev.next = nil
	c.cur.prev = nil
	l.front = c.cur
	l.size -= c.idx
	l.gen++
	c.idx = 0
	return out
}

// SplitAfter detaches everything strictly after the cursor into a new
// independent list and returns it. The cursor keeps its node, now the back
// of the remainder. At the ghost the entire list is detached, leaving the
// cursor's list empty.
func (c *Cursor[T]) SplitAfter() *List[T] {
	c.list.checkGen(c.gen)
	l := c.list
	defer func() { c.gen = l.gen }()
	if c.cur == nil {
		front, back, size := l.take()
		return &List[T]{front: front, back: back, size: size}
	}
	next := c.cur.next
	if next == nil {
		l.gen++
		return &List[T]{}
	}
	out := &List[T]{front: next, back: l.back, size: l.size - c.idx - 1}
	next.prev = nil
	c.cur.next = nil
	l.back = c.cur
	l.size = c.idx + 1
	l.gen++
	return out
}

// SpliceBefore grafts all of other's elements into the cursor's list on the
// front side of the cursor, in O(1) regardless of other's length, and leaves
// other empty. At the ghost the elements land at the back of the list. The
// cursor keeps its node; its index grows by other's length.
func (c *Cursor[T]) SpliceBefore(other *List[T]) {
	c.list.checkGen(c.gen)
	l := c.list
	if other == l {
		panic("dlist: cannot splice a list into itself")
	}
	if other.size == 0 {
		return
	}
	front, back, size := other.take()
	if c.cur == nil {
		if l.back == nil {
			l.front, l.back = front, back
		} else {
			l.back.next = front
			front.prev = l.back
			l.back = back
		}
	} else {
		if c.cur.prev == nil {
			l.front = front
		} else {
			c.cur.prev.next = front
			front.prev = c.cur.prev
		}
		back.next = c.cur
		c.cur.prev = back
		c.idx += size
	}
	l.size += size
	l.gen++
	c.gen = l.gen
}

// SpliceAfter grafts all of other's elements into the cursor's list on the
// back side of the cursor, in O(1) regardless of other's length, and leaves
// other empty. At the ghost the elements land at the front of the list. The
// cursor's position and index are unchanged.
func (c *Cursor[T]) SpliceAfter(other *List[T]) {
	c.list.checkGen(c.gen)
	l := c.list
	if other == l {
		panic("dlist: cannot splice a list into itself")
	}
	if other.size == 0 {
		return
	}
	front, back, size := other.take()
	if c.cur == nil {
		if l.front == nil {
			l.front, l.back = front, back
		} else {
			back.next = l.front
			l.front.prev = back
			l.front = front
		}
	} else {
		if c.cur.next == nil {
			l.back = back
		} else {
			c.cur.next.prev = back
			back.next = c.cur.next
		}
		front.prev = c.cur
		c.cur.next = front
	}
	l.size += size
	l.gen++
	c.gen = l.gen
}
