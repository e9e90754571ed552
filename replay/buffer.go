package replay

// Buffer is a shared, append-only replay buffer over one upstream Iterator.
//
// The zero value is not usable; create buffers with [NewBuffer].
type Buffer[T any] struct {
	src   Iterator[T]
	items []T
	done  bool
	err   error
}

// NewBuffer takes exclusive ownership of src. Nothing is pulled until a fork
// asks for an element.
func NewBuffer[T any](src Iterator[T]) *Buffer[T] {
	return &Buffer[T]{src: src}
}

// Fork returns a new cursor positioned at the start of the sequence.
func (b *Buffer[T]) Fork() *Cursor[T] {
	return &Cursor[T]{buf: b}
}

// Buffered returns the number of elements pulled from upstream so far.
func (b *Buffer[T]) Buffered() int { return len(b.items) }

// Exhausted reports whether upstream has signalled the end of input.
func (b *Buffer[T]) Exhausted() bool { return b.done }

// pull advances upstream by one element.
func (b *Buffer[T]) pull() bool {
	if b.done {
		return false
	}
	v, ok := b.src.Next()
	if !ok {
		b.done = true
		b.err = b.src.Err()
		b.src = nil
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Cursor is an independent traversal over a Buffer. It implements Iterator.
type Cursor[T any] struct {
	buf *Buffer[T]
	pos int
}

// Next replays a buffered element when one is available at the cursor's
// position, and otherwise pulls the next element from upstream.
func (c *Cursor[T]) Next() (T, bool) {
	if c.pos >= len(c.buf.items) && !c.buf.pull() {
		var zero T
		return zero, false
	}
	v := c.buf.items[c.pos]
	c.pos++
	return v, true
}

// Err reports the upstream error once the cursor has reached the end of a
// failed sequence.
func (c *Cursor[T]) Err() error {
	if c.buf.done && c.pos >= len(c.buf.items) {
		return c.buf.err
	}
	return nil
}

// Pos returns the number of elements this cursor has yielded.
func (c *Cursor[T]) Pos() int { return c.pos }
