package parse

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Items is a simple input queue of arbitrary items. It is suited for tokenizers
// working on pre-scanned input, e.g. a slice of lexer tokens or of plain strings.
type Items struct {
	list *arraylist.List
	pos  int // position of the next item
}

var _ Input = (*Items)(nil)

// NewItems creates an input queue holding items.
func NewItems(items ...interface{}) *Items {
	return &Items{list: arraylist.New(items...)}
}

// Strings is a convenience function to create an input queue of strings.
func Strings(items ...string) *Items {
	in := NewItems()
	for _, s := range items {
		in.list.Add(s)
	}
	return in
}

// Empty is part of interface Input.
func (in *Items) Empty() bool {
	return in == nil || in.pos >= in.list.Size()
}

// Len returns the number of items not yet consumed.
func (in *Items) Len() int {
	if in.Empty() {
		return 0
	}
	return in.list.Size() - in.pos
}

// Peek returns the next item without consuming it.
func (in *Items) Peek() (interface{}, bool) {
	if in.Empty() {
		return nil, false
	}
	return in.list.Get(in.pos)
}

// Next consumes the next item.
func (in *Items) Next() (interface{}, bool) {
	item, ok := in.Peek()
	if ok {
		in.pos++
	}
	return item, ok
}

// Append appends items to the end of the queue.
func (in *Items) Append(items ...interface{}) {
	in.list.Add(items...)
}

// Consumed returns the number of items consumed so far.
func (in *Items) Consumed() int {
	return in.pos
}
