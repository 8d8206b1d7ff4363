// Package todolist holds a titled, ordered, in-memory list of todo items.
//
// A List is not safe for concurrent use. Callers that share one across
// goroutines must guard it themselves.
package todolist

import (
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/Makepad-fr/todolist/internal/model"
)

// List keeps items in insertion order. Elements are references; marking an
// item through the list changes it for every other holder.
type List[T model.Item] struct {
	title string
	items []T
}

// New returns an empty list with the given title.
func New[T model.Item](title string) *List[T] {
	return &List[T]{title: title}
}

func (l *List[T]) Title() string { return l.title }

// Add appends item to the end of the list. A nil item is ignored.
func (l *List[T]) Add(item T) {
	if isNil(item) {
		return
	}
	l.items = append(l.items, item)
}

// Append is Add for values whose type is only known at runtime.
// It fails with a *TypeMismatchError when v is nil or not a T.
func (l *List[T]) Append(v any) error {
	item, ok := v.(T)
	if !ok || isNil(item) {
		return &TypeMismatchError{Value: v}
	}
	l.Add(item)
	return nil
}

func (l *List[T]) Size() int { return len(l.items) }

// First returns the first item, or false when the list is empty.
func (l *List[T]) First() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[0], true
}

// Last returns the last item, or false when the list is empty.
func (l *List[T]) Last() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// ItemAt returns the item at index or an *IndexError.
func (l *List[T]) ItemAt(index int) (T, error) {
	if err := l.validateIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

func (l *List[T]) MarkDoneAt(index int) error {
	item, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	item.MarkDone()
	return nil
}

func (l *List[T]) MarkUndoneAt(index int) error {
	item, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	item.MarkUndone()
	return nil
}

// IsDone reports whether every item is done. An empty list is done.
func (l *List[T]) IsDone() bool {
	for _, it := range l.items {
		if !it.IsDone() {
			return false
		}
	}
	return true
}

// Shift removes and returns the first item.
func (l *List[T]) Shift() (T, bool) {
	first, ok := l.First()
	if !ok {
		return first, false
	}
	l.items = slices.Delete(l.items, 0, 1)
	return first, true
}

// Pop removes and returns the last item.
func (l *List[T]) Pop() (T, bool) {
	last, ok := l.Last()
	if !ok {
		return last, false
	}
	n := len(l.items)
	l.items = slices.Delete(l.items, n-1, n)
	return last, true
}

// RemoveAt removes and returns the item at index. Later items move down by one.
func (l *List[T]) RemoveAt(index int) (T, error) {
	item, err := l.ItemAt(index)
	if err != nil {
		return item, err
	}
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// InsertAt puts item at index and moves later items up by one. The index is
// clamped to [0, Size], so out-of-range positions insert at either end.
// A nil item is ignored.
func (l *List[T]) InsertAt(index int, item T) {
	if isNil(item) {
		return
	}
	index = max(0, min(index, len(l.items)))
	l.items = slices.Insert(l.items, index, item)
}

func (l *List[T]) ForEach(fn func(T)) {
	for _, it := range l.items {
		fn(it)
	}
}

// All yields index/item pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Filter returns a new list with the same title holding the items keep accepts.
// The receiver is left untouched.
func (l *List[T]) Filter(keep func(T) bool) *List[T] {
	out := New[T](l.title)
	for _, it := range l.items {
		if keep(it) {
			out.Add(it)
		}
	}
	return out
}

// FindByTitle returns the first item whose title equals title exactly.
func (l *List[T]) FindByTitle(title string) (T, bool) {
	return l.Filter(func(it T) bool { return it.Title() == title }).First()
}

func (l *List[T]) AllDone() *List[T] {
	return l.Filter(func(it T) bool { return it.IsDone() })
}

func (l *List[T]) AllNotDone() *List[T] {
	return l.Filter(func(it T) bool { return !it.IsDone() })
}

// MarkDone marks the first item titled title as done.
// Unlike MarkDoneAt, a miss is not an error.
func (l *List[T]) MarkDone(title string) {
	if it, ok := l.FindByTitle(title); ok {
		it.MarkDone()
	}
}

func (l *List[T]) MarkAllDone() {
	l.ForEach(func(it T) { it.MarkDone() })
}

func (l *List[T]) MarkAllUndone() {
	l.ForEach(func(it T) { it.MarkUndone() })
}

// ToSlice returns a shallow copy of the items.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// IndexOf returns the position of item by identity, or -1.
// Items of a non-comparable type are never found.
func (l *List[T]) IndexOf(item T) int {
	for i, it := range l.items {
		if same(it, item) {
			return i
		}
	}
	return -1
}

// Counts returns how many items are done and how many are pending.
func (l *List[T]) Counts() (done, pending int) {
	for _, it := range l.items {
		if it.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("---- " + l.title + " ----")
	for _, it := range l.items {
		b.WriteString("\n")
		b.WriteString(it.String())
	}
	return b.String()
}

func (l *List[T]) validateIndex(index int) error {
	if index < 0 || index >= len(l.items) {
		return &IndexError{Index: index, Size: len(l.items)}
	}
	return nil
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func same[T any](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return any(a) == any(b)
}
