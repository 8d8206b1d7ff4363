package todolist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todolist/internal/model"
)

type fixture struct {
	todo1, todo2, todo3 *model.Todo
	list                *List[*model.Todo]
}

func newFixture() fixture {
	f := fixture{
		todo1: model.NewTodo("Buy milk"),
		todo2: model.NewTodo("Clean room"),
		todo3: model.NewTodo("Go to the gym"),
		list:  New[*model.Todo]("Today's Todos"),
	}
	f.list.Add(f.todo1)
	f.list.Add(f.todo2)
	f.list.Add(f.todo3)
	return f
}

func requireIndexError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	var ie *IndexError
	assert.ErrorAs(t, err, &ie)
}

func TestSizeCountsAdds(t *testing.T) {
	l := New[*model.Todo]("t")
	assert.Equal(t, 0, l.Size())
	for i := 1; i <= 5; i++ {
		l.Add(model.NewTodo("x"))
		assert.Equal(t, i, l.Size())
	}
	assert.Equal(t, 3, newFixture().list.Size())
}

func TestToSliceIsInsertionOrderedCopy(t *testing.T) {
	f := newFixture()
	got := f.list.ToSlice()
	assert.Equal(t, []*model.Todo{f.todo1, f.todo2, f.todo3}, got)

	got[0] = model.NewTodo("intruder")
	first, err := f.list.ItemAt(0)
	require.NoError(t, err)
	assert.Same(t, f.todo1, first)
	assert.Equal(t, 3, f.list.Size())
}

func TestFirstAndLast(t *testing.T) {
	f := newFixture()
	first, ok := f.list.First()
	require.True(t, ok)
	assert.Equal(t, "Buy milk", first.Title())

	last, ok := f.list.Last()
	require.True(t, ok)
	assert.Same(t, f.todo3, last)

	empty := New[*model.Todo]("empty")
	_, ok = empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)
}

func TestShift(t *testing.T) {
	f := newFixture()
	got, ok := f.list.Shift()
	require.True(t, ok)
	assert.Same(t, f.todo1, got)
	assert.Equal(t, []*model.Todo{f.todo2, f.todo3}, f.list.ToSlice())

	f.list.Shift()
	f.list.Shift()
	_, ok = f.list.Shift()
	assert.False(t, ok)
	assert.Equal(t, 0, f.list.Size())
}

func TestPopClearsVacatedSlot(t *testing.T) {
	f := newFixture()
	backing := f.list.items[:3]

	_, ok := f.list.Pop()
	require.True(t, ok)
	assert.Nil(t, backing[2])
}

func TestPop(t *testing.T) {
	f := newFixture()
	got, ok := f.list.Pop()
	require.True(t, ok)
	assert.Same(t, f.todo3, got)
	assert.Equal(t, []*model.Todo{f.todo1, f.todo2}, f.list.ToSlice())

	_, ok = New[*model.Todo]("empty").Pop()
	assert.False(t, ok)
}

func TestIsDone(t *testing.T) {
	l := New[*model.Todo]("t")
	assert.True(t, l.IsDone(), "empty list is vacuously done")

	a := model.NewTodo("a")
	l.Add(a)
	assert.False(t, l.IsDone())

	b := model.NewTodo("b")
	l.Add(b)
	require.NoError(t, l.MarkDoneAt(0))
	assert.False(t, l.IsDone())
	require.NoError(t, l.MarkDoneAt(1))
	assert.True(t, l.IsDone())
}

func TestAppendRejectsNonItems(t *testing.T) {
	f := newFixture()

	err := f.list.Append("1234")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	var tm *TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "1234", tm.Value)

	assert.ErrorIs(t, f.list.Append(nil), ErrTypeMismatch)
	assert.ErrorIs(t, f.list.Append((*model.Todo)(nil)), ErrTypeMismatch)
	assert.Equal(t, 3, f.list.Size())
	assert.NotPanics(t, func() { _ = f.list.String() })

	require.NoError(t, f.list.Append(model.NewTodo("Walk dog")))
	assert.Equal(t, 4, f.list.Size())
}

func TestItemAt(t *testing.T) {
	f := newFixture()
	got, err := f.list.ItemAt(0)
	require.NoError(t, err)
	assert.Same(t, f.todo1, got)

	for _, idx := range []int{-1, 3, 5} {
		_, err := f.list.ItemAt(idx)
		requireIndexError(t, err)
	}

	_, err = New[*model.Todo]("empty").ItemAt(0)
	requireIndexError(t, err)
}

func TestMarkDoneAtAndUndoneAt(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.list.MarkDoneAt(0))
	assert.True(t, f.todo1.IsDone())
	requireIndexError(t, f.list.MarkDoneAt(6))

	require.NoError(t, f.list.MarkDoneAt(1))
	require.NoError(t, f.list.MarkUndoneAt(1))
	assert.False(t, f.todo2.IsDone())
	requireIndexError(t, f.list.MarkUndoneAt(5))
}

func TestMarkAllDoneThenUndone(t *testing.T) {
	f := newFixture()
	f.list.MarkAllDone()
	for _, td := range []*model.Todo{f.todo1, f.todo2, f.todo3} {
		assert.True(t, td.IsDone())
	}
	assert.True(t, f.list.IsDone())

	f.list.MarkAllUndone()
	for _, td := range []*model.Todo{f.todo1, f.todo2, f.todo3} {
		assert.False(t, td.IsDone())
	}
	assert.False(t, f.list.IsDone())
}

func TestRemoveAt(t *testing.T) {
	f := newFixture()
	got, err := f.list.RemoveAt(1)
	require.NoError(t, err)
	assert.Same(t, f.todo2, got)
	assert.Equal(t, []*model.Todo{f.todo1, f.todo3}, f.list.ToSlice())

	_, err = f.list.RemoveAt(4)
	requireIndexError(t, err)
	assert.Equal(t, 2, f.list.Size())

	got, err = f.list.RemoveAt(0)
	require.NoError(t, err)
	assert.Same(t, f.todo1, got)
	assert.Equal(t, []*model.Todo{f.todo3}, f.list.ToSlice())
}

func TestString(t *testing.T) {
	f := newFixture()
	assert.Equal(t, "---- Today's Todos ----\n[ ] Buy milk\n[ ] Clean room\n[ ] Go to the gym", f.list.String())

	require.NoError(t, f.list.MarkDoneAt(0))
	assert.Equal(t, "---- Today's Todos ----\n[X] Buy milk\n[ ] Clean room\n[ ] Go to the gym", f.list.String())

	f.list.MarkAllDone()
	assert.Equal(t, "---- Today's Todos ----\n[X] Buy milk\n[X] Clean room\n[X] Go to the gym", f.list.String())

	assert.Equal(t, "---- empty ----", New[*model.Todo]("empty").String())
}

func TestForEachVisitsInOrder(t *testing.T) {
	f := newFixture()
	var seen []*model.Todo
	f.list.ForEach(func(td *model.Todo) { seen = append(seen, td) })
	assert.Equal(t, []*model.Todo{f.todo1, f.todo2, f.todo3}, seen)
}

func TestAllStopsEarly(t *testing.T) {
	f := newFixture()
	var idx []int
	for i, td := range f.list.All() {
		idx = append(idx, i)
		if td == f.todo2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestFilterReturnsNewList(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.list.MarkDoneAt(1))
	require.NoError(t, f.list.MarkDoneAt(2))

	filtered := f.list.Filter(func(td *model.Todo) bool { return td.IsDone() })

	want := New[*model.Todo]("Today's Todos")
	want.Add(f.todo2)
	want.Add(f.todo3)
	assert.Equal(t, want.String(), filtered.String())
	assert.Equal(t, "Today's Todos", filtered.Title())

	assert.Equal(t, []*model.Todo{f.todo1, f.todo2, f.todo3}, f.list.ToSlice())
}

func TestAllDoneAndAllNotDone(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.list.MarkDoneAt(0))

	assert.Equal(t, []*model.Todo{f.todo1}, f.list.AllDone().ToSlice())
	assert.Equal(t, []*model.Todo{f.todo2, f.todo3}, f.list.AllNotDone().ToSlice())
	assert.Equal(t, 3, f.list.Size())
}

func TestFindByTitle(t *testing.T) {
	f := newFixture()
	got, ok := f.list.FindByTitle("Clean room")
	require.True(t, ok)
	assert.Same(t, f.todo2, got)

	_, ok = f.list.FindByTitle("test")
	assert.False(t, ok)

	dup := model.NewTodo("Clean room")
	f.list.Add(dup)
	got, _ = f.list.FindByTitle("Clean room")
	assert.Same(t, f.todo2, got, "first match by insertion order wins")
}

func TestMarkDoneByTitle(t *testing.T) {
	f := newFixture()
	dup := model.NewTodo("Clean room")
	f.list.Add(dup)

	f.list.MarkDone("Clean room")
	assert.True(t, f.todo2.IsDone())
	assert.False(t, dup.IsDone())

	// A miss is silently ignored, while a bad index is an error.
	assert.NotPanics(t, func() { f.list.MarkDone("nothing by that name") })
	requireIndexError(t, f.list.MarkDoneAt(99))
}

func TestSharedReferences(t *testing.T) {
	td := model.NewTodo("shared")
	a := New[*model.Todo]("a")
	b := New[*model.Todo]("b")
	a.Add(td)
	b.Add(td)

	require.NoError(t, a.MarkDoneAt(0))
	assert.True(t, b.IsDone())
	assert.True(t, td.IsDone())
}

func TestIndexErrorMessage(t *testing.T) {
	err := &IndexError{Index: 4, Size: 3}
	assert.Equal(t, "invalid index: 4 (size 3)", err.Error())

	err = &IndexError{Ref: "two", Size: 3}
	assert.Equal(t, "invalid index: two (size 3)", err.Error())
}

func TestCounts(t *testing.T) {
	f := newFixture()
	f.todo2.MarkDone()

	done, pending := f.list.Counts()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)

	done, pending = New[*model.Todo]("empty").Counts()
	assert.Zero(t, done)
	assert.Zero(t, pending)
}

func TestIndexOfUsesIdentity(t *testing.T) {
	f := newFixture()
	assert.Equal(t, 2, f.list.IndexOf(f.todo3))
	assert.Equal(t, -1, f.list.IndexOf(model.NewTodo("Buy milk")))

	pending := f.list.AllNotDone()
	assert.Equal(t, 0, pending.IndexOf(f.todo1))
}

func TestAddIgnoresNil(t *testing.T) {
	f := newFixture()
	f.list.Add(nil)
	assert.Equal(t, 3, f.list.Size())
	assert.Equal(t, 3, f.list.AllNotDone().Size())
}

type taggedTodo struct {
	*model.Todo
	tags []string
}

func TestIndexOfNonComparableItems(t *testing.T) {
	td := model.NewTodo("tagged")
	l := New[taggedTodo]("t")
	l.Add(taggedTodo{Todo: td, tags: []string{"home"}})

	assert.NotPanics(t, func() {
		assert.Equal(t, -1, l.IndexOf(taggedTodo{Todo: td}))
	})
}

func TestInsertAt(t *testing.T) {
	f := newFixture()
	td := model.NewTodo("Walk dog")

	f.list.InsertAt(1, td)
	assert.Equal(t, []*model.Todo{f.todo1, td, f.todo2, f.todo3}, f.list.ToSlice())

	first := model.NewTodo("first")
	last := model.NewTodo("last")
	f.list.InsertAt(-3, first)
	f.list.InsertAt(99, last)
	got, ok := f.list.First()
	require.True(t, ok)
	assert.Same(t, first, got)
	got, ok = f.list.Last()
	require.True(t, ok)
	assert.Same(t, last, got)

	f.list.InsertAt(0, nil)
	assert.Equal(t, 6, f.list.Size())
}
