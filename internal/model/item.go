package model

// Item is what a todo list needs from its elements.
type Item interface {
	Title() string
	IsDone() bool
	MarkDone()
	MarkUndone()
	String() string
}

// Todo is the domain model for a todo entry.
// Share it by pointer: marking it through a list is visible to every holder.
type Todo struct {
	title string
	done  bool
}

func NewTodo(title string) *Todo {
	return &Todo{title: title}
}

func (t *Todo) Title() string { return t.title }
func (t *Todo) IsDone() bool  { return t.done }
func (t *Todo) MarkDone()     { t.done = true }
func (t *Todo) MarkUndone()   { t.done = false }

func (t *Todo) String() string {
	box := "[ ]"
	if t.done {
		box = "[X]"
	}
	return box + " " + t.title
}
