package ui

import (
	"fmt"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todolist"
)

const maxTitleWidth = 80

// Header renders the list title with live done/pending/total counts.
func Header[T model.Item](l *todolist.List[T]) string {
	d, p := l.Counts()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render(l.Title()),
		current.Success.Render(current.SymDone), d,
		current.Pending.Render(current.SymPending), p,
		current.Accent.Render("Total"), l.Size(),
	)
}

// Box returns the themed checkbox for an item's state.
func Box(done bool) string {
	if done {
		return current.Success.Render(current.BoxChecked)
	}
	return current.Muted.Render(current.BoxUnchecked)
}

// ListLines renders one numbered line per item. Numbers are 1-based.
func ListLines[T model.Item](l *todolist.List[T]) []string {
	if l.Size() == 0 {
		return []string{current.Muted.Render("no items")}
	}
	out := make([]string, 0, l.Size())
	for i, it := range l.All() {
		idx := current.Muted.Render(fmt.Sprintf("%2d.", i+1))
		out = append(out, fmt.Sprintf("%s %s %s", idx, Box(it.IsDone()), truncate(it.Title())))
	}
	return out
}

// GroupLines renders pending items first, then done ones.
func GroupLines[T model.Item](l *todolist.List[T]) []string {
	var lines []string
	lines = append(lines, section("Pending", l.AllNotDone())...)
	lines = append(lines, "")
	lines = append(lines, section("Done", l.AllDone())...)
	return lines
}

func section[T model.Item](name string, l *todolist.List[T]) []string {
	lines := []string{current.Accent.Render(name)}
	if l.Size() == 0 {
		return append(lines, current.Muted.Render("(none)"))
	}
	return append(lines, ListLines(l)...)
}

// Document is the full framed view: header, progress, items.
func Document[T model.Item](l *todolist.List[T], group bool) string {
	d, p := l.Counts()
	lines := []string{
		Header(l),
		current.Muted.Render(ProgressBar(d, d+p, 28)),
		"",
	}
	if group {
		lines = append(lines, GroupLines(l)...)
	} else {
		lines = append(lines, ListLines(l)...)
	}
	return Panel(lines)
}

func truncate(title string) string {
	r := []rune(title)
	if len(r) > maxTitleWidth {
		return string(r[:maxTitleWidth-3]) + "..."
	}
	return title
}
