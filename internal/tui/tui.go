// Package tui is an interactive bubbletea front end for one in-memory list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todolist"
	"github.com/Makepad-fr/todolist/internal/ui"
)

// View selects which items are shown.
type View int

const (
	ViewAll View = iota
	ViewPending
	ViewDone
)

func (v View) String() string {
	switch v {
	case ViewPending:
		return "pending"
	case ViewDone:
		return "done"
	default:
		return "all"
	}
}

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo *model.Todo
}

func (i listItem) FilterValue() string { return i.todo.Title() }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	text := it.todo.Title()
	if it.todo.IsDone() {
		text = t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.Box(it.todo.IsDone())+" "+text)
}

type keyMap struct {
	Toggle, Remove, Undo, Add, NextView, AllDone, AllUndone, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo delete")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
		AllDone:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "all done")),
		AllUndone: key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "all undone")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea model. It mutates the list it was built with.
type Model struct {
	todos *todolist.List[*model.Todo]
	list  list.Model
	keys  keyMap
	view  View

	// Single-level undo of the last delete
	undoItem  *model.Todo
	undoIndex int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string
}

// New builds a model over l.
func New(l *todolist.List[*model.Todo]) Model {
	keys := newKeyMap()

	lm := list.New(nil, itemDelegate{}, 0, 0)
	lm.SetShowHelp(true)
	lm.SetShowPagination(true)
	lm.SetShowStatusBar(true)
	lm.SetFilteringEnabled(true)
	lm.Styles.Title = ui.Current().Title
	lm.Styles.HelpStyle = ui.Current().Muted
	lm.Styles.PaginationStyle = ui.Current().Muted
	lm.FilterInput.Prompt = "/ "
	lm.SetStatusBarItemName("item", "items")
	extra := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Remove, keys.Undo, keys.NextView}
	}
	lm.AdditionalShortHelpKeys = extra
	lm.AdditionalFullHelpKeys = func() []key.Binding {
		return append(extra(), keys.AllDone, keys.AllUndone)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	m := Model{todos: l, list: lm, keys: keys, ti: ti}
	m.refresh()
	return m
}

// List returns the list being edited.
func (m Model) List() *todolist.List[*model.Todo] { return m.todos }

// CurrentView reports which items are on screen.
func (m Model) CurrentView() View { return m.view }

// Run starts the program and blocks until the user quits.
func Run(l *todolist.List[*model.Todo]) error {
	_, err := tea.NewProgram(New(l), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-4)
		return m, nil
	}
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			// esc clears an applied filter before it quits.
			if msg.String() == "esc" && m.list.FilterState() != list.Unfiltered {
				break
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if idx, t, ok := m.selected(); ok {
				if t.IsDone() {
					_ = m.todos.MarkUndoneAt(idx)
				} else {
					_ = m.todos.MarkDoneAt(idx)
				}
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if idx, _, ok := m.selected(); ok {
				if removed, err := m.todos.RemoveAt(idx); err == nil {
					m.undoItem, m.undoIndex = removed, idx
				}
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			if m.undoItem != nil {
				m.todos.InsertAt(m.undoIndex, m.undoItem)
				m.undoItem = nil
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % 3
			m.list.ResetSelected()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.AllDone):
			m.todos.MarkAllDone()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.AllUndone):
			m.todos.MarkAllUndone()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.todos.Add(model.NewTodo(title))
			m.stopAdding()
			m.refresh()
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// selected resolves the highlighted row back to its position in the list.
func (m Model) selected() (int, *model.Todo, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, nil, false
	}
	idx := m.todos.IndexOf(li.todo)
	if idx < 0 {
		return 0, nil, false
	}
	return idx, li.todo, true
}

// refresh rebuilds the visible rows and header from the list.
func (m *Model) refresh() {
	src := m.todos
	switch m.view {
	case ViewPending:
		src = m.todos.AllNotDone()
	case ViewDone:
		src = m.todos.AllDone()
	}
	items := make([]list.Item, 0, src.Size())
	src.ForEach(func(t *model.Todo) {
		items = append(items, listItem{todo: t})
	})
	m.list.SetItems(items)
	m.list.Title = ui.Header(m.todos) + "  " + ui.Current().Muted.Render("["+m.view.String()+"]")
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " - " + ui.Current().Error.Render(m.addErr)
		}
		content += "\n" + ui.PanelString(title+"\n"+m.ti.View())
	}
	return ui.PanelString(content)
}
