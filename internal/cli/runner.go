// Package cli runs line-oriented todo scripts against one in-memory list.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/logging"
	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todolist"
	"github.com/Makepad-fr/todolist/internal/ui"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Options tune output behavior.
type Options struct {
	Group     bool // ls prints pending/done groups
	KeepGoing bool // log failing lines and continue
}

// Session executes commands against List and writes results to Out.
type Session struct {
	List *todolist.List[*model.Todo]
	Out  io.Writer
	Log  *log.Logger
	Opt  Options
}

func NewSession(l *todolist.List[*model.Todo], out io.Writer, logger *log.Logger, opt Options) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{List: l, Out: out, Log: logger, Opt: opt}
}

// Run executes every line of r. Blank lines and # comments are skipped.
// Stops at the first failure unless KeepGoing is set, in which case the
// returned error only reports how many lines failed.
func (s *Session) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo, failed := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Log.Debug("exec", "line", lineNo, "command", line)
		if err := s.Exec(line); err != nil {
			if !s.Opt.KeepGoing {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			failed++
			s.Log.Error("command failed", "line", lineNo, "command", line, "err", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) failed", failed)
	}
	return nil
}

// Exec runs a single command line.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, a := fields[0], fields[1:]

	switch cmd {
	case "help":
		PrintHelp(s.Out)
		return nil

	case "ls":
		return s.doList()

	case "add":
		if len(a) == 0 {
			return fmt.Errorf("%w: add <title...>", ErrUsage)
		}
		return s.doAdd(strings.Join(a, " "))

	case "done", "undone", "rm":
		if len(a) != 1 {
			return fmt.Errorf("%w: %s <index>", ErrUsage, cmd)
		}
		idx, err := s.parseIndex(a[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "done":
			err = s.doMark(idx, true)
		case "undone":
			err = s.doMark(idx, false)
		default:
			err = s.doRemove(idx)
		}
		var ie *todolist.IndexError
		if errors.As(err, &ie) {
			ie.Ref = a[0]
		}
		return err

	case "shift":
		return s.report("shifted", s.List.Shift)
	case "pop":
		return s.report("popped", s.List.Pop)
	case "first":
		return s.report("first", s.List.First)
	case "last":
		return s.report("last", s.List.Last)

	case "find":
		if len(a) == 0 {
			return fmt.Errorf("%w: find <title...>", ErrUsage)
		}
		title := strings.Join(a, " ")
		return s.report("found", func() (*model.Todo, bool) { return s.List.FindByTitle(title) })

	case "mark":
		if len(a) == 0 {
			return fmt.Errorf("%w: mark <title...>", ErrUsage)
		}
		s.List.MarkDone(strings.Join(a, " "))
		return nil

	case "all-done":
		s.List.MarkAllDone()
		ui.OK(s.Out, "all done")
		return nil
	case "all-undone":
		s.List.MarkAllUndone()
		ui.OK(s.Out, "all undone")
		return nil

	case "pending":
		fmt.Fprintln(s.Out, s.List.AllNotDone())
		return nil
	case "completed":
		fmt.Fprintln(s.Out, s.List.AllDone())
		return nil

	case "status":
		d, p := s.List.Counts()
		fmt.Fprintf(s.Out, "all done: %t (%d done, %d pending)\n", s.List.IsDone(), d, p)
		return nil
	case "size":
		fmt.Fprintln(s.Out, s.List.Size())
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `Commands (one per line, # starts a comment):
  add <title...>     Add a new item (title can be multiple words)
  ls                 List items
  done <index>       Mark item at 1-based index done
  undone <index>     Mark item at 1-based index not done
  rm <index>         Remove item at 1-based index
  shift | pop        Remove and print the first | last item
  first | last       Print the first | last item
  find <title...>    Print the first item with that exact title
  mark <title...>    Mark the first item with that exact title done
  all-done           Mark every item done
  all-undone         Mark every item not done
  pending            Print items not yet done
  completed          Print items already done
  status             Print whether every item is done
  size               Print the number of items
`)
}

// parseIndex turns a 1-based user index into a list position.
func (s *Session) parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &todolist.IndexError{Ref: raw, Size: s.List.Size()}
	}
	return n - 1, nil
}

// -------------- command impls ----------------

func (s *Session) doList() error {
	if s.Opt.Group {
		fmt.Fprintln(s.Out, s.List.Title())
		for _, ln := range ui.GroupLines(s.List) {
			fmt.Fprintln(s.Out, ln)
		}
		return nil
	}
	fmt.Fprintln(s.Out, s.List)
	return nil
}

func (s *Session) doAdd(title string) error {
	s.List.Add(model.NewTodo(title))
	ui.OK(s.Out, "added")
	return nil
}

func (s *Session) doMark(idx int, done bool) error {
	if done {
		if err := s.List.MarkDoneAt(idx); err != nil {
			return fmt.Errorf("done: %w", err)
		}
		ui.OK(s.Out, "marked done")
		return nil
	}
	if err := s.List.MarkUndoneAt(idx); err != nil {
		return fmt.Errorf("undone: %w", err)
	}
	ui.OK(s.Out, "marked undone")
	return nil
}

func (s *Session) doRemove(idx int) error {
	removed, err := s.List.RemoveAt(idx)
	if err != nil {
		return fmt.Errorf("rm: %w", err)
	}
	ui.OK(s.Out, "removed "+removed.Title())
	return nil
}

// report prints the item get returns, or "(none)" when it is absent.
func (s *Session) report(label string, get func() (*model.Todo, bool)) error {
	it, ok := get()
	if !ok {
		fmt.Fprintf(s.Out, "%s: (none)\n", label)
		return nil
	}
	fmt.Fprintf(s.Out, "%s: %s\n", label, it)
	return nil
}
