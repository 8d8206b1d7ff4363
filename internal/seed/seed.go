package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todolist"
)

// JSON import/export of list contents. Read-only on disk: Load reads a
// seed file, Write only ever targets the writer it is handed.

const schemaURL = "todo-seed.schema.json"

const schemaSource = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title"],
    "additionalProperties": false,
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "done": {"type": "boolean"}
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, schemaSource)

// Record is the on-the-wire shape of one todo.
type Record struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Load reads and validates the seed file at path.
func Load(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(bytes.NewReader(b))
}

// Decode reads a JSON array of records from r and checks it against the seed schema.
func Decode(r io.Reader) ([]Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return records, nil
}

// Populate appends one todo per record to l, in order.
func Populate(l *todolist.List[*model.Todo], records []Record) {
	for _, rec := range records {
		t := model.NewTodo(rec.Title)
		if rec.Done {
			t.MarkDone()
		}
		l.Add(t)
	}
}

// Snapshot is the JSON form of a whole list.
type Snapshot struct {
	Title string   `json:"title"`
	Done  bool     `json:"done"`
	Items []Record `json:"items"`
}

// Write encodes l as an indented Snapshot.
func Write(w io.Writer, l *todolist.List[*model.Todo]) error {
	snap := Snapshot{
		Title: l.Title(),
		Done:  l.IsDone(),
		Items: make([]Record, 0, l.Size()),
	}
	l.ForEach(func(t *model.Todo) {
		snap.Items = append(snap.Items, Record{Title: t.Title(), Done: t.IsDone()})
	})
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
