package commands

import (
	"fmt"
	"io"
	"strings"

	"tasklist/todo"
	"tasklist/view"
)

// Command represents a REPL slash command
type Command struct {
	Name        string
	Description string
	Usage       string
	Handler     func(env *Env, args []string) bool // returns true to quit
	Hidden      bool                               // if true, omit from /help
}

var registry = make(map[string]*Command)

// Register adds a command to the registry
func Register(cmd *Command) {
	registry[strings.ToLower(cmd.Name)] = cmd
}

// Env is the state a command runs against. The task store is injected here;
// the filter is view-only state and is never persisted.
type Env struct {
	Store  *todo.Store
	Filter todo.FilterMode
	Out    io.Writer

	// AutoRender re-renders the list after any command that changed the store
	AutoRender bool

	dirty bool
}

// NewEnv wires an Env to store. Store changes mark the view dirty so it is
// re-rendered once the command finishes.
func NewEnv(store *todo.Store, out io.Writer) *Env {
	env := &Env{
		Store:      store,
		Filter:     todo.FilterAll,
		Out:        out,
		AutoRender: true,
	}
	store.Subscribe(func(todo.Event) {
		env.dirty = true
	})
	return env
}

// Page projects the current store state through the active filter
func (e *Env) Page() view.Page {
	return view.FromStore(e.Store, e.Filter)
}

// Render writes the current view to Out
func (e *Env) Render() {
	view.Render(e.Out, e.Page())
	e.dirty = false
}

func (e *Env) printf(format string, a ...any) {
	fmt.Fprintf(e.Out, format, a...)
}

func (e *Env) println(a ...any) {
	fmt.Fprintln(e.Out, a...)
}

func (e *Env) flush() {
	if e.dirty && e.AutoRender {
		e.Render()
	}
	e.dirty = false
}

// Execute runs a command by name with arguments
func Execute(env *Env, input string) (bool, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false, fmt.Errorf("empty command")
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, exists := registry[cmdName]
	if !exists {
		return false, fmt.Errorf("unknown command: %s", cmdName)
	}

	quit := cmd.Handler(env, args)
	env.flush()
	return quit, nil
}

// Submit handles a line of plain text. While a task is being edited the line
// replaces the draft and is saved; otherwise it is added as a new task.
func Submit(env *Env, line string) {
	if session, ok := env.Store.Edit(); ok {
		env.Store.SetDraft(line)
		env.Store.CommitEdit()
		env.printf("Saved task %d\n", session.TargetID)
	} else if task, ok := env.Store.Add(line); ok {
		env.printf("Added: %s\n", task.Text)
	}
	env.flush()
}

// List returns all registered commands
func List() []*Command {
	cmds := make([]*Command, 0, len(registry))
	for _, cmd := range registry {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// GetByName returns a command by name (with or without leading /)
func GetByName(name string) *Command {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return registry[strings.ToLower(name)]
}
