package commands

import (
	"strings"

	"tasklist/todo"
)

func init() {
	Register(&Command{
		Name:        "/add",
		Description: "Add a task (plain text without a slash does the same)",
		Usage:       "/add <text>",
		Handler: func(env *Env, args []string) bool {
			if len(args) == 0 {
				env.println("Usage: /add <text>")
				return false
			}

			task, ok := env.Store.Add(strings.Join(args, " "))
			if ok {
				env.printf("Added: %s\n", task.Text)
			}
			return false
		},
	})

	toggle := func(env *Env, args []string) bool {
		id, err := ResolveTask(env, args)
		if err != nil {
			env.printf("Usage: /toggle <task>\nError: %v\n", err)
			return false
		}

		env.Store.Toggle(id)
		if task, ok := env.Store.Get(id); ok {
			if task.Completed {
				env.printf("Completed: %s\n", task.Text)
			} else {
				env.printf("Reopened: %s\n", task.Text)
			}
		}
		return false
	}
	Register(&Command{
		Name:        "/toggle",
		Description: "Mark a task done, or not done",
		Usage:       "/toggle <task>",
		Handler:     toggle,
	})
	// Alias
	Register(&Command{
		Name:        "/done",
		Description: "Alias for /toggle",
		Usage:       "/done <task>",
		Hidden:      true,
		Handler:     toggle,
	})

	Register(&Command{
		Name:        "/edit",
		Description: "Edit a task's text; with text given, save it at once",
		Usage:       "/edit <task> [new text]",
		Handler: func(env *Env, args []string) bool {
			id, err := ResolveTask(env, args)
			if err != nil {
				env.printf("Usage: /edit <task> [new text]\nError: %v\n", err)
				return false
			}

			env.Store.BeginEdit(id)
			if len(args) > 1 {
				env.Store.SetDraft(strings.Join(args[1:], " "))
				env.Store.CommitEdit()
				env.printf("Saved task %d\n", id)
				return false
			}

			session, _ := env.Store.Edit()
			env.printf("Editing: %s (Enter to save, /cancel to discard)\n", session.Draft)
			return false
		},
	})

	Register(&Command{
		Name:        "/save",
		Description: "Save the task being edited",
		Handler: func(env *Env, args []string) bool {
			session, ok := env.Store.Edit()
			if !ok {
				env.println("Nothing is being edited")
				return false
			}

			env.Store.CommitEdit()
			env.printf("Saved task %d\n", session.TargetID)
			return false
		},
	})

	Register(&Command{
		Name:        "/cancel",
		Description: "Discard the current edit",
		Handler: func(env *Env, args []string) bool {
			if !env.Store.CancelEdit() {
				env.println("Nothing is being edited")
				return false
			}

			env.println("Edit cancelled")
			return false
		},
	})

	remove := func(env *Env, args []string) bool {
		id, err := ResolveTask(env, args)
		if err != nil {
			env.printf("Usage: /delete <task>\nError: %v\n", err)
			return false
		}

		task, _ := env.Store.Get(id)
		env.Store.Delete(id)
		env.printf("Deleted: %s\n", task.Text)
		return false
	}
	Register(&Command{
		Name:        "/delete",
		Description: "Delete a task",
		Usage:       "/delete <task>",
		Handler:     remove,
	})
	// Alias
	Register(&Command{
		Name:        "/rm",
		Description: "Alias for /delete",
		Usage:       "/rm <task>",
		Hidden:      true,
		Handler:     remove,
	})

	Register(&Command{
		Name:        "/clear",
		Description: "Remove all completed tasks",
		Handler: func(env *Env, args []string) bool {
			n := env.Store.ClearCompleted()
			if n == 0 {
				env.println("No completed tasks to clear")
				return false
			}

			env.printf("Cleared %d completed task(s)\n", n)
			return false
		},
	})

	Register(&Command{
		Name:        "/filter",
		Description: "Show all, active or completed tasks",
		Usage:       "/filter <all|active|completed>",
		Handler: func(env *Env, args []string) bool {
			if len(args) == 0 {
				env.printf("Usage: /filter <all|active|completed> (current: %s)\n", env.Filter)
				return false
			}

			mode, err := todo.ParseFilter(args[0])
			if err != nil {
				env.printf("Error: %v\n", err)
				return false
			}

			// Filter is view state only: render, never persist
			env.Filter = mode
			env.Render()
			return false
		},
	})

	Register(&Command{
		Name:        "/list",
		Description: "Show the task list",
		Handler: func(env *Env, args []string) bool {
			env.Render()
			return false
		},
	})
}
