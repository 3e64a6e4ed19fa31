package commands

import (
	"sort"
)

func init() {
	Register(&Command{
		Name:        "/help",
		Description: "Show available commands",
		Hidden:      true,
		Handler: func(env *Env, args []string) bool {
			env.println("Available commands:")

			// Get all commands and sort by name
			cmds := List()
			sort.Slice(cmds, func(i, j int) bool {
				return cmds[i].Name < cmds[j].Name
			})

			for _, cmd := range cmds {
				if cmd.Hidden {
					continue
				}
				usage := cmd.Usage
				if usage == "" {
					usage = cmd.Name
				}
				env.printf("  %-32s - %s\n", usage, cmd.Description)
			}
			env.println("Type plain text to add a task, or to save it while editing.")

			return false
		},
	})
}
