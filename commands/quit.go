package commands

func init() {
	quit := func(env *Env, args []string) bool {
		if _, ok := env.Store.Edit(); ok {
			env.println("Discarding unsaved edit.")
			env.Store.CancelEdit()
		}
		env.println("Goodbye!")
		return true
	}

	Register(&Command{
		Name:        "/quit",
		Description: "Exit",
		Hidden:      true,
		Handler:     quit,
	})

	// Alias
	Register(&Command{
		Name:        "/exit",
		Description: "Exit",
		Hidden:      true,
		Handler:     quit,
	})
}
