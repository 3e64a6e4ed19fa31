package commands

import (
	"github.com/rs/zerolog"

	"tasklist/log"
)

// levelBeforeDebug remembers the level /debug switched away from
var levelBeforeDebug = "info"

func init() {
	Register(&Command{
		Name:        "/debug",
		Description: "Toggle debug logging",
		Hidden:      true,
		Handler: func(env *Env, args []string) bool {
			if IsDebugMode() {
				log.SetLevel(levelBeforeDebug)
				env.println("Debug mode: OFF")
			} else {
				levelBeforeDebug = log.GetLevel().String()
				log.SetLevel("debug")
				env.println("Debug mode: ON")
			}
			return false
		},
	})
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	return log.GetLevel() <= zerolog.DebugLevel
}
