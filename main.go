package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"tasklist/commands"
	"tasklist/config"
	"tasklist/log"
	"tasklist/storage"
	"tasklist/todo"
)

const (
	prompt     = "> "
	editPrompt = "edit> "
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("tasklist exited")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	log.Setup(os.Stderr, cfg.LogLevel, cfg.IsDevelopment())

	if err := cfg.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	snapshot := storage.NewSnapshot(kv, cfg.Key)
	store := todo.NewStore(snapshot.Load())
	todo.AutoSave(store, snapshot)

	log.Info().
		Str("backend", cfg.Backend).
		Str("path", cfg.StorePath()).
		Str("key", snapshot.Key()).
		Int("tasks", store.Len()).
		Msg("task list loaded")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "/quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	env := commands.NewEnv(store, rl.Stdout())

	fmt.Fprintln(rl.Stdout(), "Todo List. Type text to add a task, /help for commands.")
	env.Render()

	for {
		syncPrompt(rl, env)

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// ^C leaves edit mode first, then exits on an empty line
			if store.CancelEdit() {
				fmt.Fprintln(rl.Stdout(), "Edit cancelled")
				continue
			}
			if len(line) == 0 {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)

		if strings.HasPrefix(input, "/") {
			quit, err := commands.Execute(env, input)
			if err != nil {
				fmt.Fprintf(rl.Stdout(), "%v. Type /help for available commands.\n", err)
			}
			if quit {
				break
			}
			continue
		}

		// While editing the raw line is the draft; it is saved untrimmed
		if _, editing := store.Edit(); editing {
			commands.Submit(env, line)
			continue
		}
		if input == "" {
			continue
		}
		commands.Submit(env, input)
	}

	return nil
}

// openStore opens the key-value backend selected in cfg
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return storage.NewSQLiteStore(cfg.StorePath())
	default:
		return storage.NewJSONStore(cfg.StorePath())
	}
}

// syncPrompt switches the prompt to edit mode and prefills the draft while a
// task is being edited
func syncPrompt(rl *readline.Instance, env *commands.Env) {
	session, editing := env.Store.Edit()
	if !editing {
		rl.SetPrompt(prompt)
		return
	}

	rl.SetPrompt(editPrompt)
	if _, err := rl.WriteStdin([]byte(session.Draft)); err != nil {
		log.Debug().Err(err).Msg("failed to prefill draft")
	}
}
