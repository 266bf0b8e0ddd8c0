package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"todoquiz/internal/config"
	"todoquiz/internal/reminder"
	"todoquiz/internal/storage"
	"todoquiz/internal/task"
	"todoquiz/internal/ui"
)

// app holds what every subcommand needs once the config is loaded.
type app struct {
	cfg   config.Config
	store *storage.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "todoquiz",
		Short:         "To-do list and personality quizzes in the terminal",
		Long:          "Runs the to-do list by default. Use the quiz command for the quiz runner.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTodo()
		},
	}
	root.AddCommand(
		newQuizCmd(a),
		newListCmd(a),
		newHistoryCmd(a),
		newShareCmd(a),
	)
	return root
}

func (a *app) open() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.cfg = cfg
	a.store = store
	return nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
		a.store = nil
	}
}

func (a *app) managerOptions() []task.Option {
	if a.cfg.SeedSamples {
		return []task.Option{task.WithSamples()}
	}
	return nil
}

// logToFile sends the standard logger to the configured file while a TUI
// owns the terminal.
func (a *app) logToFile() func() {
	f, err := tea.LogToFile(a.cfg.LogFile, config.AppName+" ")
	if err != nil {
		return func() {}
	}
	return func() { f.Close() }
}

func (a *app) runTodo() error {
	defer a.logToFile()()

	notifier := reminder.NewLocal(a.cfg.Reminders.Enabled)
	defer notifier.Close()

	mgr := task.NewManager(a.store, notifier, a.managerOptions()...)
	mgr.RestoreReminders()
	return ui.RunTodo(mgr, a.cfg, notifier.Alerts())
}
