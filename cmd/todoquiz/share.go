package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"todoquiz/internal/reminder"
	"todoquiz/internal/task"
)

func newShareCmd(a *app) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "share <id-prefix>",
		Short: "Copy a task summary to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := task.NewManager(a.store, reminder.Nop{}, a.managerOptions()...)
			t, err := findByPrefix(mgr.Tasks(), args[0])
			if err != nil {
				return err
			}
			text := t.ShareText()
			out := cmd.OutOrStdout()
			if printOnly {
				fmt.Fprintln(out, text)
				return nil
			}
			if err := clipboard.WriteAll(text); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "clipboard unavailable (%v), printing instead\n", err)
				fmt.Fprintln(out, text)
				return nil
			}
			fmt.Fprintf(out, "Copied %q to clipboard.\n", t.Title)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print instead of copying")
	return cmd
}

func findByPrefix(tasks []task.Task, prefix string) (task.Task, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return task.Task{}, errors.New("empty id prefix")
	}
	var found []task.Task
	for _, t := range tasks {
		if strings.HasPrefix(strings.ToLower(t.ID), prefix) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return task.Task{}, fmt.Errorf("no task with id prefix %q", prefix)
	case 1:
		return found[0], nil
	}
	return task.Task{}, fmt.Errorf("id prefix %q matches %d tasks", prefix, len(found))
}
