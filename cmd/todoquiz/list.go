package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"todoquiz/internal/reminder"
	"todoquiz/internal/task"
)

func newListCmd(a *app) *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := task.NewManager(a.store, reminder.Nop{}, a.managerOptions()...)
			tasks := mgr.Search(strings.TrimSpace(search))
			if category != "" {
				c, err := task.ParseCategory(category)
				if err != nil {
					return err
				}
				tasks = slices.DeleteFunc(tasks, func(t task.Task) bool { return t.Category != c })
			}
			writeTasks(cmd.OutOrStdout(), tasks, time.Now())
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "match title, notes or category")
	return cmd
}

func writeTasks(w io.Writer, tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	for _, t := range tasks {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		flag := " "
		switch {
		case t.OverdueAt(now):
			flag = "!"
		case t.DueSoonAt(now):
			flag = "~"
		}
		fmt.Fprintf(w, "%s %s %s %s  (%s, due %s)\n", shortID(t.ID), flag, box, t.Title,
			t.Category, humanize.RelTime(t.Due, now, "ago", "from now"))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
