package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"todoquiz/internal/quiz"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print past quiz results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := quiz.NewHistory(a.store).Display()
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No quiz results yet.")
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s %s  %s  %s\n", r.Emoji, r.Result, r.QuizTitle, humanize.Time(r.Date))
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every quiz result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiz.NewHistory(a.store).Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return cmd
}
