package main

import (
	"github.com/spf13/cobra"

	"todoquiz/internal/quiz"
	"todoquiz/internal/ui"
)

func newQuizCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Take a personality quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.logToFile()()
			return ui.RunQuiz(quiz.NewHistory(a.store), a.cfg)
		},
	}
}
