package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-defense/internal/quiz"
)

var flagShowAnswers bool

var questionsCmd = &cobra.Command{
	Use:   "questions [file]",
	Short: "List or validate a question file",
	Long: `Without an argument, shows the questions the game would use, searching
--questions, ~/.virusdefense/questions.{json,yaml}, ./questions.json and
../questions.json before falling back to the built-in set.

With a file argument, validates that file and exits non-zero when it holds
no complete question.

File format (JSON or YAML):
  {"questions": [{"id": "1", "text": "2+2?", "answer": "4"}]}

Examples:
  virusdefense questions
  virusdefense questions ./questions.yaml
  virusdefense questions --answers`,
	Args: cobra.MaximumNArgs(1),
	Run:  runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&flagShowAnswers, "answers", false, "Show expected answers")
}

func runQuestions(_ *cobra.Command, args []string) {
	var (
		set  *quiz.Set
		from string
	)

	if len(args) == 1 {
		loaded, err := quiz.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		set, from = loaded, args[0]
	} else {
		set, from = quiz.Resolve(flagQuestions, nil)
	}

	fmt.Printf("%d questions from %s\n\n", set.Count(), from)
	for _, q := range set.All() {
		if flagShowAnswers {
			fmt.Printf("  %-6s  %s  => %q\n", q.ID, q.Text, q.Answer)
			continue
		}
		fmt.Printf("  %-6s  %s\n", q.ID, q.Text)
	}
}
