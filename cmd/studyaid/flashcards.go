package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/studyaid/internal/generation"
	"github.com/phrazzld/studyaid/internal/session"
	"github.com/spf13/cobra"
)

const flashcardPrompt = "[n]ext  [p]revious  [f]lip  [s]tart over  [r]egenerate  [q]uit > "

func newFlashcardsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flashcards <project-id>",
		Short: "Drill a generated flashcard deck",
		Long: `Generate a flashcard deck for a project and step through it. Commands are
read one per line from standard input until q or end of input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			project, err := a.loadProject(ctx, args[0])
			if err != nil {
				return err
			}

			s := session.NewFlashcardSession(a.client, project, a.sessionOptions()...)
			if err := ignoreBusy(s.Generate(ctx)); err != nil {
				return generationFailure(generation.ModeFlashcards, err)
			}
			return a.drill(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// drill runs the interactive loop over a loaded deck.
func (a *app) drill(ctx context.Context, s *session.FlashcardSession, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := a.text.RenderFlashcard(out, s.View()); err != nil {
			return err
		}
		fmt.Fprint(out, flashcardPrompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "next", "":
			s.Next()
		case "p", "prev", "previous":
			s.Previous()
		case "f", "flip":
			s.Flip()
		case "s", "start":
			s.ResetDeck()
		case "r", "regenerate":
			s.Reset()
			if err := ignoreBusy(s.Generate(ctx)); err != nil {
				return generationFailure(generation.ModeFlashcards, err)
			}
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(out, "Unknown command.")
		}
	}
}
