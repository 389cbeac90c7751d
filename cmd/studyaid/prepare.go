package main

import (
	"fmt"

	"github.com/phrazzld/studyaid/internal/generation"
	"github.com/phrazzld/studyaid/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newPrepareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare <project-id>",
		Short: "Generate flashcards and mnemonics for a project at the same time",
		Long: `Request a flashcard deck and annotated mnemonics concurrently and report
what was produced. The first failure cancels the other request.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cards := session.NewFlashcardSession(a.client, project, a.sessionOptions()...)
			notes := session.NewMnemonicSession(a.client, project, a.sessionOptions()...)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				if err := ignoreBusy(cards.Generate(ctx)); err != nil {
					return generationFailure(generation.ModeFlashcards, err)
				}
				return nil
			})
			g.Go(func() error {
				if err := ignoreBusy(notes.Generate(ctx)); err != nil {
					return generationFailure(generation.ModeMnemonics, err)
				}
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			content := notes.View().Content
			points := 0
			for _, sec := range content.Sections {
				points += len(sec.Points)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prepared %q\n", project.Title)
			fmt.Fprintf(out, "  Flashcards: %d cards\n", cards.View().Total)
			fmt.Fprintf(out, "  Mnemonics:  %d sections, %d points\n", len(content.Sections), points)
			return nil
		},
	}
}
