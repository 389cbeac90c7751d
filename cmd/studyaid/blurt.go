package main

import (
	"fmt"
	"io"

	"github.com/phrazzld/studyaid/internal/generation"
	"github.com/phrazzld/studyaid/internal/session"
	"github.com/spf13/cobra"
)

func newBlurtCmd(a *app) *cobra.Command {
	var answer string
	var hideMaterial bool

	cmd := &cobra.Command{
		Use:   "blurt <project-id>",
		Short: "Write down everything you remember and get it scored",
		Long: `Score a recalled answer against the project's study material. The answer
is taken from --answer or, when absent, read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			project, err := a.loadProject(ctx, args[0])
			if err != nil {
				return err
			}

			s := session.NewBlurtSession(a.client, project, a.sessionOptions()...)
			if hideMaterial {
				s.ToggleMaterial()
			}

			if !cmd.Flags().Changed("answer") {
				if s.View().ShowMaterial {
					fmt.Fprintf(out, "%s\n\n%s\n\n", project.Title, project.StudyMaterial)
				}
				fmt.Fprintln(out, "Write everything you remember, then end input (Ctrl-D):")
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read answer: %w", err)
				}
				answer = string(data)
			}

			if err := ignoreBusy(s.Submit(ctx, answer)); err != nil {
				return generationFailure(generation.ModeBlurt, err)
			}

			view := s.View()
			if view.State != session.BlurtSucceeded {
				return nil
			}
			return a.text.RenderAnalysis(out, view.Analysis)
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "the recalled answer")
	cmd.Flags().BoolVar(&hideMaterial, "hide-material", false, "do not show the study material before reading the answer")
	return cmd
}
