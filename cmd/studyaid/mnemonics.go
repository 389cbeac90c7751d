package main

import (
	"fmt"
	"io"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/generation"
	"github.com/phrazzld/studyaid/internal/render"
	"github.com/phrazzld/studyaid/internal/session"
	"github.com/spf13/cobra"
)

func newMnemonicsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "mnemonics <project-id>",
		Short: "Generate annotated notes with glossary terms and acronyms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if format == "" {
				format = a.cfg.Render.Format
			}
			if format != "text" && format != "html" {
				return fmt.Errorf("unknown format %q: use text or html", format)
			}

			project, err := a.loadProject(ctx, args[0])
			if err != nil {
				return err
			}

			s := session.NewMnemonicSession(a.client, project, a.sessionOptions()...)
			if err := ignoreBusy(s.Generate(ctx)); err != nil {
				return generationFailure(generation.ModeMnemonics, err)
			}
			return a.renderContent(cmd.OutOrStdout(), format, s.View().Content)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: text or html (default from config)")
	return cmd
}

func (a *app) renderContent(w io.Writer, format string, content *domain.AnnotatedContent) error {
	if format == "html" {
		return render.NewHTML().RenderContent(w, content)
	}
	return a.text.RenderContent(w, content)
}
