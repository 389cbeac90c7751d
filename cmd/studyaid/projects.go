package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and create study projects",
	}
	cmd.AddCommand(newProjectsListCmd(a), newProjectsCreateCmd(a))
	return cmd
}

func newProjectsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects, err := a.client.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}
			return a.text.RenderProjects(cmd.OutOrStdout(), projects)
		},
	}
}

func newProjectsCreateCmd(a *app) *cobra.Command {
	var title, material string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project from a title and study material",
		Long: `Create a project. Pass --material - to read the study material from
standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if material == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read study material: %w", err)
				}
				material = string(data)
			}

			p, err := a.client.Create(cmd.Context(), title, material)
			if err != nil {
				if errors.Is(err, domain.ErrEmptyTitleOrMaterial) {
					return &userError{msg: "Please fill in all fields", err: err}
				}
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project #%d: %s\n", p.ID, p.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&material, "material", "", "study material, or - for standard input")
	return cmd
}
