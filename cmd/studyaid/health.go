package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the study service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("study service is not healthy: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Study service is healthy.")
			return nil
		},
	}
}
