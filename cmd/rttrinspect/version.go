package main

import (
	"fmt"

	"github.com/sbalogh/rttr/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi, err := version.BuildInfo()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), version.Describe(bi))

			return nil
		},
	}
}
