package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInvokeCommand(opts *rootOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "invoke <method> [args...]",
		Short: "Invoke a method with string arguments",
		Long: `Invoke a method with string arguments.

Arguments are parsed into the parameter types of the overload that accepts
their number. The result is printed as JSON unless the type encodes itself.

Example:
  rttrinspect --account alice=10 --account bob invoke Transfer alice bob 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.openCatalog(cmd)
			if err != nil {
				return err
			}
			defer c.shutdown(cmd.Context())

			if check {
				if err = c.Check(args[0], args[1:]...); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}

			out, err := c.Invoke(args[0], args[1:]...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "validate the arguments without invoking")

	return cmd
}
