package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sbalogh/rttr/core/method"
	"github.com/sbalogh/rttr/core/telemetry"
	"github.com/spf13/cobra"
)

type methodView struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Signature string `json:"signature"`
	ID        string `json:"id"`
}

func newMethodsCommand(opts *rootOptions) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the method table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.openCatalog(cmd)
			if err != nil {
				return err
			}
			defer c.shutdown(cmd.Context())

			methods := c.Methods()
			if static {
				methods = methods.Where(method.Static)
			}

			views := make([]methodView, 0, methods.Size())
			for m := range methods.All() {
				views = append(views, methodView{
					Name:      m.Name(),
					Kind:      telemetry.KindOf(m.IsStatic()).String(),
					Signature: m.Signature(),
					ID:        m.ID().String(),
				})
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}

			return writeTable(cmd.OutOrStdout(), views)
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "list static methods only")

	return cmd
}

func writeTable(w io.Writer, views []methodView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tSIGNATURE")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, v.Kind, v.Signature)
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
