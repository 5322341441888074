package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/inkrt/graph"
	"github.com/aledsdavies/inkrt/ipath"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve FILE PATH",
	Short: "Load a document and resolve a textual path against its root",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		p, ok := ipath.Parse(args[1])
		if !ok {
			return fmt.Errorf("unparsable path %q", args[1])
		}

		g := graph.New(doc.Root)
		obj, ok := g.Resolve(p)
		out := cmd.OutOrStdout()
		if !ok {
			fmt.Fprintln(out, "not found")
			return nil
		}
		fmt.Fprintln(out, obj.String())
		return nil
	},
}
