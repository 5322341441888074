package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/inkrt/ink"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Load a document and print its container tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		dumpContainer(cmd.OutOrStdout(), doc.Root, 0)
		return nil
	},
}

func dumpContainer(w io.Writer, c *ink.Container, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, c.String())
	for i := 0; i < c.Len(); i++ {
		child, _ := c.ChildAt(i)
		if sub, ok := child.(*ink.Container); ok {
			dumpContainer(w, sub, depth+1)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", indent, child.String())
	}
}
