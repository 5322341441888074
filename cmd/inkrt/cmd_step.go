package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/inkrt/callstack"
)

var stepCmd = &cobra.Command{
	Use:   "step FILE [N]",
	Short: "Step a fresh call stack through the document, printing each node",
	Long: `step constructs a callstack.CallStack rooted at the document and
calls Step() repeatedly, printing each returned node. With no count, it
steps until the call stack is exhausted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		limit := -1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			limit = n
		}

		cs := callstack.New(doc.Root)
		out := cmd.OutOrStdout()
		for i := 0; limit < 0 || i < limit; i++ {
			obj, ok := cs.Step()
			if !ok {
				fmt.Fprintln(out, "(exhausted)")
				break
			}
			fmt.Fprintf(out, "[depth %d] %s\n", cs.Depth(), obj.String())
		}
		return nil
	},
}
