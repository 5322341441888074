package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/inkrt/callstack"
	"github.com/aledsdavies/inkrt/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot FILE",
	Short: "Demonstrate in-memory call-stack capture and restore",
	Long: `snapshot steps a fresh call stack a few times, captures it with
package snapshot, steps further, then restores the capture and shows the
cursor rewound to where it was captured, all in memory, no disk I/O.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cs := callstack.New(doc.Root)
		codec := snapshot.NewCodec(doc.Root)

		const warmupSteps = 3
		for i := 0; i < warmupSteps; i++ {
			if obj, ok := cs.Step(); ok {
				fmt.Fprintf(out, "step %d: %s\n", i, obj.String())
			}
		}

		data, err := codec.Capture(cs)
		if err != nil {
			return fmt.Errorf("capture snapshot: %w", err)
		}
		fmt.Fprintf(out, "captured %d bytes\n", len(data))

		for i := 0; i < warmupSteps; i++ {
			if obj, ok := cs.Step(); ok {
				fmt.Fprintf(out, "advanced past capture: %s\n", obj.String())
			}
		}

		restored, err := codec.Restore(data)
		if err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}

		obj, ok := restored.CurrentObject()
		if !ok {
			fmt.Fprintln(out, "restored: (no current object)")
			return nil
		}
		fmt.Fprintf(out, "restored cursor at: %s\n", obj.String())
		return nil
	},
}
