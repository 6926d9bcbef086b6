package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b33j0r/cbasic/interp"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "eval <line>...",
		Short:         "Evaluate CBASIC lines non-interactively",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in := interp.New(out)
			for _, line := range args {
				if err := in.EvalLine(line); err != nil {
					return fmt.Errorf("parse error: %s", err)
				}
			}

			fmt.Fprint(out, "Stack:")
			for _, v := range in.Stack() {
				fmt.Fprintf(out, " %d", v)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
