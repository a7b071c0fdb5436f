package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/demo"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "demo",
		Short:       "Run the arithmetic demo",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, demo.HelloWorld())
			fmt.Fprintf(out, "2 + 3 = %d\n", demo.AddNumbers(2, 3))

			calc := demo.NewCalculator()
			fmt.Fprintf(out, "4 * 5 = %g\n", calc.Multiply(4, 5))
		},
	}
}
