package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Long:        `Display detailed version information including build date, git commit, and Go version.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "issue-insights version: %s\n", info.Version)
			fmt.Fprintf(out, "  build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  go version: %s\n", info.GoVersion)
		},
	}
}
