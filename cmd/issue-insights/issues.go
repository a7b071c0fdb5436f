package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/issues"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/output"
)

func newStaleCmd(a *app) *cobra.Command {
	var (
		staleDays int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "stale [file]",
		Short: "List issues not updated within the stale threshold",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := a.staleThreshold(cmd, staleDays)
			if err != nil {
				return err
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			staleness := issues.Staleness{}
			analyzer := issues.NewAnalyzer(issues.ParseIssueJSONWithLogger(in.data, a.logger), issues.WithLogger(a.logger))
			stale, err := analyzer.StaleIssues(threshold)
			if err != nil {
				return err
			}

			report := output.NewReport(in.source, threshold, issues.Summary{})
			if err := report.AddStaleIssues(stale, staleness); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				entries := report.StaleIssues
				if entries == nil {
					entries = []output.StaleIssue{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, si := range report.StaleIssues {
				ref := "-"
				if si.Number > 0 {
					ref = fmt.Sprintf("#%d", si.Number)
				}
				fmt.Fprintf(out, "%s\t%s\t%dd\t%s\n", ref, si.LastUpdated, si.DaysSince, si.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&staleDays, "stale-days", "d", issues.DefaultStaleThresholdDays, "Days without update after which an issue is stale")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print stale issues as JSON")

	return cmd
}

func newLabelsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "labels [file]",
		Short: "Count issues per label",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			counts := issues.NewAnalyzer(issues.ParseIssueJSONWithLogger(in.data, a.logger)).CountByLabel()
			out := cmd.OutOrStdout()

			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(counts)
			case "yaml":
				return yaml.NewEncoder(out).Encode(counts)
			case "", "text":
				for _, lc := range output.SortedLabelCounts(counts) {
					fmt.Fprintf(out, "%s\t%d\n", lc.Name, lc.Count)
				}
				return nil
			default:
				return errors.ValidationError(fmt.Sprintf("unknown labels format %q (want text, json or yaml)", format), nil)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}

// input is issue JSON together with a name for where it came from.
type input struct {
	data   string
	source string
}

func isStdin(args []string) bool {
	return len(args) == 0 || args[0] == "-"
}

func readInput(cmd *cobra.Command, args []string) (input, error) {
	if isStdin(args) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return input{}, errors.IOError("failed to read stdin", err)
		}
		return input{data: string(data), source: "stdin"}, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return input{}, errors.IOError(fmt.Sprintf("failed to read %s", args[0]), err)
	}
	return input{data: string(data), source: args[0]}, nil
}

// staleThreshold returns the --stale-days flag when set, else the config value.
func (a *app) staleThreshold(cmd *cobra.Command, flagValue int) (int, error) {
	threshold := a.cfg.StaleThreshold()
	if cmd.Flags().Changed("stale-days") {
		threshold = flagValue
	}
	if threshold < 0 {
		return 0, errors.ValidationError(fmt.Sprintf("stale threshold must be non-negative, got %d", threshold), nil)
	}
	return threshold, nil
}

func joinFormats() string {
	return strings.Join(output.Formats, ", ")
}
