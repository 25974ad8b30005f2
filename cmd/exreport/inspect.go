package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exreport-go/pkg/exreport"
	"github.com/ukaji3/exreport-go/pkg/exreport/output"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.xlsx>",
		Short: "Read back cells, charts and layout of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	cmd.Flags().Bool("markdown", false, "Write a Markdown summary instead of JSON")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	pretty, _ := cmd.Flags().GetBool("pretty")
	asMarkdown, _ := cmd.Flags().GetBool("markdown")
	if pretty && asMarkdown {
		return errors.New("conflicting output formats: --pretty and --markdown cannot be used together")
	}

	wb, err := exreport.Inspect(args[0])
	if err != nil {
		return fmt.Errorf("inspect %s: %w", args[0], err)
	}

	if asMarkdown {
		return output.WriteMarkdown(cmd.OutOrStdout(), wb)
	}

	data, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
