package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exreport-go/pkg/exreport/definition"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List report definitions that can be built by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, err := definition.List()
			if err != nil {
				return err
			}
			for _, s := range sources {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", s.Name, s.Path)
			}
			return nil
		},
	}
}
