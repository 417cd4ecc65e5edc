package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"radphys/entity/concept"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available concept pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range concept.All() {
				fmt.Printf("%-22s%s\n", c.String(), c.Description())
			}
			return nil
		},
	}
}
