package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"radphys/entity/concept"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick a page from an interactive menu and serve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), os.Stdin)
		},
	}
}

// runMenu loops over a numbered menu read from in. Selecting an entry serves
// that page until interrupted; 0 exits normally.
func runMenu(ctx context.Context, in io.Reader) error {
	concepts := concept.All()
	scanner := bufio.NewScanner(in)

	for {
		fmt.Println("\nRadiation Physics Interactive Education")
		fmt.Println("\nAvailable applications:")
		for i, c := range concepts {
			fmt.Printf("%d. %s\n   %s\n", i+1, c.Title(), c.Description())
		}
		fmt.Println("a. All pages")
		fmt.Println("0. Exit")
		fmt.Printf("\nSelect an application to run (1-%d, a, 0): ", len(concepts))

		if !scanner.Scan() {
			return scanner.Err()
		}
		choice := strings.TrimSpace(scanner.Text())
		if choice == "0" {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if choice != "a" && choice != "A" {
			n, err := strconv.Atoi(choice)
			if err != nil || n < 1 || n > len(concepts) {
				fmt.Printf("Invalid choice: %q\n", choice)
				continue
			}
			cfg.Concepts = []string{concepts[n-1].String()}
		}
		if err := serve(ctx, cfg); err != nil {
			return err
		}
	}
}
