package main

import (
	"os"

	"radphys/cmd/radphys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
