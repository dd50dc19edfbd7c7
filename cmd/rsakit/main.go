package main

import (
	"os"

	"rsakit/cmd/rsakit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
