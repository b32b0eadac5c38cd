package main

import (
	"os"

	"drills/cmd/drills/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
