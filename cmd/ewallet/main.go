package main

import (
	"os"

	"ewallet/cmd/ewallet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
