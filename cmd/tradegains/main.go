package main

import (
	"os"

	"tradegains/cmd/tradegains/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
