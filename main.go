package main

import (
	"os"

	"github.com/synthwatch/telegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
