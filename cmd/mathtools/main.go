package main

import (
	"os"

	"github.com/engmath/mathtools/cmd/mathtools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
