package main

import (
	"os"

	"github.com/rustyeddy/raroc/cmd/raroc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
