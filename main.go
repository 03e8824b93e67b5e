package main

import (
	"os"

	"github.com/tplcheck/tplcheck/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
