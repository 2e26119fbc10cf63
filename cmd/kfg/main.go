package main

import (
	"os"

	"github.com/felpofo/kfg/cmd/kfg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
