package main

import (
	"os"

	"github.com/lone-faerie/tempconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if exit, ok := err.(*cmd.ExitError); ok {
			os.Exit(exit.Code)
		}

		os.Exit(1)
	}
}
