package main

import (
	"os"

	"github.com/kfreiman/hirecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
