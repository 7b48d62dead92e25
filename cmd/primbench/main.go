package main

import (
	"os"

	"github.com/msto63/primarray/cmd/primbench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
