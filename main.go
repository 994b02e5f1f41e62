package main

import (
	"os"

	"github.com/parsa1021/tripguide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
