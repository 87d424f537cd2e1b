package main

import (
	"fmt"
	"os"

	"vid2doc/cmd/v2d/cmd"
	"vid2doc/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
