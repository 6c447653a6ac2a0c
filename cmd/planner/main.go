package main

import (
	"fmt"
	"os"

	"weddingplanner/cli"
	"weddingplanner/infrastructure/logger"
)

func main() {
	if err := logger.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
