package main

import (
	"os"

	"github.com/example/airops/internal/cli"
	"github.com/example/airops/internal/version"
)

func main() {
	rootCmd := cli.RootCmd()
	rootCmd.Version = version.String()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
