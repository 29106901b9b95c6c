package main

import (
	"os"

	"github.com/gyeh/chartrename/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
