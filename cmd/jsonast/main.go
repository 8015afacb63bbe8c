package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsonast",
		Short: "Positional AST tooling for JSON-like documents",
	}

	rootCmd.AddCommand(newParseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
