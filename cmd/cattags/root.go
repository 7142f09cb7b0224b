package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cattags",
	Short:        "Cat tag service",
	Long:         `Save cat tags validated against cataas and fetch random cat pictures for them.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
