package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mapline",
	Short: "Inspect and scan huge line-oriented text files",
	Long: `mapline memory-maps line-oriented text files and scans them with all
cores. It counts lines, shows line-aligned chunk layouts and summarizes
graph edge lists without ever loading the file into memory.`,
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
