package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A concurrency-safe NxNxN cube",
	Long: `Cube is an NxNxN cube whose rotations and snapshots are safe to call
from many goroutines at once, plus a handful of commands for driving one
from the command line.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(stressCmd)
}
