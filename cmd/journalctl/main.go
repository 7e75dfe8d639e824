package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "journalctl",
	Short: "Run and manage the learning journal server",
	Long: `journalctl runs and manages the learning journal server.

The journal is a single-operator blog: the operator logs in to write and
edit markdown entries, everyone else can read them.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
