package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "campuskit",
	Short: "campuskit is a command-line client for the campus community platform",
	Long: `A command-line client for the campus community platform: log in,
inspect your profile, browse the rating and the forum. Tokens are kept
in a local database and refreshed automatically when they expire.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
}
