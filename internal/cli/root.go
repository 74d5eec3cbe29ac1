package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pmdos-match",
	Short: "Match volunteer project professionals to charity projects",
	Long: `pmdos-match builds the team assignments for a Project Management
Day of Service event.

It reads the volunteer registration and charity project survey exports,
extracts skill requirements from the free-text project descriptions,
scores every volunteer against every project, and assigns teams under a
fixed or flexible capacity policy. The same inputs always produce the
same assignments.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/pmdos-match/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "pmdos-match", "config.toml")
	}
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pmdos-match %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}
