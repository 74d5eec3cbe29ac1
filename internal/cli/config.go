package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "pmdos-match")
	dataDir := filepath.Join(home, ".local", "share", "pmdos-match")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'pmdos-match config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Point input.dir at the folder holding the survey CSV exports")
	fmt.Println("  2. Run 'pmdos-match run' to build the assignments")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'pmdos-match config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# PMDoS Match Configuration

[input]
dir = "."  # where the survey CSV exports live; newest matching file wins
# volunteer_file = "registrations.csv"  # set to skip discovery
# project_file = "projects.csv"

[matching]
policy = "flexible"          # "fixed" (teams of 2) or "flexible" (teams of 2-4)
fixed_capacity = 2
flexible_max_capacity = 4
employer_diversity = true    # prefer distinct employers per team

[catalog]
# path = "catalog.toml"      # override the built-in skill catalog

[database]
path = "~/.local/share/pmdos-match/history.db"

[logging]
json = false
debug = false
`
