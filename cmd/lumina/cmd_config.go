package main

import (
	"fmt"
	"os"

	"lumina/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the Lumina configuration file",
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes the default configuration to --config (default .lumina/config.yaml).
An existing file is left untouched. The API key is never written; set
GEMINI_API_KEY in the environment instead.`,
	Args: cobra.NoArgs,
	RunE: initConfig,
}

func initConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists at %s\n", configPath)
		return nil
	}

	def := config.DefaultConfig()
	if err := def.Save(configPath); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", configPath)
	return nil
}
