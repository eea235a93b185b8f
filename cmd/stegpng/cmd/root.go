/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/stegpng/pkg/config"
	"github.com/ssargent/stegpng/pkg/png"
)

var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stegpng",
	Short: "stegpng - hide and recover messages in PNG chunks",
	Long: `stegpng embeds, extracts and removes secret messages carried as
ancillary chunks inside PNG files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			if def := config.GetDefaultConfigPath(); config.ConfigExists(def) {
				path = def
			} else {
				cfg = config.DefaultConfig()
				return nil
			}
		}
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global config file flag
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a stegpng config file")
}

// loadPNG reads and parses a PNG container from disk.
func loadPNG(path string) (*png.PNG, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	p, err := png.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return p, data, nil
}

// backupFile keeps a copy of the original bytes next to the file before an
// in-place rewrite. The ksuid suffix keeps repeated rewrites from clobbering
// earlier backups.
func backupFile(path string, data []byte) (string, error) {
	name := fmt.Sprintf("%s.bak-%s", path, ksuid.New().String())
	if err := os.WriteFile(name, data, 0600); err != nil {
		return "", err
	}
	return name, nil
}
