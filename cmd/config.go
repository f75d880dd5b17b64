package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jclemens/inkplot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage inkplot configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.json template to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			return fmt.Errorf("%s already exists — delete it first to re-init", config.DefaultConfigFile)
		}
		if err := config.WriteFile(config.DefaultConfigFile, config.Template()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", config.DefaultConfigFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		cfg := deps.Config
		source := cfg.ConfigPath
		if source == "" {
			source = "(defaults — no config.json found)"
		}
		fmt.Printf("config:         %s\n", source)
		fmt.Printf("format:         %s\n", cfg.Format)
		fmt.Printf("bar width:      %d\n", cfg.BarWidth)
		fmt.Printf("plot size:      %dx%d\n", cfg.PlotWidth, cfg.PlotHeight)
		fmt.Printf("panels per row: %d\n", cfg.PanelsPerRow)
		fmt.Printf("no color:       %v\n", cfg.NoColor)
		fmt.Printf("db path:        %s\n", cfg.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
