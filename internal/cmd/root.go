/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/Digital-Shane/scroll-tabs/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scroll-tabs",
	Short: "A scrollable tab strip for terminal UIs",
	Long: `scroll-tabs hosts a tab container whose strip scrolls when the tabs no
longer fit. Hold a scroll button to page through the tabs, click a tab to
select it, or click its close glyph to remove it.

Every interaction in the demo is recorded to a session journal that the
log command can browse later.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.scroll-tabs/config.json)")
}

// loadConfig reads the file named by --config, or the default config file.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.LoadFrom(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configFile, err)
		}
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// runProgram drives a model until it quits. Tests replace it.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}
