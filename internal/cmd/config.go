package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Digital-Shane/scroll-tabs/internal/config"
	configui "github.com/Digital-Shane/scroll-tabs/internal/tui/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the tab strip configuration",
	Long: `Open an editor for the tab strip settings with a live preview of the
strip. Ctrl+S saves to the config file.

With --print the effective configuration is printed instead, after defaults,
the config file and SCROLL_TABS_* environment variables are merged. With
--reset the config file is overwritten with the defaults first.`,
	Args: cobra.NoArgs,
	RunE: runConfigCommand,
}

var configFlags struct {
	reset bool
	print bool
}

func runConfigCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configFlags.reset {
		cfg := config.DefaultConfig()
		var err error
		if configFile != "" {
			err = cfg.SaveTo(configFile)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		fmt.Fprintln(out, "Configuration reset to defaults.")
		if !configFlags.print {
			return nil
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if configFlags.print {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	model := configui.New(cfg, configui.WithTheme(cfg.Theme()), configui.WithPath(configFile))
	if _, err := runProgram(model, tea.WithAltScreen()); err != nil {
		return fmt.Errorf("failed to run config UI: %w", err)
	}
	return nil
}

func init() {
	configCmd.Flags().BoolVar(&configFlags.reset, "reset", false, "Overwrite the config file with the defaults")
	configCmd.Flags().BoolVar(&configFlags.print, "print", false, "Print the effective configuration as JSON")
	rootCmd.AddCommand(configCmd)
}
