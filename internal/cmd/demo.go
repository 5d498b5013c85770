package cmd

import (
	"fmt"

	"github.com/Digital-Shane/scroll-tabs/internal/config"
	"github.com/Digital-Shane/scroll-tabs/internal/log"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/demo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive tab strip demo",
	Long: `Open a full screen demo of the scrolling tab container.

The demo starts with a plain colored tab, a button tab, a tab that toggles
the selection color, several filler tabs and an index of every tab. Press n
to add tabs until the strip overflows, then hold a scroll button.`,
	Args: cobra.NoArgs,
	RunE: runDemoCommand,
}

var demoFlags struct {
	tabs     int
	noClose  bool
	minWidth int
	maxWidth int
	bottom   bool
	ascii    bool
}

func runDemoCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDemoFlags(cmd, cfg)

	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)
	if err := log.StartSession(cmd.Name(), sessionArgs(cmd)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to start log session: %v\n", err)
	}

	_, err = runProgram(newDemoModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if endErr := log.EndSession(); endErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save log session: %v\n", endErr)
	}
	if err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}

// applyDemoFlags lets explicitly set flags override the loaded config.
func applyDemoFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("no-close") {
		cfg.CloseButtons = !demoFlags.noClose
	}
	if flags.Changed("min-width") {
		cfg.MinTabWidth = demoFlags.minWidth
	}
	if flags.Changed("max-width") {
		cfg.MaxTabWidth = demoFlags.maxWidth
	}
	if flags.Changed("ascii") {
		cfg.ASCIIGlyphs = demoFlags.ascii
	}
	cfg.Validate()
}

func newDemoModel(cfg *config.Config) *demo.Model {
	return demo.New(
		demo.WithTheme(cfg.Theme()),
		demo.WithTabOptions(cfg.TabOptions()),
		demo.WithExtraTabs(demoFlags.tabs),
		demo.WithBottomStrip(demoFlags.bottom),
	)
}

// sessionArgs records the flags the user set, so the journal shows how the
// demo was started.
func sessionArgs(cmd *cobra.Command) []string {
	var args []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		args = append(args, fmt.Sprintf("--%s=%s", f.Name, f.Value.String()))
	})
	return args
}

func init() {
	demoCmd.Flags().IntVar(&demoFlags.tabs, "tabs", 0, "Extra filler tabs to add after the standard ones")
	demoCmd.Flags().BoolVar(&demoFlags.noClose, "no-close", false, "Hide the close glyph on every tab")
	demoCmd.Flags().IntVar(&demoFlags.minWidth, "min-width", 0, "Minimum tab width in cells")
	demoCmd.Flags().IntVar(&demoFlags.maxWidth, "max-width", 0, "Maximum tab width in cells, longer labels are truncated")
	demoCmd.Flags().BoolVar(&demoFlags.bottom, "bottom", false, "Place the tab strip below the panes")
	demoCmd.Flags().BoolVar(&demoFlags.ascii, "ascii", false, "Use ASCII glyphs instead of Unicode icons")
	rootCmd.AddCommand(demoCmd)
}
