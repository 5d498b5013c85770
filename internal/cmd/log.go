package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Digital-Shane/scroll-tabs/internal/log"
	"github.com/Digital-Shane/scroll-tabs/internal/tui/journal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Browse recorded demo sessions",
	Long: `Display the journals of recent demo sessions.

Each session lists the tabs that were selected, closed and scrolled, in the
order it happened. Use --plain to print the journals instead of opening the
browser.`,
	Args: cobra.NoArgs,
	RunE: runLogCommand,
}

var logFlags struct {
	limit int
	plain bool
}

func runLogCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summaries, err := log.GetSessionSummaries(logFlags.limit)
	if err != nil {
		return fmt.Errorf("failed to read log sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No recorded sessions found.")
		return nil
	}
	if logFlags.plain {
		printSessions(out, summaries)
		return nil
	}

	tree := journal.NewTree(summaries)
	if nodes := tree.Nodes(); len(nodes) > 0 {
		if _, err := tree.SetFocusedID(context.Background(), nodes[0].ID()); err != nil {
			return fmt.Errorf("failed to focus latest session: %w", err)
		}
	}

	model := journal.New(tree, journal.WithTheme(cfg.Theme()))
	if _, err := runProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()); err != nil {
		return fmt.Errorf("failed to run journal browser: %w", err)
	}
	return nil
}

func printSessions(w io.Writer, summaries []log.SessionSummary) {
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		meta := s.Session.Metadata
		fmt.Fprintf(w, "%s %s - %s (%d ops)\n", s.Icon, strings.Join(meta.CommandArgs, " "), s.RelativeTime, meta.TotalOps)
		fmt.Fprintf(w, "  session %s\n", meta.SessionID)
		for _, op := range s.Session.Operations {
			fmt.Fprintf(w, "  %s  %s\n", op.Timestamp.Format("15:04:05"), op.Describe())
		}
	}
}

func init() {
	logCmd.Flags().IntVarP(&logFlags.limit, "limit", "n", 20, "Number of sessions to show, 0 for all")
	logCmd.Flags().BoolVar(&logFlags.plain, "plain", false, "Print the journals instead of opening the browser")
	rootCmd.AddCommand(logCmd)
}
