package log

import (
	"fmt"
	"time"
)

type SessionSummary struct {
	Session      *LogSession
	FilePath     string
	RelativeTime string
	Icon         string
}

// FindLatestSession returns the newest journal and its file.
func FindLatestSession() (*LogSession, string, error) {
	files, err := logFiles()
	if err != nil {
		return nil, "", err
	}
	if len(files) == 0 {
		return nil, "", fmt.Errorf("no sessions found")
	}

	session, err := ReadSession(files[0])
	if err != nil {
		return nil, "", err
	}
	return session, files[0], nil
}

// GetSessionSummaries lists up to limit journals, newest first. A limit of
// zero lists all of them.
func GetSessionSummaries(limit int) ([]SessionSummary, error) {
	files, err := logFiles()
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, 0, len(files))
	for _, file := range files {
		if limit > 0 && len(summaries) == limit {
			break
		}
		session, err := ReadSession(file)
		if err != nil {
			continue
		}

		summaries = append(summaries, SessionSummary{
			Session:      session,
			FilePath:     file,
			RelativeTime: formatRelativeTime(session.Metadata.Timestamp),
			Icon:         getCommandIcon(session.Metadata.CommandArgs),
		})
	}

	return summaries, nil
}

// Describe renders one journal entry as a short line.
func (op OperationLog) Describe() string {
	switch op.Type {
	case OpSelect:
		return fmt.Sprintf("selected tab %d %q", op.Index+1, op.Label)
	case OpClose:
		return fmt.Sprintf("closed tab %d %q", op.Index+1, op.Label)
	case OpScroll:
		return fmt.Sprintf("scrolled %s to offset %d", op.Direction, op.Offset)
	default:
		return string(op.Type)
	}
}

func formatRelativeTime(t time.Time) string {
	duration := time.Since(t)
	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case duration < 7*24*time.Hour:
		days := int(duration.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func getCommandIcon(args []string) string {
	if len(args) == 0 {
		return "❓"
	}

	switch args[0] {
	case "demo":
		return "🗂"
	default:
		return "📝"
	}
}
