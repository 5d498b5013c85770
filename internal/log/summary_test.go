package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "seconds", ago: 10 * time.Second, want: "just now"},
		{name: "one minute", ago: 90 * time.Second, want: "1 minute ago"},
		{name: "minutes", ago: 5 * time.Minute, want: "5 minutes ago"},
		{name: "hours", ago: 3 * time.Hour, want: "3 hours ago"},
		{name: "one day", ago: 25 * time.Hour, want: "1 day ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(time.Now().Add(-tt.ago)); got != tt.want {
				t.Errorf("formatRelativeTime(-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}

	old := time.Date(2020, time.May, 4, 0, 0, 0, 0, time.Local)
	if got := formatRelativeTime(old); got != "May 4, 2020" {
		t.Errorf("formatRelativeTime(old) = %q, want %q", got, "May 4, 2020")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		op   OperationLog
		want string
	}{
		{op: OperationLog{Type: OpSelect, Index: 0, Label: "Test Tab 1"}, want: `selected tab 1 "Test Tab 1"`},
		{op: OperationLog{Type: OpClose, Index: 3, Label: "Filler Tab 4"}, want: `closed tab 4 "Filler Tab 4"`},
		{op: OperationLog{Type: OpScroll, Offset: 12, Direction: "right"}, want: "scrolled right to offset 12"},
		{op: OperationLog{Type: "other"}, want: "other"},
	}
	for _, tt := range tests {
		if got := tt.op.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}

func TestGetSessionSummaries(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, _, err := FindLatestSession(); err == nil {
		t.Error("FindLatestSession() without logs should fail")
	}

	logDir, _ := LogDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	bodies := []string{
		`{"metadata":{"session_id":"first","command_args":["demo"]}}`,
		`{"metadata":{"session_id":"second","command_args":["other"]}}`,
		`{"metadata":{"session_id":"third","command_args":[]}}`,
	}
	for i, body := range bodies {
		name := filepath.Join(logDir, time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02_150405")+".000.json")
		if err := os.WriteFile(name, []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}

	summaries, err := GetSessionSummaries(2)
	if err != nil {
		t.Fatalf("GetSessionSummaries() failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("GetSessionSummaries(2) returned %d, want 2", len(summaries))
	}
	if summaries[0].Session.Metadata.SessionID != "third" || summaries[0].Icon != "❓" {
		t.Errorf("first summary = %+v, want third with unknown icon", summaries[0])
	}
	if summaries[1].Icon != "📝" {
		t.Errorf("second summary icon = %q, want 📝", summaries[1].Icon)
	}

	latest, _, err := FindLatestSession()
	if err != nil || latest.Metadata.SessionID != "third" {
		t.Errorf("FindLatestSession() = %v, %v; want third", latest, err)
	}

	all, _ := GetSessionSummaries(0)
	if len(all) != 3 || all[2].Icon != "🗂" {
		t.Errorf("GetSessionSummaries(0) = %+v, want 3 summaries ending with the demo icon", all)
	}
}
