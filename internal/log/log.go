package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type OperationType string

const (
	OpSelect OperationType = "select"
	OpClose  OperationType = "close"
	OpScroll OperationType = "scroll"
)

// AppDir is the dot-directory under the user's home holding config and logs.
const AppDir = ".scroll-tabs"

type OperationLog struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Type      OperationType `json:"type"`
	Index     int           `json:"index"`
	Label     string        `json:"label,omitempty"`
	Offset    int           `json:"offset,omitempty"`
	Direction string        `json:"direction,omitempty"`
}

type SessionMetadata struct {
	CommandArgs []string  `json:"command_args"`
	WorkingDir  string    `json:"working_dir"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id"`
	TotalOps    int       `json:"total_operations"`
	SelectOps   int       `json:"select_operations"`
	CloseOps    int       `json:"close_operations"`
	ScrollOps   int       `json:"scroll_operations"`
}

type LogSession struct {
	Metadata   SessionMetadata `json:"metadata"`
	Operations []OperationLog  `json:"operations"`
}

// Global singleton session manager
var (
	currentSession *LogSession
	sessionMutex   sync.Mutex
	loggingEnabled = true
)

// StartSession initializes a new logging session
func StartSession(command string, args []string) error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	currentSession = &LogSession{
		Metadata: SessionMetadata{
			CommandArgs: append([]string{command}, args...),
			WorkingDir:  wd,
			Timestamp:   time.Now(),
			SessionID:   uuid.NewString(),
		},
		Operations: []OperationLog{},
	}

	return nil
}

// EndSession saves the current session to disk
func EndSession() error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return nil
	}

	updateStats()
	err := WriteSession(currentSession)
	currentSession = nil
	return err
}

// Active reports whether a session is recording.
func Active() bool {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()
	return loggingEnabled && currentSession != nil
}

// LogSelect records a tab chosen from the strip
func LogSelect(index int, label string) {
	LogOperation(OperationLog{Type: OpSelect, Index: index, Label: label})
}

// LogClose records a tab closed through its close button
func LogClose(index int, label string) {
	LogOperation(OperationLog{Type: OpClose, Index: index, Label: label})
}

// LogScroll records the offset a scroll button press left behind
func LogScroll(offset int, right bool) {
	direction := "left"
	if right {
		direction = "right"
	}
	LogOperation(OperationLog{Type: OpScroll, Index: -1, Offset: offset, Direction: direction})
}

// LogOperation appends op to the current session, filling in its ID and
// timestamp
func LogOperation(op OperationLog) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return
	}

	op.ID = fmt.Sprintf("%s_%d", currentSession.Metadata.SessionID, len(currentSession.Operations))
	op.Timestamp = time.Now()

	currentSession.Operations = append(currentSession.Operations, op)
}

// updateStats updates the session statistics
func updateStats() {
	if currentSession == nil {
		return
	}

	meta := &currentSession.Metadata
	meta.SelectOps, meta.CloseOps, meta.ScrollOps = 0, 0, 0
	for _, op := range currentSession.Operations {
		switch op.Type {
		case OpSelect:
			meta.SelectOps++
		case OpClose:
			meta.CloseOps++
		case OpScroll:
			meta.ScrollOps++
		}
	}
	meta.TotalOps = len(currentSession.Operations)
}

// Initialize sets up the logging system with the given configuration
func Initialize(enabled bool, retentionDays int) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	loggingEnabled = enabled

	if enabled {
		// Clean up old logs on initialization
		if err := cleanupOldLogsUnsafe(retentionDays); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to clean up old logs: %v\n", err)
		}
	}
}

// LogDir returns the journal directory without creating it.
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, AppDir, "logs"), nil
}

func GetLogPath() (string, error) {
	logDir, err := LogDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s.%03d.json",
		now.Format("2006-01-02_150405"),
		now.Nanosecond()/1000000)

	return filepath.Join(logDir, filename), nil
}

func WriteSession(session *LogSession) error {
	if session == nil {
		return nil
	}

	logPath, err := GetLogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(logPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}

	return nil
}

func ReadSession(logPath string) (*LogSession, error) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	var session LogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// logFiles lists journal files newest first.
func logFiles() ([]string, error) {
	logDir, err := LogDir()
	if err != nil {
		return nil, err
	}

	// Check if log directory exists
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(logDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}

	// File names start with a timestamp
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

func ReadSessions(limit int) ([]*LogSession, error) {
	files, err := logFiles()
	if err != nil {
		return nil, err
	}

	// Apply limit
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	sessions := make([]*LogSession, 0, len(files))
	for _, file := range files {
		session, err := ReadSession(file)
		if err != nil {
			// Skip corrupted files
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// cleanupOldLogsUnsafe performs cleanup without acquiring mutex (assumes caller holds it)
func cleanupOldLogsUnsafe(retentionDays int) error {
	files, err := logFiles()
	if err != nil {
		return err
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to remove old log file %s: %v\n", file, err)
				continue
			}
		}
	}

	return nil
}
