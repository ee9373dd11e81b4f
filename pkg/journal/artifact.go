package journal

import "time"

// ConfigArchive records a timestamped, content-hashed copy of a
// configuration file.
type ConfigArchive struct {
	OriginalPath string
	ArchivePath  string
	Timestamp    time.Time
	ContentHash  string // hex-encoded SHA-256
	Reason       string
	JournalEntry string // optional entry id
	Stage        string // optional
}

// LogOutcome classifies how the process that produced a preserved log
// concluded.
type LogOutcome string

const (
	LogOutcomeSuccess     LogOutcome = "success"
	LogOutcomeFailure     LogOutcome = "failure"
	LogOutcomeInterrupted LogOutcome = "interrupted"
	LogOutcomeUnknown     LogOutcome = "unknown"
)

var validLogOutcomes = map[LogOutcome]bool{
	LogOutcomeSuccess: true, LogOutcomeFailure: true,
	LogOutcomeInterrupted: true, LogOutcomeUnknown: true,
}

// ValidLogOutcome reports whether o is one of the four enumerated outcomes.
func ValidLogOutcome(o LogOutcome) bool { return validLogOutcomes[o] }

// LogRecord records a preserved log file.
type LogRecord struct {
	OriginalPath  string
	PreservedPath string
	Timestamp     time.Time
	Category      string
	Outcome       LogOutcome
	SizeBytes     int64
}

// Snapshot records a whole-system state capture.
type Snapshot struct {
	Name             string
	Timestamp        time.Time
	Configs          map[string]string
	Environment      map[string]string
	Versions         map[string]string
	BuildDirListing  []string
}
