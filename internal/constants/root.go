package constants

const (
	AppName            = "trackerd"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/trackerd/trackerd.db"
	Version            = "v0.2.0"

	// DateFormat is the canonical day key used throughout the application (YYYY-MM-DD).
	// Completion records are keyed by this local-calendar day, never by timestamp.
	DateFormat = "2006-01-02"

	// MaxTrackerNameLen is enforced at the input boundary, not in storage.
	MaxTrackerNameLen = 38
)
