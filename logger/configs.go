package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log level.
const (
	// Debug represents the most verbose logging level, intended for development and troubleshooting.
	Debug = "debug"

	// Info represents the standard logging level. Call tracing lines are emitted at this level,
	// so a logger configured above Info silences them.
	Info = "info"

	// Warning represents the logging level for potential issues that aren't errors.
	Warning = "warning"

	// Error represents the logging level for error conditions.
	Error = "error"
)

// Encoding constants select how log entries are rendered.
const (
	// JSONEncoding renders one JSON object per entry.
	JSONEncoding = "json"

	// ConsoleEncoding renders tab separated, human readable entries.
	ConsoleEncoding = "console"
)

// Config defines the configuration structure for the logger.
// It contains settings that control the behavior of the logging system.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are:
	//   - "debug": Most verbose, shows all log messages
	//   - "info": Shows info, warning, and error messages
	//   - "warning": Shows only warning and error messages
	//   - "error": Shows only error messages
	//
	// Unknown or empty values fall back to "info".
	Level string `yaml:"level"`

	// Encoding selects the entry format, either "json" (default) or "console".
	Encoding string `yaml:"encoding"`

	// ServiceName is the name of the service that is logging messages.
	// This value is used to populate the "service" field in log entries.
	ServiceName string `yaml:"service_name"`

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	// This is useful when you have wrapper layers around the logger.
	//
	// Guidelines for setting CallerSkip:
	//   - 1 (default): Use when calling the logger directly from your code
	//   - 2: Use when you have one additional wrapper layer
	//   - 3+: Use when you have multiple wrapper layers
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip"`

	// File optionally mirrors every entry into a size-rotated file.
	// Entries are always written to stderr as well.
	File FileConfig `yaml:"file"`
}

// FileConfig describes the rotating file sink. An empty Path disables it.
type FileConfig struct {
	// Path is the file entries are appended to.
	Path string `yaml:"path"`

	// MaxSizeMB is the size in megabytes at which the file is rotated. Defaults to 100.
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep. Zero keeps all of them.
	MaxBackups int `yaml:"max_backups"`

	// MaxAgeDays is the number of days rotated files are kept. Zero keeps them forever.
	MaxAgeDays int `yaml:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress"`
}
