package config

// Config holds the process-wide settings, loaded once at startup and
// mutated only through Set, which persists synchronously.
type Config struct {
	// Path of the CSV storage file
	CSVFile string `yaml:"csv_file" mapstructure:"csv_file"`

	// Calendar mode: "gregorian" or "jalali"
	DateFormat string `yaml:"date_format" mapstructure:"date_format"`

	// Duration filled in when a new task leaves it empty
	DefaultDuration string `yaml:"default_duration" mapstructure:"default_duration"`

	// Theme name for table rendering
	Theme string `yaml:"theme" mapstructure:"theme"`

	// Take a backup snapshot before every destructive rewrite
	AutoBackup bool `yaml:"auto_backup" mapstructure:"auto_backup"`

	// How many backup files to keep
	BackupCount int `yaml:"backup_count" mapstructure:"backup_count"`

	// Set until the first-run wizard has completed
	FirstRun bool `yaml:"first_run" mapstructure:"first_run"`

	// Where this config was loaded from and saves to
	path string
}

// Keys that Set and Get accept.
const (
	KeyCSVFile         = "csv_file"
	KeyDateFormat      = "date_format"
	KeyDefaultDuration = "default_duration"
	KeyTheme           = "theme"
	KeyAutoBackup      = "auto_backup"
	KeyBackupCount     = "backup_count"
)

// Keys lists the settable configuration keys.
var Keys = []string{
	KeyCSVFile,
	KeyDateFormat,
	KeyDefaultDuration,
	KeyTheme,
	KeyAutoBackup,
	KeyBackupCount,
}

// Themes lists the known table themes.
var Themes = []string{"default", "dark", "light"}

// Path returns the file this configuration persists to.
func (c *Config) Path() string {
	return c.path
}
