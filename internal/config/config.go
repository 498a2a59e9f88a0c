// =============================================================================
// Overdue Report Compiler - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration. The
// tool runs without any configuration file at all: every setting has a default
// that reproduces the behavior the inventory team relies on.
//
// CONFIGURATION SOURCES (later sources win):
//   1. Built-in defaults (see Default)
//   2. The YAML file passed with --config (optional, may be absent)
//   3. A .env file in the working directory (optional)
//   4. Environment variables prefixed with OVERDUE_
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "OVERDUE"

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the global application configuration.
type Config struct {
	// =========================================================================
	// FILE NAMES
	// =========================================================================

	// OutputFileName is the compiled report written to the output directory.
	// Default: "Compiled Output.csv"
	OutputFileName string `yaml:"output_file_name" envconfig:"OUTPUT_FILE_NAME" validate:"required"`

	// OutputHeaders is the header row of the compiled report. It must have
	// one entry per record field, in record order.
	OutputHeaders []string `yaml:"output_headers" envconfig:"OUTPUT_HEADERS" validate:"len=5,dive,required"`

	// SnapshotFileName is the carry-over file written back into the raw data
	// directory every run.
	// Default: "PreviousData.csv"
	SnapshotFileName string `yaml:"snapshot_file_name" envconfig:"SNAPSHOT_FILE_NAME" validate:"required"`

	// BackupPrefix is prepended to the output file name when a forced run
	// backs up the previous report.
	// Default: "Backup_"
	BackupPrefix string `yaml:"backup_prefix" envconfig:"BACKUP_PREFIX" validate:"required"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path to the rotating log file.
	// Default: "Log.txt"
	LogFile string `yaml:"log_file" envconfig:"LOG_FILE" validate:"required"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB int `yaml:"log_max_size_mb" envconfig:"LOG_MAX_SIZE_MB" validate:"min=1"`

	// LogMaxBackups is the number of rotated log generations kept.
	LogMaxBackups int `yaml:"log_max_backups" envconfig:"LOG_MAX_BACKUPS" validate:"min=1"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// UseCRLF terminates CSV lines with \r\n, the way the upstream tool and
	// spreadsheet applications expect.
	UseCRLF bool `yaml:"use_crlf" envconfig:"USE_CRLF"`

	// EagerValidation checks every numeric field right after ingestion instead
	// of when the record is first serialized.
	EagerValidation bool `yaml:"eager_validation" envconfig:"EAGER_VALIDATION"`

	// XLSXExport writes an Excel copy of the compiled report next to the CSV.
	XLSXExport bool `yaml:"xlsx_export" envconfig:"XLSX_EXPORT"`

	// XLSXSheetName is the worksheet name used by the Excel copy.
	XLSXSheetName string `yaml:"xlsx_sheet_name" envconfig:"XLSX_SHEET_NAME" validate:"required,max=31"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		OutputFileName:   "Compiled Output.csv",
		OutputHeaders:    []string{"Date", "Parts Over Due", "$ Over Due", "Total Parts", "Total $"},
		SnapshotFileName: "PreviousData.csv",
		BackupPrefix:     "Backup_",
		LogFile:          "Log.txt",
		LogLevel:         "info",
		LogMaxSizeMB:     1,
		LogMaxBackups:    2,
		UseCRLF:          true,
		EagerValidation:  false,
		XLSXExport:       false,
		XLSXSheetName:    "Compiled Output",
	}
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load builds the configuration from defaults, the YAML file at configPath,
// and OVERDUE_* environment variables.
//
// A configPath that does not exist is not an error; an unreadable or
// malformed file is.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults only.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is ignored. Variables already set are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
