package pipeline

import (
	"os"
	"path/filepath"

	"github.com/spectools/specharden/sherrors"
)

// Default file names, resolved relative to the executable's directory.
const (
	DefaultPrimaryName  = "openapi.yaml"
	DefaultFragmentName = "openapi-security-schemas-update.yaml"
	DefaultBackupName   = "openapi-backup.yaml"
)

// Config holds the file paths for a pipeline run.
type Config struct {
	// PrimaryPath is the OpenAPI document to harden. It is overwritten
	// in place on success.
	PrimaryPath string
	// FragmentPath is the security fragment to merge in.
	FragmentPath string
	// BackupPath receives a byte copy of the primary file before it is
	// overwritten.
	BackupPath string
}

// DefaultConfig returns a configuration with all paths resolved next to
// the running executable. When the executable path cannot be determined
// the working directory is used instead.
//
// Every field can be overridden before constructing the pipeline, which
// is how tests point a run at temporary files.
func DefaultConfig() Config {
	dir := executableDir()
	return Config{
		PrimaryPath:  filepath.Join(dir, DefaultPrimaryName),
		FragmentPath: filepath.Join(dir, DefaultFragmentName),
		BackupPath:   filepath.Join(dir, DefaultBackupName),
	}
}

// executableDir returns the directory of the running executable, or "."
// if it cannot be resolved.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Validate checks that the configuration is complete and that both input
// files exist. It runs before the backup phase so a missing input never
// leaves a stray backup behind.
func (c Config) Validate() error {
	if c.PrimaryPath == "" {
		return &sherrors.ConfigError{Option: "primary", Message: "path must not be empty"}
	}
	if c.FragmentPath == "" {
		return &sherrors.ConfigError{Option: "fragment", Message: "path must not be empty"}
	}
	if c.BackupPath == "" {
		return &sherrors.ConfigError{Option: "backup", Message: "path must not be empty"}
	}

	if _, err := os.Stat(c.PrimaryPath); err != nil {
		return &sherrors.ConfigError{
			Option:  "primary",
			Value:   c.PrimaryPath,
			Message: "OpenAPI file not found",
			Cause:   err,
		}
	}
	if _, err := os.Stat(c.FragmentPath); err != nil {
		return &sherrors.ConfigError{
			Option:  "fragment",
			Value:   c.FragmentPath,
			Message: "security fragment file not found",
			Cause:   err,
		}
	}
	return nil
}
