package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spectools/specharden/document"
	"github.com/spectools/specharden/enhancer"
	"github.com/spectools/specharden/merger"
	"github.com/spectools/specharden/sherrors"
)

// pipelineLogger is used for non-fatal advisories during a run.
// Tests can replace this with a discard logger to suppress expected warnings.
var pipelineLogger = slog.Default()

// outputFileMode is the file permission mode for the saved document
// (owner read/write only).
const outputFileMode = 0600

// Phase names as they appear in RunResult.Phases.
const (
	PhaseBackup  = "backup"
	PhaseLoad    = "load"
	PhaseMerge   = "merge"
	PhaseEnhance = "enhance"
	PhaseSave    = "save"
)

// Pipeline runs the full hardening sequence over the configured files.
//
// Concurrency: Pipeline instances are not safe for concurrent use.
type Pipeline struct {
	config   Config
	merger   *merger.Merger
	enhancer *enhancer.Enhancer
}

// New creates a new Pipeline with the provided configuration and the
// default merge settings.
func New(config Config) *Pipeline {
	return &Pipeline{
		config:   config,
		merger:   merger.New(merger.DefaultConfig()),
		enhancer: enhancer.New(),
	}
}

// PhaseRecord records one completed phase of a run.
type PhaseRecord struct {
	// Name is one of the Phase* constants.
	Name string
	// Duration is how long the phase took.
	Duration time.Duration
}

// RunResult describes a successful pipeline run.
type RunResult struct {
	// Merge summarizes the component merge.
	Merge *merger.MergeResult
	// Enhance summarizes the operation enhancement.
	Enhance *enhancer.EnhanceResult
	// BackupPath is where the pre-run primary file was copied.
	BackupPath string
	// OutputPath is the overwritten primary file.
	OutputPath string
	// Phases lists the completed phases in execution order.
	Phases []PhaseRecord
}

// Run executes backup, load, merge, enhance, and save in order. The
// first error aborts the run; a backup created before the failure is
// left in place.
func (p *Pipeline) Run() (*RunResult, error) {
	if err := p.config.Validate(); err != nil {
		return nil, err
	}

	result := &RunResult{
		BackupPath: p.config.BackupPath,
		OutputPath: p.config.PrimaryPath,
	}
	phase := func(name string, fn func() error) error {
		start := time.Now()
		if err := fn(); err != nil {
			return err
		}
		result.Phases = append(result.Phases, PhaseRecord{Name: name, Duration: time.Since(start)})
		return nil
	}

	if err := phase(PhaseBackup, func() error {
		return copyFile(p.config.PrimaryPath, p.config.BackupPath)
	}); err != nil {
		return nil, err
	}

	var primary, fragment *document.Document
	if err := phase(PhaseLoad, func() error {
		var err error
		if primary, err = document.ParseFile(p.config.PrimaryPath); err != nil {
			return fmt.Errorf("loading primary document: %w", err)
		}
		if fragment, err = document.ParseFile(p.config.FragmentPath); err != nil {
			return fmt.Errorf("loading security fragment: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := phase(PhaseMerge, func() error {
		var err error
		result.Merge, err = p.merger.Merge(primary, fragment)
		return err
	}); err != nil {
		return nil, err
	}

	if err := phase(PhaseEnhance, func() error {
		var err error
		result.Enhance, err = p.enhancer.Enhance(primary)
		return err
	}); err != nil {
		return nil, err
	}

	if err := phase(PhaseSave, func() error {
		return saveDocument(primary, p.config.PrimaryPath)
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// saveDocument marshals the document and overwrites path with
// restrictive permissions.
func saveDocument(doc *document.Document, path string) error {
	data, err := doc.Marshal()
	if err != nil {
		return &sherrors.WriteError{Path: path, Message: "serializing document", Cause: err}
	}
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return &sherrors.WriteError{Path: path, Message: "writing document", Cause: err}
	}
	// Ensure permissions are correct even if the file existed before.
	if err := os.Chmod(path, outputFileMode); err != nil {
		return &sherrors.WriteError{Path: path, Message: "setting file permissions", Cause: err}
	}
	return nil
}

// copyFile copies src to dst byte-for-byte, carrying over the source's
// permission bits and modification time where the platform allows.
func copyFile(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		pipelineLogger.Warn("pipeline: overwriting existing backup", "path", dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return &sherrors.WriteError{Path: dst, Message: "reading source for backup", Cause: err}
	}

	in, err := os.Open(src)
	if err != nil {
		return &sherrors.WriteError{Path: dst, Message: "opening source for backup", Cause: err}
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return &sherrors.WriteError{Path: dst, Message: "creating backup", Cause: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &sherrors.WriteError{Path: dst, Message: "copying backup", Cause: err}
	}
	if err := out.Close(); err != nil {
		return &sherrors.WriteError{Path: dst, Message: "flushing backup", Cause: err}
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return &sherrors.WriteError{Path: dst, Message: "setting backup permissions", Cause: err}
	}
	if err := os.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		return &sherrors.WriteError{Path: dst, Message: "setting backup timestamps", Cause: err}
	}
	return nil
}
