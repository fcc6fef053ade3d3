// Package pipeline orchestrates a full security-hardening run: backup,
// load, merge, enhance, save.
//
// A run is strictly linear. The first failing phase aborts the run and
// its error is returned unchanged; there is no retry and no partial
// recovery. The primary file is backed up byte-for-byte before it is
// overwritten, so an aborted run after the backup phase leaves the backup
// in place.
//
// Phases report their outcomes through RunResult rather than printing;
// the CLI under cmd/specharden renders the result for a terminal.
package pipeline
