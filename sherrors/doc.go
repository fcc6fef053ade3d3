// Package sherrors provides structured error types for specharden.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors without parsing message text.
//
// # Error Categories
//
//   - ParseError: YAML parsing failures and malformed documents
//   - StructureError: documents missing the keys a phase requires
//   - ConfigError: invalid configuration or missing input files
//   - WriteError: backup or save failures on the filesystem
//
// # Usage with errors.Is
//
//	result, err := p.Run()
//	if errors.Is(err, sherrors.ErrStructure) {
//	    // The fragment file is missing a required components section.
//	}
package sherrors
