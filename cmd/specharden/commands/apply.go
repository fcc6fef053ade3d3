package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spectools/specharden"
	"github.com/spectools/specharden/pipeline"
)

// ApplyFlags contains flags for the apply command
type ApplyFlags struct {
	Primary  string
	Fragment string
	Backup   string
	Quiet    bool
}

// SetupApplyFlags creates and configures a FlagSet for the apply command.
// Returns the FlagSet and an ApplyFlags struct with bound flag variables.
func SetupApplyFlags() (*flag.FlagSet, *ApplyFlags) {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	flags := &ApplyFlags{}

	fs.StringVar(&flags.Primary, "p", "", "primary OpenAPI file (default: openapi.yaml next to the executable)")
	fs.StringVar(&flags.Primary, "primary", "", "primary OpenAPI file (default: openapi.yaml next to the executable)")
	fs.StringVar(&flags.Fragment, "f", "", "security fragment file (default: openapi-security-schemas-update.yaml next to the executable)")
	fs.StringVar(&flags.Fragment, "fragment", "", "security fragment file (default: openapi-security-schemas-update.yaml next to the executable)")
	fs.StringVar(&flags.Backup, "b", "", "backup file path (default: openapi-backup.yaml next to the executable)")
	fs.StringVar(&flags.Backup, "backup", "", "backup file path (default: openapi-backup.yaml next to the executable)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress progress output")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress progress output")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: specharden apply [flags]\n\n")
		Writef(fs.Output(), "Merge the security fragment into the primary OpenAPI file and inject\n")
		Writef(fs.Output(), "shared error-response references into every operation.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  specharden apply\n")
		Writef(fs.Output(), "  specharden apply -p api/openapi.yaml -f api/security.yaml\n")
		Writef(fs.Output(), "  specharden apply --backup /tmp/openapi-backup.yaml\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - The primary file is backed up byte-for-byte before it is overwritten\n")
		Writef(fs.Output(), "  - A 429 RateLimit response is added to every operation with responses\n")
		Writef(fs.Output(), "  - 400/401/403/404/409/500 responses are rewritten to shared references\n")
		Writef(fs.Output(), "    only where the operation already declares them\n")
		Writef(fs.Output(), "  - Re-running prepends the changelog again; keep the backup if in doubt\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Hardening applied successfully\n")
		Writef(fs.Output(), "  1    An input file is missing or a phase failed\n")
	}

	return fs, flags
}

// HandleApply executes the apply command
func HandleApply(args []string) error {
	fs, flags := SetupApplyFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("apply command takes no positional arguments")
	}

	cfg := pipeline.DefaultConfig()
	if flags.Primary != "" {
		cfg.PrimaryPath = flags.Primary
	}
	if flags.Fragment != "" {
		cfg.FragmentPath = flags.Fragment
	}
	if flags.Backup != "" {
		cfg.BackupPath = flags.Backup
	}

	startTime := time.Now()
	result, err := pipeline.New(cfg).Run()
	totalTime := time.Since(startTime)
	if err != nil {
		return err
	}

	if flags.Quiet {
		return nil
	}

	printApplyResult(os.Stdout, result, totalTime)
	return nil
}

// printApplyResult renders a successful run for the terminal.
func printApplyResult(w io.Writer, result *pipeline.RunResult, totalTime time.Duration) {
	Writef(w, "OpenAPI Security Hardening\n")
	Writef(w, "==========================\n\n")
	Writef(w, "specharden version: %s\n", specharden.Version())

	for _, ph := range result.Phases {
		Writef(w, "  %-8s %v\n", ph.Name, ph.Duration)
	}
	Writef(w, "Total Time: %v\n\n", totalTime)

	Writef(w, "Merged %d schemas and %d responses from the security fragment\n",
		result.Merge.SchemasMerged, result.Merge.ResponsesMerged)
	if result.Merge.SecuritySchemesSkipped {
		Writef(w, "Security schemes: skipped (primary declares none)\n")
	} else {
		Writef(w, "Security schemes updated: %d\n", result.Merge.SecuritySchemesUpdated)
	}
	Writef(w, "Enhanced %d API operations with rate limiting and comprehensive error responses\n",
		result.Enhance.OperationsEnhanced)
	if rewritten := result.Enhance.Rewritten(); rewritten > 0 {
		Writef(w, "Rewrote %d existing error responses to shared references\n", rewritten)
	}

	Writef(w, "\n✓ OpenAPI Security Enhancement Complete!\n")
	Writef(w, "\nEnhancements Applied:\n")
	Writef(w, "- Enterprise rate limiting responses (HTTP 429)\n")
	Writef(w, "- Security headers (X-Frame-Options, X-XSS-Protection, CSP)\n")
	Writef(w, "- Comprehensive error schemas with SQL state mappings\n")
	Writef(w, "- Performance SLA documentation\n")
	Writef(w, "- Enhanced authentication context\n")
	Writef(w, "- RBAC integration documentation\n")
	Writef(w, "\nBackup created at: %s\n", result.BackupPath)
	Writef(w, "Updated file: %s\n", result.OutputPath)
}
