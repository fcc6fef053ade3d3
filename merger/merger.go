package merger

import (
	"go.yaml.in/yaml/v4"

	"github.com/spectools/specharden/document"
	"github.com/spectools/specharden/sherrors"
)

// DefaultTargetVersion is the version stamped into info.version.
const DefaultTargetVersion = "2.10.0"

// DefaultChangelog is the release-note block prepended to
// info.description on every run. Re-running the merge prepends it again;
// deduplication is deliberately not attempted.
const DefaultChangelog = `
    **Version 2.10.0 - January 13, 2025:**
    **Enterprise Security & Rate Limiting Enhancement:** Complete OpenAPI specification synchronization with enhanced API documentation.
    **Security Features:** Added comprehensive rate limiting responses (HTTP 429), enterprise security headers (X-Frame-Options, X-XSS-Protection, CSP),
    and RBAC integration documentation. **Error Handling:** Enhanced error schemas with SQL state mappings (23503→400, 23505→409),
    detailed conflict resolution, and comprehensive validation error responses. **Performance SLA:** Documented response time targets
    (<100ms to <200ms), throughput limits, and enterprise-grade performance characteristics. **Documentation Coverage:** 100% synchronization
    with Applications, Environments, Teams, and other enhanced API documentation achieving 9.4/10 quality score.

        `

// Config configures how the fragment is merged into the primary document.
type Config struct {
	// TargetVersion is written to info.version when the primary has an
	// info mapping.
	TargetVersion string
	// Changelog is prepended to info.description. The existing
	// description follows it unchanged.
	Changelog string
}

// DefaultConfig returns the standard merge configuration.
func DefaultConfig() Config {
	return Config{
		TargetVersion: DefaultTargetVersion,
		Changelog:     DefaultChangelog,
	}
}

// Merger merges security fragment components into a primary document.
//
// Concurrency: Merger instances are not safe for concurrent use on the
// same documents; the merge mutates the primary tree in place.
type Merger struct {
	config Config
}

// New creates a new Merger instance with the provided configuration.
func New(config Config) *Merger {
	if config.TargetVersion == "" {
		config.TargetVersion = DefaultTargetVersion
	}
	if config.Changelog == "" {
		config.Changelog = DefaultChangelog
	}
	return &Merger{config: config}
}

// MergeResult describes what a merge changed in the primary document.
type MergeResult struct {
	// VersionStamped is true if info.version was set.
	VersionStamped bool
	// DescriptionUpdated is true if the changelog was prepended to
	// info.description.
	DescriptionUpdated bool
	// SchemasMerged is the number of schema entries copied from the
	// fragment.
	SchemasMerged int
	// ResponsesMerged is the number of response entries copied from the
	// fragment.
	ResponsesMerged int
	// SecuritySchemesUpdated is the number of security scheme entries
	// copied from the fragment.
	SecuritySchemesUpdated int
	// SecuritySchemesSkipped is true when the primary had no
	// securitySchemes mapping and the update step was skipped entirely.
	SecuritySchemesSkipped bool
}

// Merge merges the fragment into the primary document in place and
// returns a summary of the changes.
//
// The primary document is mutated; callers that need the original intact
// should re-parse it. The fragment is never modified, though merged value
// nodes are shared between the two trees afterward.
func (m *Merger) Merge(primary, fragment *document.Document) (*MergeResult, error) {
	fragSchemas, fragResponses, err := fragmentComponents(fragment)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{}
	m.stampInfo(primary, result)

	components := document.MapEnsure(primary.Root(), "components")
	if components == nil {
		return nil, &sherrors.StructureError{
			Key:     "components",
			Message: "primary components is not a mapping",
		}
	}

	schemas := document.MapEnsure(components, "schemas")
	if schemas == nil {
		return nil, &sherrors.StructureError{
			Path:    "components",
			Key:     "schemas",
			Message: "primary components.schemas is not a mapping",
		}
	}
	for _, item := range document.MapItems(fragSchemas) {
		document.MapSet(schemas, item.Key, item.Value)
		result.SchemasMerged++
	}

	responses := document.MapEnsure(components, "responses")
	if responses == nil {
		return nil, &sherrors.StructureError{
			Path:    "components",
			Key:     "responses",
			Message: "primary components.responses is not a mapping",
		}
	}
	for _, item := range document.MapItems(fragResponses) {
		document.MapSet(responses, item.Key, item.Value)
		result.ResponsesMerged++
	}

	// securitySchemes is update-only: when the primary never declared
	// security schemes, the fragment does not introduce them.
	schemes := document.MapGet(components, "securitySchemes")
	if !document.IsMapping(schemes) {
		result.SecuritySchemesSkipped = true
		return result, nil
	}
	fragSchemes := fragment.Get("components", "securitySchemes")
	for _, item := range document.MapItems(fragSchemes) {
		document.MapSet(schemes, item.Key, item.Value)
		result.SecuritySchemesUpdated++
	}

	return result, nil
}

// stampInfo sets info.version and prepends the changelog to
// info.description. A primary without an info mapping is left alone.
func (m *Merger) stampInfo(primary *document.Document, result *MergeResult) {
	info := primary.Get("info")
	if !document.IsMapping(info) {
		return
	}

	document.MapSet(info, "version", document.StringNode(m.config.TargetVersion))
	result.VersionStamped = true

	existing := ""
	if desc := document.MapGet(info, "description"); desc != nil {
		existing = desc.Value
	}
	document.MapSet(info, "description", document.StringNode(m.config.Changelog+existing))
	result.DescriptionUpdated = true
}

// fragmentComponents validates the fragment's shape and returns its
// schemas and responses mappings. Both are hard requirements for a
// security fragment.
func fragmentComponents(fragment *document.Document) (schemas, responses *yaml.Node, err error) {
	components := fragment.Get("components")
	if !document.IsMapping(components) {
		return nil, nil, &sherrors.StructureError{
			Key:     "components",
			Message: "fragment has no components mapping",
		}
	}
	schemas = document.MapGet(components, "schemas")
	if !document.IsMapping(schemas) {
		return nil, nil, &sherrors.StructureError{
			Path:    "components",
			Key:     "schemas",
			Message: "fragment has no components.schemas mapping",
		}
	}
	responses = document.MapGet(components, "responses")
	if !document.IsMapping(responses) {
		return nil, nil, &sherrors.StructureError{
			Path:    "components",
			Key:     "responses",
			Message: "fragment has no components.responses mapping",
		}
	}
	return schemas, responses, nil
}
