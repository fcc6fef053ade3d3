// Package specharden provides tooling for hardening OpenAPI specifications
// with shared security components.
//
// specharden merges a supplementary security fragment (error schemas,
// reusable responses, security schemes) into a primary OpenAPI document and
// injects shared error-response references into every operation, so that
// rate limiting and error handling are documented consistently across an
// entire API surface.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - document: Load, mutate, and serialize YAML documents while preserving
//     the original key order
//   - merger: Merge security fragment components into a primary document
//   - enhancer: Inject shared error-response references into operations
//   - pipeline: Orchestrate backup, load, merge, enhance, and save as a
//     single run
//
// Structured error types shared by all packages live in the sherrors
// package.
//
// # Quick Start
//
// Run the full pipeline against files resolved next to the executable:
//
//	import "github.com/spectools/specharden/pipeline"
//
//	p := pipeline.New(pipeline.DefaultConfig())
//	result, err := p.Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Enhanced %d operations\n", result.Enhance.OperationsEnhanced)
//
// Or use the packages individually:
//
//	primary, _ := document.ParseFile("openapi.yaml")
//	fragment, _ := document.ParseFile("openapi-security-schemas-update.yaml")
//
//	m := merger.New(merger.DefaultConfig())
//	mergeResult, err := m.Merge(primary, fragment)
//
//	e := enhancer.New()
//	enhanceResult, err := e.Enhance(primary)
//
// The command-line interface lives under cmd/specharden.
package specharden
