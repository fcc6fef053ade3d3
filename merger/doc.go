// Package merger combines a security fragment document into a primary
// OpenAPI document.
//
// The merge stamps the target version into info.version, prepends a
// changelog block to info.description, and copies the fragment's
// components into the primary:
//
//   - components.schemas: per-entry full replacement (fragment wins)
//   - components.responses: per-entry full replacement (fragment wins)
//   - components.securitySchemes: shallow update, and only when the
//     primary already has a securitySchemes mapping
//
// The securitySchemes asymmetry (no creation when absent) is intentional
// and mirrors the behavior hardened specifications have relied on.
//
// The fragment must contain both components.schemas and
// components.responses; a fragment missing either fails with a
// *sherrors.StructureError before the primary is touched.
package merger
