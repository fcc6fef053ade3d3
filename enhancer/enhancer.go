package enhancer

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/spectools/specharden/document"
	"github.com/spectools/specharden/sherrors"
)

// Shared response component references injected into operations.
const (
	RefRateLimit           = "#/components/responses/RateLimit"
	RefBadRequest          = "#/components/responses/BadRequest"
	RefUnauthorized        = "#/components/responses/Unauthorized"
	RefForbidden           = "#/components/responses/Forbidden"
	RefNotFound            = "#/components/responses/NotFound"
	RefConflict            = "#/components/responses/Conflict"
	RefInternalServerError = "#/components/responses/InternalServerError"
)

// statusRefs maps status codes to their shared references, in the order
// they are applied. Unlike 429, these only overwrite responses the
// operation already declares.
var statusRefs = []struct {
	status string
	ref    string
}{
	{"400", RefBadRequest},
	{"401", RefUnauthorized},
	{"403", RefForbidden},
	{"404", RefNotFound},
	{"409", RefConflict},
	{"500", RefInternalServerError},
}

// httpMethods are the operation keys eligible for enhancement. Matching
// is case-insensitive; head, options, and trace are deliberately not
// enhanced.
var httpMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"delete": true,
	"patch":  true,
}

// Enhancer injects shared error-response references into operations.
type Enhancer struct{}

// New creates a new Enhancer instance.
func New() *Enhancer {
	return &Enhancer{}
}

// EnhanceResult describes what an enhancement pass changed.
type EnhanceResult struct {
	// OperationsEnhanced is the number of operations that had a
	// responses mapping and received the 429 injection.
	OperationsEnhanced int
	// RewrittenByStatus counts, per status code, how many already-present
	// responses were rewritten to their shared reference.
	RewrittenByStatus map[string]int
}

// Rewritten returns the total number of status responses rewritten to
// shared references, excluding the always-added 429.
func (r *EnhanceResult) Rewritten() int {
	total := 0
	for _, n := range r.RewrittenByStatus {
		total += n
	}
	return total
}

// Enhance walks every path and operation in the document and injects the
// shared response references in place.
//
// A document without a paths key returns a zero-value result. A paths
// key holding a non-mapping value is a *sherrors.StructureError.
func (e *Enhancer) Enhance(doc *document.Document) (*EnhanceResult, error) {
	result := &EnhanceResult{RewrittenByStatus: make(map[string]int)}

	paths := doc.Get("paths")
	if paths == nil || document.IsNull(paths) {
		return result, nil
	}
	if !document.IsMapping(paths) {
		return nil, &sherrors.StructureError{
			Key:     "paths",
			Message: "paths is not a mapping",
		}
	}

	for _, path := range document.MapItems(paths) {
		for _, method := range document.MapItems(path.Value) {
			if !httpMethods[strings.ToLower(method.Key)] {
				continue
			}
			e.enhanceOperation(method.Value, result)
		}
	}
	return result, nil
}

// enhanceOperation injects references into a single operation's
// responses mapping. Operations without one are left untouched.
func (e *Enhancer) enhanceOperation(op *yaml.Node, result *EnhanceResult) {
	responses := document.MapGet(op, "responses")
	if !document.IsMapping(responses) {
		return
	}

	document.MapSet(responses, "429", document.RefNode(RefRateLimit))

	for _, sr := range statusRefs {
		if document.MapGet(responses, sr.status) == nil {
			continue
		}
		document.MapSet(responses, sr.status, document.RefNode(sr.ref))
		result.RewrittenByStatus[sr.status]++
	}

	result.OperationsEnhanced++
}
