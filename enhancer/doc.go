// Package enhancer injects shared error-response references into every
// operation of an OpenAPI document.
//
// For each get, post, put, delete, or patch operation that declares a
// responses mapping, the enhancer:
//
//   - sets responses["429"] to the shared RateLimit reference,
//     whether or not a 429 response existed before
//   - rewrites 400, 401, 403, 404, 409, and 500 responses to their shared
//     component references, but only when the operation already declares
//     that status code
//
// Operations without a responses mapping are left entirely alone, and
// status codes an operation never declared are not added. A document with
// no paths key is a no-op, not an error.
package enhancer
