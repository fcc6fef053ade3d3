package merger

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spectools/specharden/document"
	"github.com/spectools/specharden/sherrors"
)

const fragmentYAML = `
components:
  schemas:
    RateLimitError:
      type: object
      properties:
        retryAfter:
          type: integer
    ValidationError:
      type: object
  responses:
    RateLimit:
      description: Too many requests
    BadRequest:
      description: Invalid request
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
`

func mustParse(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestMergeStampsInfo(t *testing.T) {
	primary := mustParse(t, `
info:
  title: Test API
  version: 1.0.0
  description: Original description.
components: {}
`)
	fragment := mustParse(t, fragmentYAML)

	m := New(DefaultConfig())
	result, err := m.Merge(primary, fragment)
	require.NoError(t, err)

	require.True(t, result.VersionStamped)
	require.True(t, result.DescriptionUpdated)

	version := primary.Get("info", "version")
	require.NotNil(t, version)
	require.Equal(t, DefaultTargetVersion, version.Value)

	desc := primary.Get("info", "description")
	require.NotNil(t, desc)
	require.True(t, strings.HasPrefix(desc.Value, DefaultChangelog),
		"description should start with the changelog block")
	require.True(t, strings.HasSuffix(desc.Value, "Original description."),
		"original description should follow the changelog unchanged")
}

func TestMergeCreatesDescriptionWhenAbsent(t *testing.T) {
	primary := mustParse(t, "info:\n  title: Test API\n  version: 1.0.0\n")
	fragment := mustParse(t, fragmentYAML)

	_, err := New(DefaultConfig()).Merge(primary, fragment)
	require.NoError(t, err)

	desc := primary.Get("info", "description")
	require.NotNil(t, desc)
	require.Equal(t, DefaultChangelog, desc.Value)
}

func TestMergeWithoutInfo(t *testing.T) {
	primary := mustParse(t, "paths: {}\n")
	fragment := mustParse(t, fragmentYAML)

	result, err := New(DefaultConfig()).Merge(primary, fragment)
	require.NoError(t, err)
	require.False(t, result.VersionStamped)
	require.False(t, result.DescriptionUpdated)
	require.Nil(t, primary.Get("info"))
}

func TestMergeSchemasFullReplacement(t *testing.T) {
	// RateLimitError exists in both with different definitions: the
	// fragment's definition must win wholesale, not deep-merge.
	primary := mustParse(t, `
components:
  schemas:
    RateLimitError:
      type: string
      deprecated: true
    Untouched:
      type: boolean
`)
	fragment := mustParse(t, fragmentYAML)

	result, err := New(DefaultConfig()).Merge(primary, fragment)
	require.NoError(t, err)
	require.Equal(t, 2, result.SchemasMerged)

	merged := primary.Get("components", "schemas", "RateLimitError")
	require.NotNil(t, merged)
	typ := document.MapGet(merged, "type")
	require.NotNil(t, typ)
	require.Equal(t, "object", typ.Value)
	require.Nil(t, document.MapGet(merged, "deprecated"),
		"full replacement must not retain keys from the old definition")

	require.NotNil(t, primary.Get("components", "schemas", "Untouched"),
		"schemas absent from the fragment stay as they were")
}

func TestMergeCreatesComponentSections(t *testing.T) {
	primary := mustParse(t, "openapi: 3.0.3\n")
	fragment := mustParse(t, fragmentYAML)

	result, err := New(DefaultConfig()).Merge(primary, fragment)
	require.NoError(t, err)
	require.Equal(t, 2, result.SchemasMerged)
	require.Equal(t, 2, result.ResponsesMerged)

	require.NotNil(t, primary.Get("components", "schemas", "ValidationError"))
	require.NotNil(t, primary.Get("components", "responses", "RateLimit"))
}

func TestMergeSecuritySchemes(t *testing.T) {
	t.Run("absent in primary stays absent", func(t *testing.T) {
		primary := mustParse(t, "components:\n  schemas: {}\n")
		fragment := mustParse(t, fragmentYAML)

		result, err := New(DefaultConfig()).Merge(primary, fragment)
		require.NoError(t, err)
		require.True(t, result.SecuritySchemesSkipped)
		require.Equal(t, 0, result.SecuritySchemesUpdated)
		require.Nil(t, primary.Get("components", "securitySchemes"))
	})

	t.Run("present in primary gets shallow update", func(t *testing.T) {
		primary := mustParse(t, `
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: basic
    apiKey:
      type: apiKey
      in: header
      name: X-API-Key
`)
		fragment := mustParse(t, fragmentYAML)

		result, err := New(DefaultConfig()).Merge(primary, fragment)
		require.NoError(t, err)
		require.False(t, result.SecuritySchemesSkipped)
		require.Equal(t, 1, result.SecuritySchemesUpdated)

		// Same-named scheme overwritten by the fragment.
		scheme := primary.Get("components", "securitySchemes", "bearerAuth", "scheme")
		require.NotNil(t, scheme)
		require.Equal(t, "bearer", scheme.Value)

		// Pre-existing scheme not in the fragment is untouched.
		require.NotNil(t, primary.Get("components", "securitySchemes", "apiKey"))
	})
}

func TestMergeFragmentPreconditions(t *testing.T) {
	primary := mustParse(t, "components: {}\n")

	cases := []struct {
		name     string
		fragment string
	}{
		{"no components", "info:\n  title: Fragment\n"},
		{"no schemas", "components:\n  responses:\n    RateLimit:\n      description: rl\n"},
		{"no responses", "components:\n  schemas:\n    S:\n      type: object\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fragment := mustParse(t, tc.fragment)
			_, err := New(DefaultConfig()).Merge(primary, fragment)
			require.Error(t, err)
			require.True(t, errors.Is(err, sherrors.ErrStructure),
				"expected ErrStructure, got %v", err)
		})
	}
}

func TestMergeIsNotIdempotent(t *testing.T) {
	primary := mustParse(t, "info:\n  title: Test API\n  version: 1.0.0\n  description: X\n")
	fragment := mustParse(t, fragmentYAML)

	m := New(DefaultConfig())
	_, err := m.Merge(primary, fragment)
	require.NoError(t, err)
	_, err = m.Merge(primary, fragment)
	require.NoError(t, err)

	desc := primary.Get("info", "description")
	require.NotNil(t, desc)
	require.Equal(t, DefaultChangelog+DefaultChangelog+"X", desc.Value,
		"a second merge prepends the changelog again")
}

func TestMergeCustomConfig(t *testing.T) {
	primary := mustParse(t, "info:\n  version: 1.0.0\n  description: base\n")
	fragment := mustParse(t, fragmentYAML)

	m := New(Config{TargetVersion: "9.9.9", Changelog: "NOTE "})
	_, err := m.Merge(primary, fragment)
	require.NoError(t, err)

	require.Equal(t, "9.9.9", primary.Get("info", "version").Value)
	require.Equal(t, "NOTE base", primary.Get("info", "description").Value)
}
