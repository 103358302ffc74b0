package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The builtin catalog must be self-consistent: this is the load-time
// check, asserted here so a bad definition fails the build's tests and
// not a production startup.
func TestBuiltinCatalogConsistency(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	for _, id := range reg.AllIDs() {
		def, ok := reg.Get(id)
		require.True(t, ok)

		t.Run(id, func(t *testing.T) {
			assert.GreaterOrEqual(t, def.Triggers.MinKeywordMatches, 1)
			assert.NotEmpty(t, def.SafetyRules, "every skill declares at least one safety rule")
			assert.NotEmpty(t, def.Examples, "every skill ships a worked example")

			for _, lang := range Languages {
				assert.NotEmpty(t, def.Name[lang])
				assert.NotEmpty(t, def.Description[lang])
				assert.NotEmpty(t, def.Triggers.Keywords[lang], "keywords for %s", lang)
			}

			for _, ex := range def.Examples {
				for _, lang := range Languages {
					assert.NotEmpty(t, ex.Input[lang])
					assert.NotEmpty(t, ex.ExpectedOutput[lang])
				}
			}

			if def.Output.Kind == SchemaJSON {
				assert.NotEmpty(t, def.Output.RequiredFields)
			}
		})
	}
}

func TestBuiltinCatalogGating(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	adminOnly, ok := reg.Get("progress_report")
	require.True(t, ok)
	assert.True(t, adminOnly.RequiresAdmin)

	flagged, ok := reg.Get("damage_analyzer")
	require.True(t, ok)
	assert.True(t, flagged.RequiresAdmin)
	assert.Equal(t, "DAMAGE_ANALYZER", flagged.FeatureFlag)
	require.NotEmpty(t, flagged.BlockingRules())
	assert.Equal(t, "admin-only", flagged.BlockingRules()[0].ID)
}

func TestBuiltinCatalogIsolation(t *testing.T) {
	// Each registry gets its own definitions; mutating one must not
	// bleed into another.
	a, err := NewRegistry()
	require.NoError(t, err)
	b, err := NewRegistry()
	require.NoError(t, err)

	defA, _ := a.Get("study_plan")
	defB, _ := b.Get("study_plan")
	require.NotSame(t, defA, defB)
}
