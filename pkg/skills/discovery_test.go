package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vocabularySkillMD = `---
id: vocabulary_coach
category: education
name:
  en: Vocabulary Coach
  es: Entrenador de vocabulario
description:
  en: Drills vocabulary for a topic with usage examples.
  es: Practica vocabulario de un tema con ejemplos de uso.
keywords:
  en:
    - vocabulary
    - new words
  es:
    - vocabulario
    - palabras nuevas
min_keyword_matches: 1
output:
  kind: json
  required_fields:
    - topic
    - words
safety_rules:
  - id: course-level
    description:
      en: Words must match the learner's course level.
      es: Las palabras deben coincidir con el nivel del curso.
    enforcement: warn
examples:
  - input:
      en: Teach me vocabulary about cooking
      es: Enséñame vocabulario sobre cocina
    expected_output:
      en: '{"topic":"cooking","words":[{"word":"whisk","example":"Whisk the eggs."}]}'
      es: '{"topic":"cocina","words":[{"word":"batir","example":"Bate los huevos."}]}'
---

# Vocabulary Coach

Pick ten words the learner has not seen, each with a usage example.
`

func writeSkillFile(t *testing.T, root, dir, content string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, skillFileName), []byte(content), 0o644))
}

func TestDiscoverSkillFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkillFile(t, tmpDir, "vocabulary-coach", vocabularySkillMD)

	reg, err := NewRegistry(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	def, ok := reg.Get("vocabulary_coach")
	require.True(t, ok)

	assert.Equal(t, CategoryEducation, def.Category)
	assert.Equal(t, "Vocabulary Coach", def.Name[LangEN])
	assert.Equal(t, "Entrenador de vocabulario", def.Name[LangES])
	assert.True(t, def.Enabled, "enabled defaults to true when omitted")
	assert.False(t, def.RequiresAdmin)
	assert.Equal(t, []string{"vocabulary", "new words"}, def.Triggers.Keywords[LangEN])
	assert.Equal(t, 1, def.Triggers.MinKeywordMatches)
	assert.Equal(t, SchemaJSON, def.Output.Kind)
	assert.Equal(t, []string{"topic", "words"}, def.Output.RequiredFields)
	require.Len(t, def.SafetyRules, 1)
	assert.Equal(t, EnforceWarn, def.SafetyRules[0].Enforcement)
	require.Len(t, def.Examples, 1)
	assert.Contains(t, def.Instructions, "# Vocabulary Coach")

	t.Run("discovered skills participate in matching", func(t *testing.T) {
		result := reg.Match("teach me some vocabulary", false)
		assert.Equal(t, "vocabulary_coach", result.SkillID)
	})
}

func TestDiscoveryBuiltinsShadowFiles(t *testing.T) {
	tmpDir := t.TempDir()
	shadow := `---
id: study_plan
category: education
name:
  en: Impostor
  es: Impostor
description:
  en: Should never replace the builtin.
  es: Nunca debe reemplazar la incorporada.
keywords:
  en: [impostor]
  es: [impostor]
safety_rules:
  - id: r
    description: {en: d, es: d}
    enforcement: warn
examples:
  - input: {en: i, es: i}
    expected_output: {en: o, es: o}
---
body
`
	writeSkillFile(t, tmpDir, "study-plan", shadow)

	reg, err := NewRegistry(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	def, ok := reg.Get("study_plan")
	require.True(t, ok)
	assert.Equal(t, "Study Plan Builder", def.Name[LangEN])
}

func TestDiscoverySkipsBrokenFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeSkillFile(t, tmpDir, "good", vocabularySkillMD)
	writeSkillFile(t, tmpDir, "no-frontmatter", "# Just a heading\n")
	writeSkillFile(t, tmpDir, "no-id", "---\ncategory: education\n---\nbody\n")

	reg, err := NewRegistry(WithSkillDirs(tmpDir))
	require.NoError(t, err)

	_, ok := reg.Get("vocabulary_coach")
	assert.True(t, ok)
}

func TestDiscoveryMissingDirIsIgnored(t *testing.T) {
	reg, err := NewRegistry(WithSkillDirs(filepath.Join(t.TempDir(), "does-not-exist")))
	require.NoError(t, err)
	assert.NotEmpty(t, reg.AllIDs())
}
