package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estebanrs/aulabot/pkg/featureflags"
)

func TestMatchSelectsSkill(t *testing.T) {
	reg := newTestRegistry(t, featureflags.Static{})

	t.Run("routes exclusive keywords to their skill", func(t *testing.T) {
		result := reg.Match("Can you make me a quiz about cell biology?", false)
		assert.Equal(t, "quiz_generator", result.SkillID)
		assert.Greater(t, result.Confidence, 0.0)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		result := reg.Match("I NEED A STUDY PLAN FOR CHEMISTRY", false)
		assert.Equal(t, "study_plan", result.SkillID)
	})

	t.Run("matches keywords in the secondary language", func(t *testing.T) {
		result := reg.Match("Necesito un plan de estudio para biología", false)
		assert.Equal(t, "study_plan", result.SkillID)
	})

	t.Run("more hits means higher confidence", func(t *testing.T) {
		one := reg.Match("give me flashcards", false)
		two := reg.Match("give me flashcards, I mean flash cards for spaced repetition", false)
		require.Equal(t, "flashcards", one.SkillID)
		require.Equal(t, "flashcards", two.SkillID)
		assert.Greater(t, two.Confidence, one.Confidence)
	})

	t.Run("highest hit count wins across skills", func(t *testing.T) {
		result := reg.Match("test me with a quiz and practice questions, or maybe a study plan", false)
		assert.Equal(t, "quiz_generator", result.SkillID)
	})
}

func TestMatchMinKeywordMatches(t *testing.T) {
	reg := newTestRegistry(t, featureflags.Static{})

	t.Run("below the minimum does not qualify", func(t *testing.T) {
		// concept_explainer requires two hits; "explain" alone is one.
		result := reg.Match("explain the homework policy", false)
		assert.Equal(t, MatchResult{}, result)
	})

	t.Run("at the minimum qualifies", func(t *testing.T) {
		result := reg.Match("explain what is a derivative", false)
		assert.Equal(t, "concept_explainer", result.SkillID)
	})
}

func TestMatchGating(t *testing.T) {
	flags := featureflags.Static{"damage_analyzer": true}
	reg := newTestRegistry(t, flags)

	t.Run("admin skill never matches for non-admin", func(t *testing.T) {
		text := "Give me the weekly progress report with platform stats and an activity summary"
		result := reg.Match(text, false)
		assert.NotEqual(t, "progress_report", result.SkillID)
		assert.Equal(t, MatchResult{}, result)
	})

	t.Run("admin skill matches for admin", func(t *testing.T) {
		result := reg.Match("give me the progress report", true)
		assert.Equal(t, "progress_report", result.SkillID)
	})

	t.Run("flag-gated skill matches only while the flag is on", func(t *testing.T) {
		text := "run a damage analysis and assess the damage"
		result := reg.Match(text, true)
		require.Equal(t, "damage_analyzer", result.SkillID)

		flags["damage_analyzer"] = false
		result = reg.Match(text, true)
		assert.Equal(t, MatchResult{}, result)
		flags["damage_analyzer"] = true
	})

	t.Run("disabled skill never matches", func(t *testing.T) {
		result := reg.Match("please grade my essay", true)
		assert.NotEqual(t, "essay_grader", result.SkillID)
	})
}

func TestMatchConfidenceInvariant(t *testing.T) {
	reg := newTestRegistry(t, featureflags.Static{})

	inputs := []string{
		"make me a quiz",
		"necesito un plan de estudio",
		"what's the weather like",
		"",
		"explain", // one hit, below concept_explainer's minimum
		"DEBUG nonsense input 12345",
	}
	for _, text := range inputs {
		for _, isAdmin := range []bool{false, true} {
			result := reg.Match(text, isAdmin)
			if result.SkillID == "" {
				assert.Zero(t, result.Confidence, "input %q", text)
			} else {
				assert.Greater(t, result.Confidence, 0.0, "input %q", text)
			}
		}
	}
}

func TestMatchTieBreak(t *testing.T) {
	first := testSkill("tie_first", "zorbak")
	second := testSkill("tie_second", "zorbak")
	reg := newTestRegistry(t, featureflags.Static{}, WithSkills(first, second))

	result := reg.Match("tell me about zorbak", false)
	assert.Equal(t, "tie_first", result.SkillID)
}

func TestMatchNeverMatchesUnrelatedText(t *testing.T) {
	reg := newTestRegistry(t, featureflags.Static{})

	result := reg.Match("hello there, how are you doing today", false)
	assert.Equal(t, MatchResult{}, result)
	assert.False(t, result.Matched())
}
