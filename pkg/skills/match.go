package skills

import "strings"

// Match routes free text to the best-fitting available skill.
//
// Gating runs before scoring: only skills from Available(isAdmin) are
// scored, so a caller can never reach a restricted skill through keyword
// density, and a gating violation is indistinguishable from no match.
// Matching is case-folded substring containment over both keyword
// languages; no stemming or fuzzy matching. A candidate qualifies once
// its distinct hit count reaches its MinKeywordMatches; the highest hit
// count wins and ties fall to registration order.
//
// The result is total: unmatched input yields an empty SkillID with
// confidence exactly zero, never an error.
func (r *Registry) Match(text string, isAdmin bool) MatchResult {
	normalized := strings.ToLower(text)

	var (
		best     *SkillDefinition
		bestHits int
	)
	for _, def := range r.Available(isAdmin) {
		hits := countKeywordHits(normalized, def.Triggers.Keywords)
		if hits < def.Triggers.MinKeywordMatches {
			continue
		}
		if best == nil || hits > bestHits {
			best = def
			bestHits = hits
		}
	}

	if best == nil {
		return MatchResult{}
	}
	return MatchResult{
		SkillID:    best.ID,
		Confidence: confidence(bestHits, best.keywordCount()),
	}
}

// countKeywordHits counts the distinct keywords, across all languages,
// that occur in the normalized text.
func countKeywordHits(normalized string, keywords map[Language][]string) int {
	hits := 0
	for _, lang := range Languages {
		for _, kw := range keywords[lang] {
			if kw == "" {
				continue
			}
			if strings.Contains(normalized, strings.ToLower(kw)) {
				hits++
			}
		}
	}
	return hits
}

// confidence scores a qualifying match as the fraction of the skill's
// keyword set found in the text. Strictly positive for any selected
// skill (hits >= 1 is implied by MinKeywordMatches >= 1), capped at 1.
func confidence(hits, keywordCount int) float64 {
	if keywordCount == 0 {
		return 0
	}
	c := float64(hits) / float64(keywordCount)
	if c > 1 {
		c = 1
	}
	return c
}
