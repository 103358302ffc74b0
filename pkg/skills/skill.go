// Package skills implements the agent's skill routing core: a static
// catalog of skill definitions, privilege- and flag-aware views over it,
// deterministic keyword-based intent matching, and validation of skill
// output against each skill's declared contract.
package skills

// Language identifies one of the catalog's supported locales. Names,
// descriptions, and trigger keywords are keyed by Language so adding a
// locale is additive.
type Language string

const (
	// LangEN is the primary catalog language.
	LangEN Language = "en"
	// LangES is the secondary catalog language.
	LangES Language = "es"
)

// Languages lists every locale a complete definition must cover.
var Languages = []Language{LangEN, LangES}

// Category groups skills by the kind of capability they provide.
type Category string

const (
	CategoryEducation Category = "education"
	CategorySystem    Category = "system"
	CategoryAnalysis  Category = "analysis"
)

// SchemaKind discriminates the shape a skill's output must take.
type SchemaKind string

const (
	// SchemaJSON means the skill produces a structured object with a set
	// of required top-level fields.
	SchemaJSON SchemaKind = "json"
	// SchemaText means the skill produces free-form prose.
	SchemaText SchemaKind = "text"
)

// Enforcement says how a safety rule is applied.
type Enforcement string

const (
	// EnforceWarn rules are advisory and surfaced to the caller.
	EnforceWarn Enforcement = "warn"
	// EnforceBlock rules are preconditions the caller must satisfy before
	// the skill may run.
	EnforceBlock Enforcement = "block"
)

// TriggerSpec is the keyword heuristic that routes free text to a skill.
type TriggerSpec struct {
	// Keywords holds the case-insensitive substring triggers per language.
	Keywords map[Language][]string
	// MinKeywordMatches is the minimum number of distinct keyword hits
	// (across all languages) required before the skill is a candidate.
	// Always >= 1.
	MinKeywordMatches int
}

// SchemaSpec declares the expected shape of a successful skill output.
type SchemaSpec struct {
	Kind SchemaKind
	// RequiredFields lists the top-level fields a SchemaJSON output must
	// carry. Empty for SchemaText.
	RequiredFields []string
}

// SafetyRule is a declared constraint on running the skill.
type SafetyRule struct {
	ID          string
	Description map[Language]string
	Enforcement Enforcement
}

// Example is a worked input/output pair used for documentation and the
// conformance tests. Not consulted at runtime.
type Example struct {
	Input          map[Language]string
	ExpectedOutput map[Language]string
}

// SkillDefinition is the unit of capability. Definitions are constructed
// once at startup and never mutated afterwards.
type SkillDefinition struct {
	// ID is the unique stable identifier, immutable once registered.
	ID       string
	Category Category

	Name        map[Language]string
	Description map[Language]string

	// Enabled excludes the skill from matching and listing when false.
	Enabled bool
	// RequiresAdmin restricts visibility and matchability to privileged
	// callers.
	RequiresAdmin bool
	// FeatureFlag, when non-empty, names an environment-controlled flag
	// that must evaluate truthy for the skill to be available.
	FeatureFlag string

	Triggers    TriggerSpec
	Output      SchemaSpec
	SafetyRules []SafetyRule
	Examples    []Example

	// Instructions is the long-form prompt body handed to the model when
	// the skill is invoked. Populated from the SKILL.md body for
	// file-discovered skills.
	Instructions string
}

// BlockingRules returns the safety rules with block enforcement, in
// declaration order.
func (s *SkillDefinition) BlockingRules() []SafetyRule {
	var rules []SafetyRule
	for _, r := range s.SafetyRules {
		if r.Enforcement == EnforceBlock {
			rules = append(rules, r)
		}
	}
	return rules
}

// keywordCount returns the total number of trigger keywords across all
// languages.
func (s *SkillDefinition) keywordCount() int {
	n := 0
	for _, kws := range s.Triggers.Keywords {
		n += len(kws)
	}
	return n
}

// MatchResult is the intent matcher's output. SkillID is empty when no
// skill qualified; Confidence is zero exactly in that case.
type MatchResult struct {
	SkillID    string  `json:"skillId"`
	Confidence float64 `json:"confidence"`
}

// Matched reports whether a skill was selected.
func (m MatchResult) Matched() bool {
	return m.SkillID != ""
}

// ValidationResult is the output validator's verdict. Errors is empty
// iff Valid is true.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
