package skills

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/estebanrs/aulabot/pkg/featureflags"
)

// Registry holds the full skill catalog. It is built once at startup and
// read-only afterwards, so it may be shared across goroutines without
// locking. Registration order is preserved and used as the matcher's tie
// break.
type Registry struct {
	ordered []*SkillDefinition
	byID    map[string]*SkillDefinition
	flags   featureflags.Provider
}

// Option configures a Registry under construction.
type Option func(*Registry) error

// WithFlagProvider sets the feature-flag provider used for gating
// decisions. Defaults to the environment-backed provider.
func WithFlagProvider(p featureflags.Provider) Option {
	return func(r *Registry) error {
		if p == nil {
			return errors.New("flag provider must not be nil")
		}
		r.flags = p
		return nil
	}
}

// WithSkills registers additional definitions after the builtin catalog.
// A definition whose id is already registered is rejected.
func WithSkills(defs ...*SkillDefinition) Option {
	return func(r *Registry) error {
		for _, def := range defs {
			if err := r.register(def); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithSkillDirs discovers SKILL.md definitions under the given
// directories and registers them after the builtin catalog. First
// registered id wins, so builtins shadow files.
func WithSkillDirs(dirs ...string) Option {
	return func(r *Registry) error {
		defs, err := discoverDirs(dirs)
		if err != nil {
			return err
		}
		for _, def := range defs {
			if _, exists := r.byID[def.ID]; exists {
				continue
			}
			if err := r.register(def); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewRegistry builds a registry seeded with the builtin catalog, applies
// the options, and validates the result.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]*SkillDefinition),
		flags: featureflags.EnvProvider{},
	}

	for _, def := range builtinCatalog() {
		if err := r.register(def); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) register(def *SkillDefinition) error {
	if def == nil {
		return errors.New("skill definition must not be nil")
	}
	if def.ID == "" {
		return errors.New("skill id is required")
	}
	if _, exists := r.byID[def.ID]; exists {
		return errors.Errorf("duplicate skill id %q", def.ID)
	}
	r.ordered = append(r.ordered, def)
	r.byID[def.ID] = def
	return nil
}

// Validate checks catalog self-consistency: unique ids are guaranteed by
// registration; every definition must carry bilingual names,
// descriptions, and keywords, a sane minimum match count, at least one
// safety rule, and at least one worked example. All violations are
// accumulated rather than reported one at a time.
func (r *Registry) Validate() error {
	var result *multierror.Error

	for _, def := range r.ordered {
		for _, lang := range Languages {
			if def.Name[lang] == "" {
				result = multierror.Append(result, errors.Errorf("skill %q: missing %s name", def.ID, lang))
			}
			if def.Description[lang] == "" {
				result = multierror.Append(result, errors.Errorf("skill %q: missing %s description", def.ID, lang))
			}
			if len(def.Triggers.Keywords[lang]) == 0 {
				result = multierror.Append(result, errors.Errorf("skill %q: no %s trigger keywords", def.ID, lang))
			}
		}
		if def.Triggers.MinKeywordMatches < 1 {
			result = multierror.Append(result, errors.Errorf("skill %q: minKeywordMatches must be >= 1", def.ID))
		}
		switch def.Output.Kind {
		case SchemaJSON:
			if len(def.Output.RequiredFields) == 0 {
				result = multierror.Append(result, errors.Errorf("skill %q: json output contract declares no required fields", def.ID))
			}
		case SchemaText:
		default:
			result = multierror.Append(result, errors.Errorf("skill %q: unknown output schema kind %q", def.ID, def.Output.Kind))
		}
		if len(def.SafetyRules) == 0 {
			result = multierror.Append(result, errors.Errorf("skill %q: at least one safety rule is required", def.ID))
		}
		for _, rule := range def.SafetyRules {
			if rule.Enforcement != EnforceWarn && rule.Enforcement != EnforceBlock {
				result = multierror.Append(result, errors.Errorf("skill %q: safety rule %q has unknown enforcement %q", def.ID, rule.ID, rule.Enforcement))
			}
		}
		if len(def.Examples) == 0 {
			result = multierror.Append(result, errors.Errorf("skill %q: at least one worked example is required", def.ID))
		}
	}

	return result.ErrorOrNil()
}

// AllIDs returns every registered skill id in registration order,
// including disabled and gated skills.
func (r *Registry) AllIDs() []string {
	ids := make([]string, 0, len(r.ordered))
	for _, def := range r.ordered {
		ids = append(ids, def.ID)
	}
	return ids
}

// Get looks up a definition by exact id. The second return is false for
// unknown ids; that is absence, not an error.
func (r *Registry) Get(id string) (*SkillDefinition, bool) {
	def, ok := r.byID[id]
	return def, ok
}

// ByCategory returns every skill of the category in registration order,
// unfiltered by gating.
func (r *Registry) ByCategory(cat Category) []*SkillDefinition {
	var defs []*SkillDefinition
	for _, def := range r.ordered {
		if def.Category == cat {
			defs = append(defs, def)
		}
	}
	return defs
}

// Enabled returns every skill with Enabled set, in registration order.
func (r *Registry) Enabled() []*SkillDefinition {
	var defs []*SkillDefinition
	for _, def := range r.ordered {
		if def.Enabled {
			defs = append(defs, def)
		}
	}
	return defs
}

// Available returns the skills the caller may see and invoke: enabled,
// not admin-gated beyond the caller's privilege, and not behind a
// disabled feature flag. Flags are evaluated per call so a toggle is
// observed immediately.
func (r *Registry) Available(isAdmin bool) []*SkillDefinition {
	var defs []*SkillDefinition
	for _, def := range r.ordered {
		if r.available(def, isAdmin) {
			defs = append(defs, def)
		}
	}
	return defs
}

func (r *Registry) available(def *SkillDefinition, isAdmin bool) bool {
	if !def.Enabled {
		return false
	}
	if def.RequiresAdmin && !isAdmin {
		return false
	}
	if def.FeatureFlag != "" && !r.flags.Enabled(def.FeatureFlag) {
		return false
	}
	return true
}
