package skills

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const skillFileName = "SKILL.md"

// fileDefinition is the YAML frontmatter of a SKILL.md file. The
// markdown body below the frontmatter becomes the skill's instructions.
type fileDefinition struct {
	ID            string              `mapstructure:"id"`
	Category      string              `mapstructure:"category"`
	Name          map[string]string   `mapstructure:"name"`
	Description   map[string]string   `mapstructure:"description"`
	Enabled       *bool               `mapstructure:"enabled"`
	RequiresAdmin bool                `mapstructure:"requires_admin"`
	FeatureFlag   string              `mapstructure:"feature_flag"`
	Keywords      map[string][]string `mapstructure:"keywords"`
	MinMatches    int                 `mapstructure:"min_keyword_matches"`
	Output        struct {
		Kind           string   `mapstructure:"kind"`
		RequiredFields []string `mapstructure:"required_fields"`
	} `mapstructure:"output"`
	SafetyRules []struct {
		ID          string            `mapstructure:"id"`
		Description map[string]string `mapstructure:"description"`
		Enforcement string            `mapstructure:"enforcement"`
	} `mapstructure:"safety_rules"`
	Examples []struct {
		Input          map[string]string `mapstructure:"input"`
		ExpectedOutput map[string]string `mapstructure:"expected_output"`
	} `mapstructure:"examples"`
}

// discoverDirs loads skill definitions from directories whose immediate
// subdirectories each contain a SKILL.md. Entries that fail to load are
// skipped so one broken file cannot take down the catalog. Within a
// directory, definitions come back in lexical order; across directories,
// in argument order.
func discoverDirs(dirs []string) ([]*SkillDefinition, error) {
	var defs []*SkillDefinition
	seen := make(map[string]bool)

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			def, err := loadSkillFile(filepath.Join(dir, entry.Name(), skillFileName))
			if err != nil {
				continue
			}
			if seen[def.ID] {
				continue
			}
			seen[def.ID] = true
			defs = append(defs, def)
		}
	}

	return defs, nil
}

// loadSkillFile parses one SKILL.md into a definition.
func loadSkillFile(path string) (*SkillDefinition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	var fd fileDefinition
	if err := mapstructure.Decode(metaData, &fd); err != nil {
		return nil, errors.Wrap(err, "invalid skill frontmatter")
	}
	if fd.ID == "" {
		return nil, errors.New("skill id is required in frontmatter")
	}

	def := &SkillDefinition{
		ID:            fd.ID,
		Category:      Category(fd.Category),
		Name:          toLanguageMap(fd.Name),
		Description:   toLanguageMap(fd.Description),
		Enabled:       fd.Enabled == nil || *fd.Enabled,
		RequiresAdmin: fd.RequiresAdmin,
		FeatureFlag:   fd.FeatureFlag,
		Triggers: TriggerSpec{
			Keywords:          toKeywordMap(fd.Keywords),
			MinKeywordMatches: fd.MinMatches,
		},
		Output: SchemaSpec{
			Kind:           SchemaKind(fd.Output.Kind),
			RequiredFields: fd.Output.RequiredFields,
		},
		Instructions: extractBodyContent(string(content)),
	}
	if def.Triggers.MinKeywordMatches == 0 {
		def.Triggers.MinKeywordMatches = 1
	}
	if def.Output.Kind == "" {
		def.Output.Kind = SchemaText
	}
	for _, rule := range fd.SafetyRules {
		def.SafetyRules = append(def.SafetyRules, SafetyRule{
			ID:          rule.ID,
			Description: toLanguageMap(rule.Description),
			Enforcement: Enforcement(rule.Enforcement),
		})
	}
	for _, ex := range fd.Examples {
		def.Examples = append(def.Examples, Example{
			Input:          toLanguageMap(ex.Input),
			ExpectedOutput: toLanguageMap(ex.ExpectedOutput),
		})
	}

	return def, nil
}

func toLanguageMap(m map[string]string) map[Language]string {
	out := make(map[Language]string, len(m))
	for lang, v := range m {
		out[Language(lang)] = v
	}
	return out
}

func toKeywordMap(m map[string][]string) map[Language][]string {
	out := make(map[Language][]string, len(m))
	for lang, kws := range m {
		out[Language(lang)] = kws
	}
	return out
}

// extractBodyContent strips the YAML frontmatter and returns the body.
func extractBodyContent(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}
	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
