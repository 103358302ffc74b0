// Package guard is the safety layer applied to generated text before it
// reaches a user: a pattern-based leakage detector for secrets, internal
// prompts, and infrastructure details, plus a release gate that combines
// it with output-contract validation.
package guard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// LeakageResult reports whether text disclosed something it should not
// have. Issues is empty iff Leaked is false.
type LeakageResult struct {
	Leaked bool     `json:"leaked"`
	Issues []string `json:"issues"`
}

// pattern is one independently detectable disclosure category.
type pattern struct {
	issue string
	match func(text string) bool
}

var (
	apiKeyRe      = regexp.MustCompile(`API_KEY\s*[=:]\s*\S+`)
	bearerRe      = regexp.MustCompile(`\bBearer\s+[A-Za-z0-9._~+/\-]+`)
	envFileRe     = regexp.MustCompile(`(^|[\s"'` + "`" + `(\[{=])\.env\b`)
	envAccessRe   = regexp.MustCompile(`process\.env\.[A-Za-z_][A-Za-z0-9_]*|os\.Getenv\(`)
	localURLRe    = regexp.MustCompile(`https?://(localhost|127\.0\.0\.1)|\b(localhost|127\.0\.0\.1):\d+`)
	hostTokenTrim = ",.;:!?()[]{}<>\"'"
)

// internalHostGlobs match hostnames and server processes that only exist
// inside the platform's network. Checked token by token so ordinary
// prose is never caught.
var internalHostGlobs = compileGlobs(
	"*.internal",
	"*.svc.cluster.local",
	"db-primary*",
	"mongod",
	"redis-server",
)

func compileGlobs(patterns ...string) []glob.Glob {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		globs = append(globs, glob.MustCompile(p))
	}
	return globs
}

// defaultPatterns is the fixed disclosure set. Markers like DEBUG: are
// deliberately case-sensitive: the canonical form is what the platform
// emits, and a looser match would start flagging ordinary prose.
func defaultPatterns() []pattern {
	return []pattern{
		{
			issue: "internal role marker in output",
			match: func(text string) bool {
				return strings.Contains(text, "[SYSTEM]") || strings.Contains(text, "[INTERNAL]")
			},
		},
		{
			issue: "debug trace marker in output",
			match: func(text string) bool {
				return strings.HasPrefix(text, "DEBUG:") || strings.Contains(text, "\nDEBUG:")
			},
		},
		{
			issue: "API key disclosure",
			match: apiKeyRe.MatchString,
		},
		{
			issue: "bearer token disclosure",
			match: bearerRe.MatchString,
		},
		{
			issue: "environment file reference",
			match: envFileRe.MatchString,
		},
		{
			issue: "environment variable access in output",
			match: envAccessRe.MatchString,
		},
		{
			issue: "internal host URL",
			match: localURLRe.MatchString,
		},
		{
			issue: "internal infrastructure reference",
			match: matchesInternalHost,
		},
	}
}

func matchesInternalHost(text string) bool {
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, hostTokenTrim)
		if token == "" {
			continue
		}
		for _, g := range internalHostGlobs {
			if g.Match(token) {
				return true
			}
		}
	}
	return false
}

// Detector scans text for the fixed disclosure pattern set. The zero
// value is not usable; construct with NewDetector. A Detector is
// immutable and safe for concurrent use.
type Detector struct {
	patterns []pattern
}

// NewDetector returns a detector with the default disclosure patterns.
func NewDetector() *Detector {
	return &Detector{patterns: defaultPatterns()}
}

// Check scans text and reports one issue per matched pattern. It never
// flags ordinary domain content; a false positive here is a bug, not
// caution.
func (d *Detector) Check(text string) LeakageResult {
	var issues []string
	for _, p := range d.patterns {
		if p.match(text) {
			issues = append(issues, p.issue)
		}
	}
	if len(issues) == 0 {
		return LeakageResult{}
	}
	return LeakageResult{Leaked: true, Issues: issues}
}

// CheckFields scans every string value of a structured output, joining
// nested values depth-first. Used by the gate for JSON-shaped skill
// results.
func (d *Detector) CheckFields(obj map[string]any) LeakageResult {
	return d.Check(flatten(obj))
}

func flatten(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		var sb strings.Builder
		for _, item := range val {
			sb.WriteString(flatten(item))
			sb.WriteString("\n")
		}
		return sb.String()
	case []any:
		var sb strings.Builder
		for _, item := range val {
			sb.WriteString(flatten(item))
			sb.WriteString("\n")
		}
		return sb.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
