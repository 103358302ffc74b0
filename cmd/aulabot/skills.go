package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/estebanrs/aulabot/pkg/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect the skill catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills with their gating",
	Long: `List every registered skill. With --available, show only the skills an
admin (or with --user, a regular caller) could actually invoke right now,
honoring enablement and feature flags.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to build skill registry")
		}

		availableOnly, _ := cmd.Flags().GetBool("available")
		asUser, _ := cmd.Flags().GetBool("user")

		var defs []*skills.SkillDefinition
		if availableOnly {
			defs = registry.Available(!asUser)
		} else {
			for _, id := range registry.AllIDs() {
				def, _ := registry.Get(id)
				defs = append(defs, def)
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tENABLED\tADMIN\tFLAG\tNAME")
		for _, def := range defs {
			fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%s\t%s\n",
				def.ID, def.Category, def.Enabled, def.RequiresAdmin,
				def.FeatureFlag, def.Name[skills.LangEN])
		}
		return w.Flush()
	},
}

var skillsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one skill definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to build skill registry")
		}

		def, ok := registry.Get(args[0])
		if !ok {
			return errors.Errorf("unknown skill %q", args[0])
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			out, err := json.MarshalIndent(renderSkill(def), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		case "yaml":
			out, err := yaml.Marshal(renderSkill(def))
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		default:
			printSkill(def)
		}
		return nil
	},
}

// renderSkill flattens a definition into a stable, serializable shape
// shared by the json and yaml output formats.
func renderSkill(def *skills.SkillDefinition) map[string]any {
	rules := make([]map[string]any, 0, len(def.SafetyRules))
	for _, r := range def.SafetyRules {
		rules = append(rules, map[string]any{
			"id":          r.ID,
			"enforcement": string(r.Enforcement),
			"description": languageMap(r.Description),
		})
	}
	return map[string]any{
		"id":            def.ID,
		"category":      string(def.Category),
		"name":          languageMap(def.Name),
		"description":   languageMap(def.Description),
		"enabled":       def.Enabled,
		"requiresAdmin": def.RequiresAdmin,
		"featureFlag":   def.FeatureFlag,
		"triggers": map[string]any{
			"keywords":          keywordMap(def.Triggers.Keywords),
			"minKeywordMatches": def.Triggers.MinKeywordMatches,
		},
		"output": map[string]any{
			"kind":           string(def.Output.Kind),
			"requiredFields": def.Output.RequiredFields,
		},
		"safetyRules": rules,
	}
}

func languageMap(m map[skills.Language]string) map[string]string {
	out := make(map[string]string, len(m))
	for lang, v := range m {
		out[string(lang)] = v
	}
	return out
}

func keywordMap(m map[skills.Language][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for lang, v := range m {
		out[string(lang)] = v
	}
	return out
}

func printSkill(def *skills.SkillDefinition) {
	title := color.New(color.Bold)
	title.Printf("%s", def.Name[skills.LangEN])
	fmt.Printf("  (%s / %s)\n", def.ID, def.Category)
	fmt.Println(def.Description[skills.LangEN])
	fmt.Println(def.Description[skills.LangES])
	fmt.Println()

	fmt.Printf("Enabled: %t  Admin-only: %t", def.Enabled, def.RequiresAdmin)
	if def.FeatureFlag != "" {
		fmt.Printf("  Feature flag: %s", def.FeatureFlag)
	}
	fmt.Println()

	for _, lang := range skills.Languages {
		fmt.Printf("Keywords (%s): %v\n", lang, def.Triggers.Keywords[lang])
	}
	fmt.Printf("Minimum keyword matches: %d\n", def.Triggers.MinKeywordMatches)

	fmt.Printf("Output: %s", def.Output.Kind)
	if len(def.Output.RequiredFields) > 0 {
		fmt.Printf(" with required fields %v", def.Output.RequiredFields)
	}
	fmt.Println()

	if len(def.SafetyRules) > 0 {
		title.Println("Safety rules:")
		for _, rule := range def.SafetyRules {
			fmt.Printf("  [%s] %s: %s\n", rule.Enforcement, rule.ID, rule.Description[skills.LangEN])
		}
	}
}

func init() {
	skillsListCmd.Flags().Bool("available", false, "Only show skills available right now")
	skillsListCmd.Flags().Bool("user", false, "Evaluate availability as a non-admin caller")
	skillsShowCmd.Flags().StringP("format", "f", "", "Output format (json or yaml)")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
}
