package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/estebanrs/aulabot/pkg/audit"
	"github.com/estebanrs/aulabot/pkg/guard"
	"github.com/estebanrs/aulabot/pkg/skills"
)

var matchCmd = &cobra.Command{
	Use:   "match <text>",
	Short: "Route free text to a skill",
	Long: `Run the intent matcher against the given text and print the selected
skill and confidence. Gating applies exactly as it would in production:
pass --admin to evaluate as a privileged caller.

Examples:
  aulabot match "make me a quiz about the water cycle"
  aulabot match --admin "weekly progress report"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to build skill registry")
		}

		isAdmin, _ := cmd.Flags().GetBool("admin")
		text := strings.Join(args, " ")

		gate := guard.NewGate(registry, audit.LogSink{})
		result := gate.Route(cmd.Context(), text, isAdmin)

		if !result.Matched() {
			fmt.Println("no matching skill")
			return nil
		}

		def, _ := registry.Get(result.SkillID)
		color.New(color.Bold).Printf("%s", result.SkillID)
		fmt.Printf("  confidence=%.2f  (%s)\n", result.Confidence, def.Name[skills.LangEN])
		return nil
	},
}

func init() {
	matchCmd.Flags().Bool("admin", false, "Evaluate as an admin caller")
}
