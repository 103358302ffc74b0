package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/estebanrs/aulabot/pkg/audit"
	"github.com/estebanrs/aulabot/pkg/guard"
)

var gateCmd = &cobra.Command{
	Use:   "gate --skill <id> [file]",
	Short: "Run generated output through the release gate",
	Long: `Validate a skill output against its declared contract and scan it for
leakage, exactly as the request path does before releasing text to a
user. The output is read from the file argument, or stdin when omitted.
JSON input is treated as a structured object; anything else as text.

Exit status is 0 when the output would be released and 1 when it would
be blocked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skillID, _ := cmd.Flags().GetString("skill")
		if skillID == "" {
			return errors.New("--skill is required")
		}

		raw, err := readInput(args)
		if err != nil {
			return err
		}

		registry, err := buildRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to build skill registry")
		}

		var output any = string(raw)
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err == nil {
			output = obj
		}

		gate := guard.NewGate(registry, audit.LogSink{})
		decision := gate.Release(cmd.Context(), skillID, output)

		if decision.Released {
			color.Green("released")
			return nil
		}

		color.Red("blocked")
		for _, msg := range decision.Validation.Errors {
			fmt.Printf("  validation: %s\n", msg)
		}
		for _, issue := range decision.Leakage.Issues {
			fmt.Printf("  leakage: %s\n", issue)
		}
		os.Exit(1)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan text for leakage only",
	Long: `Run only the leakage detector over the given file (or stdin). Useful
for checking non-skill text such as generic fallback responses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args)
		if err != nil {
			return err
		}

		result := guard.NewDetector().Check(string(raw))
		if !result.Leaked {
			color.Green("clean")
			return nil
		}

		color.Red("leakage detected")
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue)
		}
		os.Exit(1)
		return nil
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		raw, err := os.ReadFile(args[0])
		return raw, errors.Wrap(err, "failed to read input file")
	}
	raw, err := io.ReadAll(os.Stdin)
	return raw, errors.Wrap(err, "failed to read stdin")
}

func init() {
	gateCmd.Flags().String("skill", "", "Skill id whose output contract applies")
}
