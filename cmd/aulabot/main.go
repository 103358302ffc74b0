package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/estebanrs/aulabot/pkg/featureflags"
	"github.com/estebanrs/aulabot/pkg/logger"
	"github.com/estebanrs/aulabot/pkg/skills"
	"github.com/estebanrs/aulabot/pkg/telemetry"
	"github.com/estebanrs/aulabot/pkg/version"
)

func init() {
	// Environment variables: AULABOT_FF_DAMAGE_ANALYZER maps to the
	// ff.damage_analyzer key read by the feature-flag provider.
	viper.SetEnvPrefix("AULABOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.aulabot")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "aulabot",
	Short: "Skill routing and safety tooling for the aulabot agent core",
	Long: `aulabot is the operator surface of the agent's skill core: inspect the
skill catalog, route free text to a skill, and gate generated output
through contract validation and the leakage detector.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))

		ctx := cmd.Context()
		shutdown, err := telemetry.InitTracer(ctx, telemetry.Config{
			Enabled:        viper.GetBool("tracing.enabled"),
			ServiceName:    "aulabot",
			ServiceVersion: version.Get().Version,
			SamplerType:    viper.GetString("tracing.sampler"),
			SamplerRatio:   viper.GetFloat64("tracing.ratio"),
		})
		if err != nil {
			logger.G(ctx).WithError(err).Warn("failed to initialize tracing")
			return nil
		}
		tracerShutdown = shutdown
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if tracerShutdown != nil {
			if err := tracerShutdown(cmd.Context()); err != nil {
				logger.G(cmd.Context()).WithError(err).Debug("tracer shutdown failed")
			}
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// buildRegistry assembles the catalog the subcommands work against:
// builtins plus any configured skill directories.
func buildRegistry() (*skills.Registry, error) {
	opts := []skills.Option{
		skills.WithFlagProvider(featureflags.EnvProvider{}),
	}
	if dirs := viper.GetStringSlice("skill_dirs"); len(dirs) > 0 {
		opts = append(opts, skills.WithSkillDirs(dirs...))
	}
	return skills.NewRegistry(opts...)
}

// tracerShutdown flushes pending spans after the command completes.
var tracerShutdown func(context.Context) error

func main() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().StringSlice("skill-dirs", nil, "Additional directories with SKILL.md definitions")
	rootCmd.PersistentFlags().Bool("tracing", false, "Enable OpenTelemetry tracing")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("skill_dirs", rootCmd.PersistentFlags().Lookup("skill-dirs"))
	viper.BindPFlag("tracing.enabled", rootCmd.PersistentFlags().Lookup("tracing"))

	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
