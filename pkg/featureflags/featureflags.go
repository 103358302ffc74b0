// Package featureflags provides named boolean switches controlled by the
// process environment. Flags gate skill availability; they are evaluated
// fresh on every check so a toggle takes effect on the next call without
// a restart.
package featureflags

import (
	"strings"

	"github.com/spf13/viper"
)

// Provider evaluates a named feature flag. Absence or a false-like value
// means disabled.
type Provider interface {
	Enabled(name string) bool
}

// envPrefix namespaces flag lookups, e.g. the DAMAGE_ANALYZER flag reads
// AULABOT_FF_DAMAGE_ANALYZER.
const envPrefix = "ff"

// EnvProvider reads flags through viper, which binds them to
// AULABOT_FF_<NAME> environment variables. The zero value is usable.
type EnvProvider struct{}

// Enabled reports whether the flag evaluates truthy right now. Viper is
// consulted on every call; nothing is cached.
func (EnvProvider) Enabled(name string) bool {
	if name == "" {
		return false
	}
	return viper.GetBool(key(name))
}

func key(name string) string {
	return envPrefix + "." + strings.ToLower(name)
}

// Static is a fixed in-memory provider for deterministic tests.
type Static map[string]bool

// Enabled reports the configured value, false for unknown flags.
func (s Static) Enabled(name string) bool {
	return s[strings.ToLower(name)]
}
