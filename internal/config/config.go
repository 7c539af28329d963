// SPDX-License-Identifier: MPL-2.0

package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/eventlOwOp/R-with-conda/internal/issue"
)

// EnvPrefix is the prefix of every environment variable the launcher reads.
const EnvPrefix = "CONDA_SHIM"

// EnvVar returns the environment variable that sets key (e.g. "path_mode"
// becomes CONDA_SHIM_PATH_MODE).
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// Load reads the configuration from the environment and validates it.
// Values are normalized to lower case so CONDA_SHIM_PATH_MODE=Always works.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("dry_run", defaults.DryRun)
	v.SetDefault("path_mode", string(defaults.PathMode))
	v.SetDefault("convention", string(defaults.Convention))

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(EnvPrefix + "_*").
			WithSuggestion("Use 1/0 or true/false for " + EnvVar("verbose") + " and " + EnvVar("dry_run")).
			Wrap(err).
			BuildError()
	}
	cfg.PathMode = PathMode(strings.ToLower(strings.TrimSpace(string(cfg.PathMode))))
	cfg.Convention = ConventionName(strings.ToLower(strings.TrimSpace(string(cfg.Convention))))

	if err := cfg.Validate(); err != nil {
		ctx := issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(EnvPrefix + "_*").
			Wrap(err)
		if cfg.PathMode.Validate() != nil {
			ctx.WithSuggestionf("Set %s to auto or always, or unset it", EnvVar("path_mode"))
		}
		if cfg.Convention.Validate() != nil {
			ctx.WithSuggestionf("Set %s to auto, windows or posix, or unset it", EnvVar("convention"))
		}
		return nil, ctx.BuildError()
	}

	return cfg, nil
}
