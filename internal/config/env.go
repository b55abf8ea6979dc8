package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ApplyEnvOverrides layers the DCG_PACKS environment variable (a
// comma-separated pack list) on top of cfg, using viper's env-binding rather
// than hand-rolled os.Getenv calls. It reads no other DCG_* variable.
func ApplyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("DCG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if packs := v.GetString("PACKS"); packs != "" {
		cfg.Packs.Enabled = strings.Split(packs, ",")
	}
}

// PackEnabled reports whether packID is enabled under cfg's pack list,
// honoring the "*" wildcard that enables everything.
func PackEnabled(cfg Config, packID string) bool {
	for _, p := range cfg.Packs.Enabled {
		if p == "*" || p == packID {
			return true
		}
	}
	return false
}
