package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays variables named by the env tags of Config. Unset
// variables leave the current value in place.
func parseEnv(config *Config) error {
	return cleanenv.ReadEnv(config)
}
