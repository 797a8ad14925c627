package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName is the settings file looked up in the config directory.
const FileName = "leveler"

// Load reads leveler.yaml from configDir and sets default values.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// SetDefaults registers the default for every known key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("accessLog", true)
	viper.SetDefault("listen", ":8080")

	viper.SetDefault("profilesDir", "./profiles")
	viper.SetDefault("defaultProfile", "default")
	viper.SetDefault("watchInterval", "2s")

	viper.SetDefault("survey.trials", 2000)
	viper.SetDefault("survey.maxTrials", 20000)
	viper.SetDefault("survey.maxPitch", 5.0)
	viper.SetDefault("survey.maxBank", 5.0)
	viper.SetDefault("survey.tolerance", 0.5)
	viper.SetDefault("survey.seed", 1)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// ConfigFile returns the file the settings were read from, if any.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}
