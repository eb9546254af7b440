package config

import (
	"strings"

	"github.com/spf13/viper"
)

// All config locations
const (
	LoggingLevel = "app.loglevel"

	ConfigBias       = "search.bias"
	ConfigType       = "search.type"
	ConfigRange      = "search.range"
	ConfigFold       = "search.fold"
	ConfigDescending = "search.descending"
)

// EnvPrefix makes search.bias readable from BISECT_SEARCH_BIAS.
const EnvPrefix = "BISECT"

func SetDefaults(conf *viper.Viper) {
	conf.SetDefault(LoggingLevel, "info")

	conf.SetDefault(ConfigBias, "right")
	conf.SetDefault(ConfigType, "int")
	conf.SetDefault(ConfigRange, "..")
	conf.SetDefault(ConfigFold, false)
	conf.SetDefault(ConfigDescending, false)
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	conf := viper.New()
	SetDefaults(conf)
	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()
	return conf
}
