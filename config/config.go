package config

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func InitializeConfig() {
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("hexd")

	initializeDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		log.Debug(errors.Wrap(err, "config initialized using defaults and environment only"))
	}
}

func initializeDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.colors", true)

	viper.SetDefault("dump.upper", false)
	viper.SetDefault("dump.binary", false)
	viper.SetDefault("dump.cols", "")
	viper.SetDefault("dump.groupsize", "")
	viper.SetDefault("dump.len", "")
	viper.SetDefault("dump.unprintable", ".")
}
