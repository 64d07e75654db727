package config

import (
	"log"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
}

type CatalogConfig struct {
	Fixture string
	Locale  string
}

// Language returns the collation language of the catalog, falling back to
// English when the configured locale cannot be parsed
func (c CatalogConfig) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if c.Locale == "" || err != nil {
		return language.English
	}
	return tag
}

// Load reads configuration from the .env file, the environment and the
// given command line flags, in increasing order of precedence
func Load(flags *pflag.FlagSet) *Config {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("CATALOG_ENV", "development")
	v.SetDefault("CATALOG_LOG_LEVEL", "info")
	v.SetDefault("CATALOG_LOCALE", "en")
	v.SetDefault("CATALOG_FIXTURE", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Could not read config file: %v", err)
		}
	}

	if flags != nil {
		bind := map[string]string{
			"CATALOG_ENV":       "env",
			"CATALOG_LOG_LEVEL": "log-level",
			"CATALOG_LOCALE":    "locale",
			"CATALOG_FIXTURE":   "fixture",
		}
		for key, name := range bind {
			if f := flags.Lookup(name); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	return &Config{
		App: AppConfig{
			Env:      v.GetString("CATALOG_ENV"),
			LogLevel: v.GetString("CATALOG_LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			Fixture: v.GetString("CATALOG_FIXTURE"),
			Locale:  v.GetString("CATALOG_LOCALE"),
		},
	}
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env", "development", "environment: development or production")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("locale", "en", "BCP 47 language tag used to collate names")
	fs.String("fixture", "", "path to a YAML catalog file")
}
