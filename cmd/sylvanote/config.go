// Config loading for the sylvanote CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sylvanote/sylvanote/pkg/types"
)

const (
	configFileName = "sylvanote"
	configFileType = "yaml"
	envPrefix      = "SYLVANOTE"

	// Config keys.
	cfgKeyDBPath     = "db_path"
	cfgKeyListenAddr = "listen_addr"
	cfgKeyCORSOrigin = "cors_origin"

	// Defaults.
	defaultDBPath     = "sylvanote.db"
	defaultListenAddr = ":8000"
	defaultCORSOrigin = "http://localhost:3000"
)

// loadConfig reads configuration using Viper: defaults, then sylvanote.yaml
// from the working directory (or the --config path), then SYLVANOTE_* env
// variables. A .env file in the working directory is loaded first when
// present. A missing config file is not an error.
func loadConfig(configFile string) (types.Config, error) {
	// Make .env values visible to viper's env lookup.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return types.Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault(cfgKeyDBPath, defaultDBPath)
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyCORSOrigin, defaultCORSOrigin)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
			// Missing sylvanote.yaml is not an error; defaults apply.
		}
	}

	cfg := types.Config{
		DBPath:     v.GetString(cfgKeyDBPath),
		ListenAddr: v.GetString(cfgKeyListenAddr),
		CORSOrigin: v.GetString(cfgKeyCORSOrigin),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
