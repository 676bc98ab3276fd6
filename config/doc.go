// Package config loads scribekit configuration from YAML files and
// environment variables.
//
// It uses Viper for file and environment merging and godotenv for .env
// files. Configuration resolves in order: config.yml, then .env, then
// process environment, with later sources winning.
//
// # Usage
//
//	var cfg config.Config
//	err := config.LoadConfig("scribekit", &cfg)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
package config
