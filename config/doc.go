// Package config loads service configuration with viper.
//
// LoadConfig reads a YAML file and an optional .env file (godotenv), then
// overlays the process environment:
//
//	var cfg DemoConfig
//	if err := config.LoadConfig("scopekit-demo", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
