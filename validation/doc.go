// Package validation validates configuration structs and request input.
//
// Struct tag validation uses go-playground/validator and reports field paths
// by their mapstructure names, so errors read like config keys:
//
//	type Config struct {
//	    Root string `mapstructure:"root" validate:"required,scope_name"`
//	}
//	err := validation.Validate(cfg)
//
// Runtime names and ids are checked with a chained Validator:
//
//	err := validation.New().
//	    Required("scope", name).
//	    ScopeName("scope", name).
//	    Unique("scope", name, taken).
//	    Err()
package validation
