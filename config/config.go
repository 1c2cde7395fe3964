package config

// Config represents the typeflow library configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Types   []TypeDef     `mapstructure:"types"`
}

// LoggingConfig configures the global logger
type LoggingConfig struct {
	JSON  bool   `mapstructure:"json"`  // JSON structured output vs human-readable console
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// TypeDef declares an extra DataType to register at startup, optionally
// under a parent resolved by name. Parents may reference built-in types or
// earlier entries in the same list.
type TypeDef struct {
	Name   string `mapstructure:"name"`
	Parent string `mapstructure:"parent"`
}
