package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/teranos/typeflow/dtype"
	"github.com/teranos/typeflow/errors"
	"github.com/teranos/typeflow/logger"
)

// Apply registers every declared type into the registry, in declaration
// order. Parents are resolved by name against already-registered types,
// so an entry may reference a built-in or any earlier entry; an unknown
// parent is an error.
func Apply(cfg *Config, reg *dtype.Registry) error {
	for _, def := range cfg.Types {
		if def.Name == "" {
			return errors.New("type declaration with empty name")
		}

		var parent *dtype.DataType
		if def.Parent != "" {
			p, ok := reg.LookupType(def.Parent)
			if !ok {
				return errors.Newf("type %q declares unknown parent %q", def.Name, def.Parent)
			}
			parent = p
		}

		// Re-declaring a name replaces the previous registration
		t, ok := reg.LookupType(def.Name)
		if !ok {
			t = dtype.NewDataType(def.Name)
		}
		reg.Register(t, parent)
	}
	return nil
}

// InitLogging initializes the global logger from the logging section.
func InitLogging(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.Logging.Level)
	}
	return logger.InitializeWithLevel(cfg.Logging.JSON, level)
}
