// Package config loads settings.Config from an optional YAML file and the
// environment.
package config

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/huynhanx03/go-linear/pkg/common/http/validation"
	"github.com/huynhanx03/go-linear/pkg/datastructs/linear"
	"github.com/huynhanx03/go-linear/pkg/settings"
)

// EnvPrefix prefixes every environment override, e.g. LINEARSIM_COLLECTION_CAPACITY.
const EnvPrefix = "LINEARSIM"

var defaults = map[string]any{
	"server.mode":             "release",
	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.shutdown_timeout": 10,
	"server.allow_origins":    []string{},

	"logger.log_level":     "info",
	"logger.file_log_name": "",
	"logger.max_backups":   3,
	"logger.max_age":       28,
	"logger.max_size":      100,
	"logger.compress":      false,

	"collection.capacity": 5,
	"collection.mode":     "stack",

	"events.sink":               "none",
	"events.codec":              "json",
	"events.channel":            "linear.events",
	"events.topic":              "linear-events",
	"events.session":            "",
	"events.publish_timeout_ms": 2000,
	"events.async_buffer":       0,

	"redis.host":     "localhost",
	"redis.port":     6379,
	"redis.password": "",
	"redis.database": 0,

	"kafka.brokers":   []string{"localhost:9092"},
	"kafka.client_id": "go-linear",
	"kafka.timeout":   5,
}

// Load reads path when non-empty, applies defaults and LINEARSIM_* overrides,
// and validates the result.
func Load(path string) (*settings.Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v, "", reflect.TypeOf(settings.Config{})); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg settings.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize rewrites aliases into their canonical form. Unknown values are
// left for Validate to reject.
func normalize(cfg *settings.Config) {
	if m, err := linear.ParseMode(cfg.Collection.Mode); err == nil {
		cfg.Collection.Mode = m.String()
	}
}

// bindEnv registers every mapstructure key of t so that LINEARSIM_* variables
// override keys without a default too.
func bindEnv(v *viper.Viper, prefix string, t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			if err := bindEnv(v, key, f.Type); err != nil {
				return err
			}
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "bind env %s", key)
		}
	}
	return nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *settings.Config) error {
	if err := validation.Validator().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
