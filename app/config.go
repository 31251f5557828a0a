// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/patrickascher/gofer-migrate/config"
	"github.com/patrickascher/gofer-migrate/config/viper"
	"github.com/patrickascher/gofer-migrate/processor"
	"github.com/patrickascher/gofer-migrate/structer"
	"github.com/peterhellberg/duration"
	"github.com/spf13/pflag"
)

// envPrefix of the environment variables, e.g. MIGRATE_PROCESSOR_DSN.
const envPrefix = "migrate"

// Configuration of the migrate command.
// It can be loaded from a json, yaml or toml file. Durations are written as ISO-8601 (PT30S) or Go duration (30s).
type Configuration struct {
	Generator string
	Schema    string
	LogLevel  string
	Processor ProcessorConfiguration
}

// ProcessorConfiguration of the database connection.
// Only the linked database/sql drivers are accepted.
type ProcessorConfiguration struct {
	Driver             string `validate:"omitempty,oneof=mysql pgx sqlserver sqlite"`
	DSN                string
	Timeout            time.Duration `validate:"gte=0"`
	MaxIdleConnections int           `validate:"gte=0"`
	MaxOpenConnections int           `validate:"gte=0"`
	MaxConnLifetime    time.Duration `validate:"gte=0"`
	PreQuery           []string
	Preview            bool
}

// processorConfig converts the configuration for the processor.
func (c ProcessorConfiguration) processorConfig() processor.Config {
	return processor.Config{
		Driver:             c.Driver,
		DSN:                c.DSN,
		Timeout:            c.Timeout,
		MaxIdleConnections: c.MaxIdleConnections,
		MaxOpenConnections: c.MaxOpenConnections,
		MaxConnLifetime:    c.MaxConnLifetime,
		PreQuery:           c.PreQuery,
		Preview:            c.Preview,
	}
}

// defaultConfiguration is merged into every loaded configuration.
func defaultConfiguration() Configuration {
	return Configuration{
		LogLevel:  "INFO",
		Processor: ProcessorConfiguration{Timeout: 5 * time.Minute},
	}
}

// flagKeys maps the command line flags to the configuration keys.
var flagKeys = map[string]string{
	"dsn":     "processor.dsn",
	"driver":  "processor.driver",
	"preview": "processor.preview",
}

// LoadConfiguration loads the file and applies the changed flags and MIGRATE_ environment variables.
// Without a file only the flags are used. Default values are set for all empty fields.
func LoadConfiguration(file string, flags *pflag.FlagSet) (Configuration, error) {
	cfg := Configuration{}

	if file != "" {
		options := viper.Options{
			FileName:     filepath.Base(file),
			FilePath:     filepath.Dir(file),
			FileType:     strings.TrimPrefix(filepath.Ext(file), "."),
			EnvPrefix:    envPrefix,
			EnvAutomatic: true,
			Flags:        flags,
			FlagKeys:     flagKeys,
			DecodeHooks:  []mapstructure.DecodeHookFunc{isoDurationHook()},
		}
		if err := config.Load(config.VIPER, &cfg, options); err != nil {
			return cfg, err
		}
	} else if flags != nil {
		if err := structer.Override(&cfg, flagConfiguration(flags)); err != nil {
			return cfg, fmt.Errorf("app: %w", err)
		}
	}

	if err := structer.Merge(&cfg, defaultConfiguration()); err != nil {
		return cfg, fmt.Errorf("app: %w", err)
	}
	return cfg, config.Validate(&cfg)
}

// flagConfiguration reads the configuration from the flags. Flags which are not defined are ignored.
func flagConfiguration(flags *pflag.FlagSet) Configuration {
	str := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	preview, _ := flags.GetBool("preview")
	return Configuration{
		Generator: str("generator"),
		Schema:    str("schema"),
		LogLevel:  str("loglevel"),
		Processor: ProcessorConfiguration{Driver: str("driver"), DSN: str("dsn"), Preview: preview},
	}
}

// isoDurationHook decodes ISO-8601 durations like PT1M30S.
func isoDurationHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		s := data.(string)
		if !strings.HasPrefix(strings.ToUpper(s), "P") {
			return data, nil
		}
		return duration.Parse(s)
	}
}
