// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package viper provides a wrapper for the https://github.com/spf13/viper package.
// Next to the config file, environment variables and command line flags (pflag) can be bound.
// If the watcher is enabled, the configuration struct is updated automatically on file changes.
package viper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/patrickascher/gofer-migrate/config"
	"github.com/patrickascher/gofer-migrate/registry"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// init registers the viper provider.
func init() {
	err := registry.Set(config.VIPER, new(viperProvider))
	if err != nil {
		log.Fatal(err)
	}
}

// Error messages
var (
	ErrOptions   = errors.New("viper-provider: options must be of type viper.Options")
	ErrMandatory = errors.New("viper-provider: viper.Options file-name, path and type are mandatory")
)

// Options for the viper provider.
type Options struct {
	// FileName of the configuration.
	FileName string
	// FileType of the configuration (json, yaml, toml, ...).
	FileType string
	// FilePath to look into.
	FilePath string
	// Watch for file changes.
	Watch bool
	// WatchCallback is called after the config struct was updated.
	WatchCallback func(cfg interface{}, viper *viper.Viper, e fsnotify.Event)
	// EnvPrefix for environment variables. Nested keys use "_" as separator (PREFIX_PROCESSOR_DSN).
	EnvPrefix string
	// EnvAutomatic check if environment variables match any of the existing keys.
	EnvAutomatic bool
	// EnvBind binds a viper key to an ENV variable.
	EnvBind []string
	// Flags are bound by their name. Changed flags overwrite file values.
	Flags *pflag.FlagSet
	// FlagKeys binds a flag to a different key, e.g. "dsn": "processor.dsn".
	FlagKeys map[string]string
	// DecodeHooks run before the default string-to-duration and string-to-slice hooks.
	DecodeHooks []mapstructure.DecodeHookFunc
}

// instances of viper by the absolute file path, which is the only information of the watch-callback.
var (
	instances   = make(map[string]*instance)
	instancesMu sync.Mutex
)

type instance struct {
	name    string
	viper   *viper.Viper
	cfg     interface{}
	options Options
}

// viperProvider satisfies the config.Interface.
type viperProvider struct{}

// Parse will configure viper and unmarshal the config into the config struct.
// Filename, path and type are mandatory.
func (vp *viperProvider) Parse(cfg interface{}, opt interface{}) error {
	options, ok := opt.(Options)
	if !ok {
		return ErrOptions
	}
	if options.FileName == "" || options.FilePath == "" || options.FileType == "" {
		return ErrMandatory
	}

	i, err := getInstance(cfg, options)
	if err != nil {
		return fmt.Errorf("viper-provider: %w", err)
	}

	i.viper.SetConfigFile(i.name)
	i.viper.SetConfigType(options.FileType)

	i.viper.OnConfigChange(func(e fsnotify.Event) {
		instancesMu.Lock()
		i, ok := instances[e.Name]
		instancesMu.Unlock()
		if !ok {
			return
		}
		_ = i.viper.Unmarshal(i.cfg, decodeHook(i.options))
		if i.options.WatchCallback != nil {
			i.options.WatchCallback(i.cfg, i.viper, e)
		}
	})

	if options.EnvPrefix != "" {
		i.viper.SetEnvPrefix(options.EnvPrefix)
		i.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	}
	if len(options.EnvBind) != 0 {
		_ = i.viper.BindEnv(options.EnvBind...)
	}
	if options.EnvAutomatic {
		i.viper.AutomaticEnv()
	}
	if options.Flags != nil {
		if err = i.viper.BindPFlags(options.Flags); err != nil {
			return fmt.Errorf("viper-provider: %w", err)
		}
		for name, key := range options.FlagKeys {
			if err = i.viper.BindPFlag(key, options.Flags.Lookup(name)); err != nil {
				return fmt.Errorf("viper-provider: flag %s: %w", name, err)
			}
		}
	}

	if err = i.viper.ReadInConfig(); err != nil {
		return err
	}

	// goroutine will be spawned.
	if options.Watch {
		i.viper.WatchConfig()
	}

	return i.viper.Unmarshal(cfg, decodeHook(options))
}

// decodeHook composes the user defined hooks with the default ones.
func decodeHook(options Options) viper.DecoderConfigOption {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(options.DecodeHooks)+2)
	hooks = append(hooks, options.DecodeHooks...)
	hooks = append(hooks, mapstructure.StringToTimeDurationHookFunc(), mapstructure.StringToSliceHookFunc(","))
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(hooks...))
}

// getInstance returns the viper instance of the file. If it already exists, the cfg and options are replaced.
func getInstance(cfg interface{}, opt Options) (*instance, error) {
	name, err := filepath.Abs(filepath.Join(opt.FilePath, opt.FileName))
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(name); err != nil {
		return nil, err
	}

	instancesMu.Lock()
	defer instancesMu.Unlock()
	i, ok := instances[name]
	if !ok {
		i = &instance{name: name, viper: viper.New()}
		instances[name] = i
	}
	i.cfg = cfg
	i.options = opt
	return i, nil
}
