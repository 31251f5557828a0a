// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides a config manager for any type that implements the config.Interface.
// It will load the parsed values into a configuration struct.
//
// The viper provider supports JSON, TOML, YAML, HCL, INI, envfile and Java properties config files,
// environment variables and command line flags.
// After parsing, the struct is checked by its `validate` tags (go-playground/validator).
package config

import (
	"errors"
	"fmt"
	"reflect"

	valid "github.com/go-playground/validator/v10"
	"github.com/patrickascher/gofer-migrate/registry"
)

// all pre-defined providers.
const (
	VIPER = "config_viper"
)

// Error messages
var (
	ErrInterface = errors.New("config: the type does not implement config.Interface")
	ErrPointer   = errors.New("config: the config argument must be a ptr")
	ErrValidate  = "config: %s failed on the %#v rule"
)

var validate = valid.New()

// Interface for the config provider.
type Interface interface {
	Parse(config interface{}, options interface{}) error
}

// Load a configuration by provider and options.
// The cfg must be a ptr to the configuration struct.
// Error will return if the cfg is no ptr, the provider is unknown or any parsing errors.
func Load(provider string, cfg interface{}, options interface{}) error {
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		return ErrPointer
	}

	instance, err := registry.Get(provider)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	p, ok := instance.(Interface)
	if !ok {
		return ErrInterface
	}
	if err = p.Parse(cfg, options); err != nil {
		return err
	}
	return Validate(cfg)
}

// Validate checks the `validate` tags of the configuration struct.
// Only the first failing field is reported.
func Validate(cfg interface{}) error {
	err := validate.Struct(cfg)
	var vErrs valid.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return fmt.Errorf(ErrValidate, vErrs[0].Namespace(), vErrs[0].Tag())
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
