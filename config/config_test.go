// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/patrickascher/gofer-migrate/config"
	"github.com/patrickascher/gofer-migrate/config/mocks"
	"github.com/patrickascher/gofer-migrate/registry"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	asserts := assert.New(t)

	type Config struct {
		Generator string
	}
	cfg := Config{}
	options := "something"
	mockProvider := new(mocks.Interface)

	asserts.NoError(registry.Set("config-mock", mockProvider))
	asserts.NoError(registry.Set("config-err-interface", ""))

	// error: no config pointer
	err := config.Load("config-mock", cfg, options)
	asserts.Equal(config.ErrPointer, err)

	// error: wrong type
	err = config.Load("config-err-interface", &cfg, options)
	asserts.Equal(config.ErrInterface, err)

	// error: provider does not exist
	err = config.Load("config-not-existing", &cfg, options)
	asserts.Error(err)
	asserts.NotNil(errors.Unwrap(err))

	// error: provider error
	mockProvider.On("Parse", &cfg, options).Once().Return(errors.New("an error"))
	err = config.Load("config-mock", &cfg, options)
	asserts.Equal(errors.New("an error"), err)

	// ok
	mockProvider.On("Parse", &cfg, options).Once().Return(nil)
	err = config.Load("config-mock", &cfg, options)
	asserts.NoError(err)

	mockProvider.AssertExpectations(t)
}

func TestValidate(t *testing.T) {
	asserts := assert.New(t)

	type Processor struct {
		Driver             string `validate:"omitempty,oneof=mysql pgx"`
		MaxOpenConnections int    `validate:"gte=0"`
	}
	type Config struct {
		Generator string
		Processor Processor
	}

	// ok
	asserts.NoError(config.Validate(&Config{}))
	asserts.NoError(config.Validate(&Config{Processor: Processor{Driver: "pgx", MaxOpenConnections: 5}}))

	// error: rule
	err := config.Validate(&Config{Processor: Processor{Driver: "oracle"}})
	asserts.Equal(fmt.Sprintf(config.ErrValidate, "Config.Processor.Driver", "oneof"), err.Error())
	err = config.Validate(&Config{Processor: Processor{MaxOpenConnections: -1}})
	asserts.Equal(fmt.Sprintf(config.ErrValidate, "Config.Processor.MaxOpenConnections", "gte"), err.Error())

	// error: no struct
	asserts.Error(config.Validate("string"))

	// the loaded config is validated.
	mockProvider := new(mocks.Interface)
	asserts.NoError(registry.Set("config-mock-validate", mockProvider))
	cfg := Config{Processor: Processor{Driver: "oracle"}}
	mockProvider.On("Parse", &cfg, nil).Once().Return(nil)
	err = config.Load("config-mock-validate", &cfg, nil)
	asserts.Equal(fmt.Sprintf(config.ErrValidate, "Config.Processor.Driver", "oneof"), err.Error())
	mockProvider.AssertExpectations(t)
}
