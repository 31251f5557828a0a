// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package viper

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

type processorCfg struct {
	Driver   string
	DSN      string
	Timeout  time.Duration
	PreQuery []string
}

type migrateCfg struct {
	Generator string
	Processor processorCfg
}

func writeConfig(t *testing.T, dir string, generator string) {
	file, err := json.MarshalIndent(map[string]interface{}{
		"generator": generator,
		"processor": map[string]interface{}{
			"driver":   "sqlite",
			"dsn":      "file::memory:",
			"timeout":  "30s",
			"prequery": "PRAGMA foreign_keys = ON,PRAGMA journal_mode = WAL",
		},
	}, "", " ")
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "migrate.json"), file, 0644))
}

func TestViperProvider_Options(t *testing.T) {
	asserts := assert.New(t)
	v := viperProvider{}
	c := migrateCfg{}

	asserts.Equal(ErrOptions, v.Parse(&c, ""))
	asserts.Equal(ErrMandatory, v.Parse(&c, Options{FilePath: "."}))
	asserts.Equal(ErrMandatory, v.Parse(&c, Options{FileName: "migrate.json", FilePath: "."}))

	// error: file does not exist
	err := v.Parse(&c, Options{FileName: "missing.json", FilePath: t.TempDir(), FileType: "json"})
	asserts.Error(err)
	asserts.Equal(fmt.Errorf("viper-provider: %w", errors.Unwrap(err)), err)
}

func TestViperProvider_Parse(t *testing.T) {
	asserts := assert.New(t)
	dir := t.TempDir()
	writeConfig(t, dir, "Postgres")

	v := viperProvider{}
	c := migrateCfg{}
	err := v.Parse(&c, Options{FileName: "migrate.json", FilePath: dir, FileType: "json"})
	asserts.NoError(err)
	asserts.Equal("Postgres", c.Generator)
	asserts.Equal("sqlite", c.Processor.Driver)
	asserts.Equal(30*time.Second, c.Processor.Timeout)
	asserts.Equal([]string{"PRAGMA foreign_keys = ON", "PRAGMA journal_mode = WAL"}, c.Processor.PreQuery)

	// the instance is reused and the cfg pointer replaced.
	c2 := migrateCfg{}
	err = v.Parse(&c2, Options{FileName: "migrate.json", FilePath: dir, FileType: "json"})
	asserts.NoError(err)
	name, _ := filepath.Abs(filepath.Join(dir, "migrate.json"))
	instancesMu.Lock()
	asserts.True(fmt.Sprintf("%p", &c2) == fmt.Sprintf("%p", instances[name].cfg))
	instancesMu.Unlock()
}

func TestViperProvider_FlagsAndEnv(t *testing.T) {
	asserts := assert.New(t)
	dir := t.TempDir()
	writeConfig(t, dir, "Postgres")

	flags := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flags.String("generator", "", "")
	asserts.NoError(flags.Set("generator", "SqlServer"))

	asserts.NoError(os.Setenv("MIGRATETEST_PROCESSOR_DSN", "file:test.db"))
	defer os.Unsetenv("MIGRATETEST_PROCESSOR_DSN")

	v := viperProvider{}
	c := migrateCfg{}
	err := v.Parse(&c, Options{FileName: "migrate.json", FilePath: dir, FileType: "json", Flags: flags, EnvPrefix: "migratetest", EnvAutomatic: true})
	asserts.NoError(err)
	asserts.Equal("SqlServer", c.Generator)
	asserts.Equal("file:test.db", c.Processor.DSN)
}

func TestViperProvider_FlagKeys(t *testing.T) {
	asserts := assert.New(t)
	dir := t.TempDir()
	writeConfig(t, dir, "Postgres")

	flags := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flags.String("dsn", "", "")
	flags.String("driver", "", "")
	asserts.NoError(flags.Parse([]string{"--dsn", "file:flag.db"}))

	v := viperProvider{}
	c := migrateCfg{}
	err := v.Parse(&c, Options{FileName: "migrate.json", FilePath: dir, FileType: "json", Flags: flags, FlagKeys: map[string]string{"dsn": "processor.dsn", "driver": "processor.driver"}})
	asserts.NoError(err)
	asserts.Equal("file:flag.db", c.Processor.DSN)
	// unchanged flags keep the file value.
	asserts.Equal("sqlite", c.Processor.Driver)

	// error: flag does not exist
	err = v.Parse(&c, Options{FileName: "migrate.json", FilePath: dir, FileType: "json", Flags: flags, FlagKeys: map[string]string{"missing": "processor.dsn"}})
	asserts.Error(err)
}

func TestViperProvider_Watch(t *testing.T) {
	asserts := assert.New(t)
	dir := t.TempDir()
	writeConfig(t, dir, "Postgres")

	called := make(chan struct{}, 10)
	v := viperProvider{}
	c := &migrateCfg{}
	err := v.Parse(c, Options{
		FileName:      "migrate.json",
		FilePath:      dir,
		FileType:      "json",
		Watch:         true,
		WatchCallback: func(interface{}, *viper.Viper, fsnotify.Event) { called <- struct{}{} },
	})
	asserts.NoError(err)
	asserts.Equal("Postgres", c.Generator)

	writeConfig(t, dir, "Mysql")
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("watch callback was not called")
	}
}
