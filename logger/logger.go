// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logger provides an interface for logging. It wraps existing go loggers with that interface,
// so the log provider can be changed without touching the generator, processor or cli code.
// Additionally log level, fields, time duration or caller information can be added.
package logger

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/patrickascher/gofer-migrate/registry"
)

// Error messages.
var (
	ErrProvider = errors.New("logger: provider does not implement logger.Manager")
	ErrLevel    = "logger: unknown level %#v"
)

// registryPrefix for the registry package.
const registryPrefix = "logger_"

// Level - the higher the more critical
const (
	TRACE Level = iota - 1
	DEBUG
	INFO
	WARNING
	ERROR
	PANIC
)

// Level of a log entry.
type Level int32

// String converts the level code.
func (lvl Level) String() string {
	switch lvl {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	default:
		return "unknown level"
	}
}

// ParseLevel converts a level name (case-insensitive) into a Level.
func ParseLevel(name string) (Level, error) {
	for lvl := TRACE; lvl <= PANIC; lvl++ {
		if strings.EqualFold(lvl.String(), name) {
			return lvl, nil
		}
	}
	return 0, fmt.Errorf(ErrLevel, name)
}

// Provider interface.
type Provider interface {
	Log(Entry)
}

// Manager interface.
type Manager interface {
	Trace(string)
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
	Panic(string)

	New() Manager
	WithFields(Fields) Manager
	WithTimer() Manager

	SetCallerFields(bool)
	SetLogLevel(Level)
}

// Fields can be used to add more details to a log message.
type Fields map[string]interface{}

// Map converts the Fields to a map[string]interface{}.
func (f Fields) Map() map[string]interface{} {
	return f
}

// Entry holds all information of a log message.
type Entry struct {
	Level     Level
	Timestamp time.Time
	Message   string
	Fields    Fields
}

// manager holds the provider and the fields.
// callerInfo adds the runtime.Caller file and line, timer is used for the duration field.
type manager struct {
	provider Provider
	fields   Fields

	callerInfo bool
	timer      time.Time
	lvl        Level
}

// Register a new logger provider by name.
func Register(name string, provider Provider) error {
	return registry.Set(registryPrefix+name, &manager{provider: provider})
}

// Get a logger by the registered name.
// Default log level is DEBUG.
func Get(name string) (Manager, error) {
	m, err := registry.Get(registryPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	// the value could have been set directly with registry.Set.
	if m, ok := m.(Manager); ok {
		return m, nil
	}
	return nil, ErrProvider
}

// SetCallerFields will add the fields "line" and "file" to the Entry.
func (m *manager) SetCallerFields(b bool) {
	m.callerInfo = b
}

// SetLogLevel will define the log level.
// Only messages equal or greater levels will be logged.
func (m *manager) SetLogLevel(lvl Level) {
	m.lvl = lvl
}

// New creates a new instance with the parents level, fields and caller setting.
func (m *manager) New() Manager {
	return &manager{lvl: m.lvl, provider: m.provider, fields: m.fields, callerInfo: m.callerInfo}
}

// WithTimer will add the field "duration" to the Entry.
// It will create a new instance.
func (m *manager) WithTimer() Manager {
	instance := m.New().(*manager)
	instance.timer = time.Now()
	return instance
}

// WithFields will create a new Manager with the given fields.
// An already running timer is kept.
func (m *manager) WithFields(fields Fields) Manager {
	instance := m.New().(*manager)
	instance.fields = fields
	if !m.timer.IsZero() {
		instance.timer = m.timer
	}
	return instance
}

// Trace log.
func (m *manager) Trace(msg string) { m.log(TRACE, msg) }

// Debug log.
func (m *manager) Debug(msg string) { m.log(DEBUG, msg) }

// Info log.
func (m *manager) Info(msg string) { m.log(INFO, msg) }

// Warning log.
func (m *manager) Warning(msg string) { m.log(WARNING, msg) }

// Error log.
func (m *manager) Error(msg string) { m.log(ERROR, msg) }

// Panic log.
func (m *manager) Panic(msg string) { m.log(PANIC, msg) }

func (m *manager) log(lvl Level, msg string) {
	if lvl >= m.lvl {
		m.provider.Log(m.newEntry(msg, lvl))
	}
}

// newEntry creates the Entry for the log provider.
func (m *manager) newEntry(msg string, lvl Level) Entry {
	e := Entry{Message: msg, Level: lvl, Timestamp: time.Now()}

	e.Fields = make(Fields, len(m.fields)+2)
	for k, v := range m.fields {
		e.Fields[k] = v
	}

	if !m.timer.IsZero() {
		e.Fields["duration"] = time.Since(m.timer)
	}

	if m.callerInfo {
		// skip newEntry, log and the level method.
		// file is empty and line is 0 if the information is not available.
		_, file, line, _ := runtime.Caller(3)
		e.Fields["line"] = line
		e.Fields["file"] = file
	}

	return e
}
