// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/patrickascher/gofer-migrate/logger"
	"github.com/patrickascher/gofer-migrate/registry"
	"golang.org/x/text/cases"
)

// registryPrefix for the registry package.
const registryPrefix = "generator_"

// nameSuffix is removed from the type name.
const nameSuffix = "Generator"

// Error messages.
var (
	ErrConstructor = errors.New("generator: value must be of type generator.Constructor")
	ErrBuilt       = errors.New("generator: registry is already built, register in an init function")
	// ErrOptions can be returned by a constructor if the generator needs options to be created.
	// The candidate is skipped.
	ErrOptions = errors.New("generator: generator can not be created without options")
)

// Constructor creates a generator candidate.
type Constructor func() (Generator, error)

var (
	mu      sync.Mutex
	once    sync.Once
	built   bool
	log     logger.Manager
	factory *registryFactory
)

func init() {
	err := registry.Validator(registry.Validate{Prefix: registryPrefix, Fn: func(name string, value interface{}) error {
		if _, ok := value.(Constructor); !ok {
			return ErrConstructor
		}
		return nil
	}})
	if err != nil {
		panic(err)
	}
}

// Register a generator candidate. The id only identifies the candidate, the lookup name
// is taken from the type of the created generator.
// Candidates must be registered before the first Lookup or Names call.
func Register(id string, fn Constructor) error {
	mu.Lock()
	defer mu.Unlock()
	if built {
		return ErrBuilt
	}
	return registry.Set(registryPrefix+id, fn)
}

// SetLogger is used to report skipped candidates while the registry is built.
func SetLogger(l logger.Manager) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Lookup returns the generator by name. The name is case-insensitive.
func Lookup(name string) (Generator, bool) {
	return instance().lookup(name)
}

// Names returns all available generator names in ascending order.
func Names() []string {
	names := instance().names
	rv := make([]string, len(names))
	copy(rv, names)
	return rv
}

// ListAvailable returns all names separated by comma.
func ListAvailable() string {
	return strings.Join(Names(), ", ")
}

// Name returns the type name of the generator without the "Generator" suffix.
func Name(g Generator) string {
	t := reflect.TypeOf(g)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.TrimSuffix(t.Name(), nameSuffix)
}

// instance builds the registry once.
func instance() *registryFactory {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		built = true

		candidates := make(map[string]Constructor)
		for id, fn := range registry.Prefix(registryPrefix) {
			candidates[strings.TrimPrefix(id, registryPrefix)] = fn.(Constructor)
		}
		factory = newFactory(candidates, log)
	})
	return factory
}

// registryFactory holds the generators by their case-folded name.
// exact holds them by their name, so a correctly spelled lookup does not fold.
type registryFactory struct {
	generators map[string]Generator
	exact      map[string]Generator
	names      []string
}

// newFactory creates all candidates in the order of their id.
// Candidates which return an error, have no type name or a duplicate name are skipped.
func newFactory(candidates map[string]Constructor, l logger.Manager) *registryFactory {
	f := &registryFactory{generators: make(map[string]Generator), exact: make(map[string]Generator)}

	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		g, err := candidates[id]()
		if err == nil && g == nil {
			err = ErrNoGenerator
		}
		if err != nil {
			warn(l, id, err.Error())
			continue
		}

		name := Name(g)
		if name == "" {
			warn(l, id, "generator has no type name")
			continue
		}
		key := fold(name)
		if _, exists := f.generators[key]; exists {
			warn(l, id, fmt.Sprintf("name %s is already taken", name))
			continue
		}
		f.generators[key] = g
		f.exact[name] = g
		f.names = append(f.names, name)
	}

	sort.Strings(f.names)
	return f
}

func (f *registryFactory) lookup(name string) (Generator, bool) {
	if g, ok := f.exact[name]; ok {
		return g, true
	}
	g, ok := f.generators[fold(name)]
	return g, ok
}

// fold returns the case-folded name.
// A cases.Caser keeps state and is not safe for concurrent use, so one is created per call.
func fold(name string) string {
	return cases.Fold().String(name)
}

func warn(l logger.Manager, id string, reason string) {
	if l == nil {
		return
	}
	l.WithFields(logger.Fields{"candidate": id}).Warning("generator: candidate skipped: " + reason)
}
