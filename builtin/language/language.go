/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
// Package language provides the expression languages known to the route context.
// They only check that expression text compiles; evaluation belongs to the
// runtime.
//
// Package language 提供路由上下文已知的表达式语言，只做语法检查，求值由运行时负责。
package language

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rulego/routedsl/api/types"
)

var (
	_ types.LanguageRegistry = (*Registry)(nil)
)

// Builtins is the default language catalogue.
var Builtins = NewRegistry()

// NewRegistry creates a catalogue holding the builtin languages.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, l := range []types.Language{&Expr{}, &JavaScript{}, &Simple{}, &Constant{}, &Header{}} {
		_ = r.Register(l)
	}
	return r
}

// Registry is a types.LanguageRegistry safe for concurrent use.
type Registry struct {
	languages map[string]types.Language
	lock      sync.RWMutex
}

// Register adds or replaces a language.
func (r *Registry) Register(language types.Language) error {
	if language == nil || language.Name() == "" {
		return fmt.Errorf("language name can not be empty")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.languages == nil {
		r.languages = make(map[string]types.Language)
	}
	r.languages[language.Name()] = language
	return nil
}

// Unregister removes languages by name.
func (r *Registry) Unregister(names ...string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, name := range names {
		delete(r.languages, name)
	}
}

func (r *Registry) Get(name string) (types.Language, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	l, ok := r.languages[name]
	return l, ok
}

func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	var names []string
	for name := range r.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks text with the named language.
func Validate(registry types.LanguageRegistry, name, text string, predicate bool) error {
	l, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("%w. language=%s", types.ErrLanguageNotFound, name)
	}
	if err := l.Validate(text, predicate); err != nil {
		return fmt.Errorf("%w. language=%s expression=%s: %v", types.ErrInvalidExpression, name, text, err)
	}
	return nil
}
