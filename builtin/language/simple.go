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
package language

import (
	"errors"
	"strings"

	"github.com/rulego/routedsl/utils/el"
)

// Simple is the placeholder language: literal text with ${...} functions, such as
// `${header.foo} == 'bar'`.
type Simple struct {
}

func (l *Simple) Name() string {
	return "simple"
}

// Validate checks that every ${...} function is closed and compiles as an expr-lang
// expression.
func (l *Simple) Validate(text string, predicate bool) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("simple expression can not be empty")
	}
	_, err := el.NewMixedTemplate(text)
	return err
}

// Constant is a literal value. Any text is valid.
type Constant struct {
}

func (l *Constant) Name() string {
	return "constant"
}

func (l *Constant) Validate(text string, predicate bool) error {
	return nil
}

// Header reads a message header by name.
type Header struct {
}

func (l *Header) Name() string {
	return "header"
}

func (l *Header) Validate(text string, predicate bool) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("header name can not be empty")
	}
	return nil
}
