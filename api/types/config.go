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

package types

// Config defines the configuration shared by the route context, the prepare passes
// and the DSL converters.
type Config struct {
	// Logger is the logging interface, defaulting to `DefaultLogger()`.
	Logger Logger
	// NodeIdFactory generates ids for nodes without a custom id.
	// Defaults to the counter based factory of the engine package.
	NodeIdFactory NodeIdFactory
	// BeanRegistry resolves policy, route policy and error handler references.
	BeanRegistry BeanRegistry
	// Languages is the expression language catalogue used for syntax validation.
	// Defaults to the builtin languages.
	Languages LanguageRegistry
	// ErrorTypes resolves the error type names used by doCatch.
	ErrorTypes *ErrorTypeRegistry
	// Parser is the declarative DSL parser, defaulting to the JSON parser.
	Parser Parser
	// ValidateExpressions enables expression syntax checks during route preparation.
	ValidateExpressions bool
	// Properties are global properties in key-value format. They are used to resolve
	// {{name}} placeholders that a route template binding does not provide.
	Properties map[string]string
}

// NewConfig creates a new Config with default values and applies the provided options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		Logger:       DefaultLogger(),
		BeanRegistry: MapBeanRegistry{},
		ErrorTypes:   NewErrorTypeRegistry(),
		Properties:   make(map[string]string),
	}

	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}
