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

// Option is a function type that modifies the Config.
type Option func(*Config) error

// WithLogger is an option that sets the logger of the Config.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithNodeIdFactory is an option that sets the node id factory of the Config.
func WithNodeIdFactory(factory NodeIdFactory) Option {
	return func(c *Config) error {
		c.NodeIdFactory = factory
		return nil
	}
}

// WithBeanRegistry is an option that sets the bean registry of the Config.
func WithBeanRegistry(registry BeanRegistry) Option {
	return func(c *Config) error {
		c.BeanRegistry = registry
		return nil
	}
}

// WithLanguages is an option that sets the expression language catalogue of the Config.
func WithLanguages(languages LanguageRegistry) Option {
	return func(c *Config) error {
		c.Languages = languages
		return nil
	}
}

// WithErrorTypes is an option that sets the error type registry of the Config.
func WithErrorTypes(errorTypes *ErrorTypeRegistry) Option {
	return func(c *Config) error {
		c.ErrorTypes = errorTypes
		return nil
	}
}

// WithParser is an option that sets the parser of the Config.
func WithParser(parser Parser) Option {
	return func(c *Config) error {
		c.Parser = parser
		return nil
	}
}

// WithValidateExpressions enables or disables expression syntax validation.
func WithValidateExpressions(validate bool) Option {
	return func(c *Config) error {
		c.ValidateExpressions = validate
		return nil
	}
}

// WithProperties is an option that merges global properties into the Config.
func WithProperties(properties map[string]string) Option {
	return func(c *Config) error {
		if c.Properties == nil {
			c.Properties = make(map[string]string)
		}
		for k, v := range properties {
			c.Properties[k] = v
		}
		return nil
	}
}
