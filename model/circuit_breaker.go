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
package model

import (
	"fmt"

	"github.com/rulego/routedsl/api/types"
)

// CircuitBreakerDefinition protects its outputs with a circuit breaker. An optional
// onFallback clause, which must be the last output, runs when the circuit is open
// or the protected outputs fail.
// CircuitBreakerDefinition 断路器，可选的onFallback必须是最后一个子节点
type CircuitBreakerDefinition struct {
	withOutputs
	// ConfigurationRef 断路器配置的引用
	ConfigurationRef string
}

// NewCircuitBreaker creates an empty circuit breaker.
func NewCircuitBreaker() *CircuitBreakerDefinition {
	d := &CircuitBreakerDefinition{}
	d.init(d)
	return d
}

func (d *CircuitBreakerDefinition) ShortName() string {
	return types.NodeCircuitBreaker
}

func (d *CircuitBreakerDefinition) Label() string {
	return types.NodeCircuitBreaker
}

func (d *CircuitBreakerDefinition) New() Definition {
	return NewCircuitBreaker()
}

func (d *CircuitBreakerDefinition) IsWrappingEntireOutput() bool {
	return true
}

// OnFallback returns the fallback clause, nil if there is none.
func (d *CircuitBreakerDefinition) OnFallback() *OnFallbackDefinition {
	for _, out := range d.outputs {
		if f, ok := out.(*OnFallbackDefinition); ok {
			return f
		}
	}
	return nil
}

func (d *CircuitBreakerDefinition) validateOutput(current []Definition, out Definition) error {
	for _, o := range current {
		if _, ok := o.(*OnFallbackDefinition); ok {
			if _, isFallback := out.(*OnFallbackDefinition); isFallback {
				return types.ErrDuplicateFallback
			}
			return fmt.Errorf("%w. node=%s", types.ErrFallbackMustBeLast, String(out))
		}
	}
	return nil
}

func (d *CircuitBreakerDefinition) labelHasName() {}
