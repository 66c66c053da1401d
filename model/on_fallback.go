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

const onFallbackViaNetwork = "onFallbackViaNetwork"

// OnFallbackDefinition holds the outputs a circuit breaker runs as its fallback.
// FallbackViaNetwork only changes the label and the cost accounting of the
// runtime; unset means false.
// OnFallbackDefinition 断路器降级处理
type OnFallbackDefinition struct {
	withOutputs
	// FallbackViaNetwork 降级处理是否经过网络
	FallbackViaNetwork types.OptionalBool
}

// NewOnFallback creates an empty fallback.
func NewOnFallback() *OnFallbackDefinition {
	d := &OnFallbackDefinition{}
	d.init(d)
	return d
}

func (d *OnFallbackDefinition) ShortName() string {
	return types.NodeOnFallback
}

// Label renders onFallback[labels] or onFallbackViaNetwork[labels].
func (d *OnFallbackDefinition) Label() string {
	name := types.NodeOnFallback
	if d.FallbackViaNetwork.Get(false) {
		name = onFallbackViaNetwork
	}
	return name + "[" + labelOf(d.outputs) + "]"
}

func (d *OnFallbackDefinition) New() Definition {
	return NewOnFallback()
}

func (d *OnFallbackDefinition) validateParent(parent Container) error {
	if _, ok := parent.(*CircuitBreakerDefinition); !ok {
		return fmt.Errorf("%w. onFallback must be a direct child of circuitBreaker", types.ErrInvalidParent)
	}
	return nil
}

func (d *OnFallbackDefinition) labelHasName() {}
