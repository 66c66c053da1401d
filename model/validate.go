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
	"github.com/rulego/routedsl/api/types"
)

// ValidateDefinition fails the exchange with a validation error when its predicate
// does not hold.
// ValidateDefinition 校验节点，断言不成立时抛出校验错误
type ValidateDefinition struct {
	noOutputs
	expressionHolder
	// PredicateExceptionFactory 自定义校验错误工厂的引用
	PredicateExceptionFactory string
}

// NewValidate creates a validate node for predicate.
func NewValidate(predicate types.Expression) *ValidateDefinition {
	d := &ValidateDefinition{}
	d.init(d)
	d.SetExpressionValue(predicate)
	return d
}

func (d *ValidateDefinition) ShortName() string {
	return types.NodeValidate
}

func (d *ValidateDefinition) New() Definition {
	return NewValidate(nil)
}
