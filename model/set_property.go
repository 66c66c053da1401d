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

// SetPropertyDefinition sets an exchange property to the value of its expression.
// SetPropertyDefinition 设置交换属性
type SetPropertyDefinition struct {
	noOutputs
	expressionHolder
	// Name 属性名称
	Name string
}

// NewSetProperty creates a setProperty node.
func NewSetProperty(name string, expression types.Expression) *SetPropertyDefinition {
	d := &SetPropertyDefinition{Name: name}
	d.init(d)
	d.SetExpressionValue(expression)
	return d
}

func (d *SetPropertyDefinition) ShortName() string {
	return types.NodeSetProperty
}

func (d *SetPropertyDefinition) Label() string {
	return types.NodeSetProperty + "[" + d.Name + "]"
}

func (d *SetPropertyDefinition) New() Definition {
	return NewSetProperty("", nil)
}

func (d *SetPropertyDefinition) labelHasName() {}
