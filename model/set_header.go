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

// SetHeaderDefinition sets a message header to the value of its expression.
// SetHeaderDefinition 设置消息头
type SetHeaderDefinition struct {
	noOutputs
	expressionHolder
	// Name 消息头名称
	Name string
}

// NewSetHeader creates a setHeader node.
func NewSetHeader(name string, expression types.Expression) *SetHeaderDefinition {
	d := &SetHeaderDefinition{Name: name}
	d.init(d)
	d.SetExpressionValue(expression)
	return d
}

func (d *SetHeaderDefinition) ShortName() string {
	return types.NodeSetHeader
}

func (d *SetHeaderDefinition) Label() string {
	return types.NodeSetHeader + "[" + d.Name + "]"
}

func (d *SetHeaderDefinition) New() Definition {
	return NewSetHeader("", nil)
}

func (d *SetHeaderDefinition) labelHasName() {}
