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

// TransformDefinition replaces the message body with the value of its expression.
// TransformDefinition 使用表达式结果替换消息体
type TransformDefinition struct {
	noOutputs
	expressionHolder
	// FromType 转换前的数据类型
	FromType string
	// ToType 转换后的数据类型
	ToType string
}

// NewTransform creates a transform computing the new body with expression.
func NewTransform(expression types.Expression) *TransformDefinition {
	d := &TransformDefinition{}
	d.init(d)
	d.SetExpressionValue(expression)
	return d
}

func (d *TransformDefinition) ShortName() string {
	return types.NodeTransform
}

func (d *TransformDefinition) New() Definition {
	return NewTransform(nil)
}
