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

// WhenDefinition is a guard owning the outputs that run when its predicate holds.
// It is used as the leading guard of interceptors.
// WhenDefinition 条件分支，断言成立时执行子节点
type WhenDefinition struct {
	withOutputs
	expressionHolder
}

// NewWhen creates a guard for predicate.
func NewWhen(predicate types.Expression) *WhenDefinition {
	d := &WhenDefinition{}
	d.init(d)
	d.SetExpressionValue(predicate)
	return d
}

func (d *WhenDefinition) ShortName() string {
	return types.NodeWhen
}

func (d *WhenDefinition) New() Definition {
	return NewWhen(nil)
}
