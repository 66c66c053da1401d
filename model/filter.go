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

// FilterDefinition routes the exchange to its outputs only when the predicate holds.
// FilterDefinition 过滤器，断言成立时才执行子节点
type FilterDefinition struct {
	withOutputs
	expressionHolder
	// StatusPropertyName 记录过滤结果的交换属性名称
	StatusPropertyName string
}

// NewFilter creates a filter for predicate. predicate may be an
// *ExpressionDefinition, an *ExpressionClause or any types.Predicate.
func NewFilter(predicate types.Expression) *FilterDefinition {
	d := &FilterDefinition{}
	d.init(d)
	d.SetExpressionValue(predicate)
	return d
}

func (d *FilterDefinition) ShortName() string {
	return types.NodeFilter
}

func (d *FilterDefinition) New() Definition {
	return NewFilter(nil)
}
