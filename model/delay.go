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
	"strconv"
	"time"

	"github.com/rulego/routedsl/api/types"
)

// DelayDefinition delays the exchange by the number of milliseconds its expression
// evaluates to.
// DelayDefinition 延迟节点，延迟时间(毫秒)由表达式计算
type DelayDefinition struct {
	noOutputs
	expressionHolder
	// AsyncDelayed 是否异步延迟
	AsyncDelayed types.OptionalBool
	// CallerRunsWhenRejected 线程池拒绝时是否由调用者执行
	CallerRunsWhenRejected types.OptionalBool
}

// NewDelay creates a delay computed by expression.
func NewDelay(expression types.Expression) *DelayDefinition {
	d := &DelayDefinition{}
	d.init(d)
	d.SetExpressionValue(expression)
	return d
}

// NewDelayOf creates a fixed delay.
func NewDelayOf(delay time.Duration) *DelayDefinition {
	return NewDelay(Constant(strconv.FormatInt(delay.Milliseconds(), 10)))
}

func (d *DelayDefinition) ShortName() string {
	return types.NodeDelay
}

func (d *DelayDefinition) New() Definition {
	return NewDelay(nil)
}
