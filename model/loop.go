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

// LoopMode tells the runtime how to interpret the loop expression.
type LoopMode int

const (
	// LoopCount evaluates the expression once as an iteration count. A count of
	// zero or less runs no iteration.
	LoopCount LoopMode = iota
	// LoopWhile re-evaluates the expression as a predicate before every iteration.
	LoopWhile
)

func (m LoopMode) String() string {
	if m == LoopWhile {
		return "while"
	}
	return "count"
}

// LoopDefinition repeats its outputs. Copy and DoWhile are independent: every
// combination is valid and the runtime owns the iteration itself.
// LoopDefinition 循环节点，Copy与DoWhile两个标志相互独立
type LoopDefinition struct {
	withOutputs
	expressionHolder
	copy    types.OptionalBool
	doWhile types.OptionalBool
	// BreakOnShutdown 关闭时是否中断循环
	BreakOnShutdown types.OptionalBool
}

// NewLoop creates a count loop. It never turns on DoWhile.
func NewLoop(count types.Expression) *LoopDefinition {
	d := &LoopDefinition{}
	d.init(d)
	d.SetExpressionValue(count)
	return d
}

// NewLoopDoWhile creates a while loop. DoWhile is always true.
func NewLoopDoWhile(predicate types.Expression) *LoopDefinition {
	d := NewLoop(predicate)
	d.doWhile = types.True
	return d
}

func (d *LoopDefinition) ShortName() string {
	return types.NodeLoop
}

func (d *LoopDefinition) New() Definition {
	return NewLoop(nil)
}

// Copy makes every iteration work on a fresh copy of the input exchange.
func (d *LoopDefinition) Copy() *LoopDefinition {
	d.copy = types.True
	return d
}

func (d *LoopDefinition) GetCopy() types.OptionalBool {
	return d.copy
}

func (d *LoopDefinition) SetCopy(copy types.OptionalBool) {
	d.copy = copy
}

func (d *LoopDefinition) GetDoWhile() types.OptionalBool {
	return d.doWhile
}

func (d *LoopDefinition) SetDoWhile(doWhile types.OptionalBool) {
	d.doWhile = doWhile
}

// Mode returns LoopWhile when DoWhile is true, LoopCount otherwise.
func (d *LoopDefinition) Mode() LoopMode {
	if d.doWhile.Get(false) {
		return LoopWhile
	}
	return LoopCount
}

// IsCopy reports whether iterations work on copies; unset means false.
func (d *LoopDefinition) IsCopy() bool {
	return d.copy.Get(false)
}
