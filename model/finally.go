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

// FinallyDefinition runs after the try block completes, whether normally or through
// a doCatch clause.
// FinallyDefinition 无论try块正常结束还是被捕获都会执行
type FinallyDefinition struct {
	withOutputs
}

// NewFinally creates an empty doFinally clause.
func NewFinally() *FinallyDefinition {
	d := &FinallyDefinition{}
	d.init(d)
	return d
}

func (d *FinallyDefinition) ShortName() string {
	return types.NodeFinally
}

func (d *FinallyDefinition) Label() string {
	return types.NodeFinally
}

func (d *FinallyDefinition) New() Definition {
	return NewFinally()
}

func (d *FinallyDefinition) validateParent(parent Container) error {
	return validateTryParent(types.NodeFinally, parent)
}

func (d *FinallyDefinition) labelHasName() {}
