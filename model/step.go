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

// StepDefinition groups outputs into a named step, reported as one unit in
// diagnostics.
type StepDefinition struct {
	withOutputs
}

// NewStep creates a step. id may be empty.
func NewStep(id string) *StepDefinition {
	d := &StepDefinition{}
	d.init(d)
	if id != "" {
		d.SetId(id)
	}
	return d
}

func (d *StepDefinition) ShortName() string {
	return types.NodeStep
}

func (d *StepDefinition) Label() string {
	return types.NodeStep
}

func (d *StepDefinition) New() Definition {
	return NewStep("")
}
