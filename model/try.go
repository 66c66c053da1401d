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
	"fmt"

	"github.com/rulego/routedsl/api/types"
)

// TryDefinition is a try block: regular outputs first, followed by any number of
// doCatch clauses and at most one doFinally, which must be last.
// TryDefinition try块，常规输出在前，随后是doCatch，最多一个doFinally且必须在最后
type TryDefinition struct {
	withOutputs
}

// NewTry creates an empty try block.
func NewTry() *TryDefinition {
	d := &TryDefinition{}
	d.init(d)
	return d
}

func (d *TryDefinition) ShortName() string {
	return types.NodeTry
}

func (d *TryDefinition) Label() string {
	return types.NodeTry
}

func (d *TryDefinition) New() Definition {
	return NewTry()
}

// CatchClauses returns the doCatch clauses in declaration order.
func (d *TryDefinition) CatchClauses() []*CatchDefinition {
	var result []*CatchDefinition
	for _, out := range d.outputs {
		if c, ok := out.(*CatchDefinition); ok {
			result = append(result, c)
		}
	}
	return result
}

// FinallyClause returns the doFinally clause, nil if there is none.
func (d *TryDefinition) FinallyClause() *FinallyDefinition {
	for _, out := range d.outputs {
		if f, ok := out.(*FinallyDefinition); ok {
			return f
		}
	}
	return nil
}

// OutputsWithoutCatches returns the regular outputs of the try block.
func (d *TryDefinition) OutputsWithoutCatches() []Definition {
	var result []Definition
	for _, out := range d.outputs {
		if !isTryClause(out) {
			result = append(result, out)
		}
	}
	return result
}

func (d *TryDefinition) validateOutput(current []Definition, out Definition) error {
	var hasCatch, hasFinally bool
	for _, o := range current {
		switch o.(type) {
		case *CatchDefinition:
			hasCatch = true
		case *FinallyDefinition:
			hasFinally = true
		}
	}
	switch out.(type) {
	case *FinallyDefinition:
		if hasFinally {
			return types.ErrDuplicateFinally
		}
	case *CatchDefinition:
		if hasFinally {
			return fmt.Errorf("%w. doCatch cannot follow doFinally", types.ErrFinallyMustBeLast)
		}
	default:
		if hasFinally {
			return fmt.Errorf("%w. node=%s", types.ErrFinallyMustBeLast, String(out))
		}
		if hasCatch {
			return fmt.Errorf("%w. node=%s cannot follow doCatch", types.ErrCatchOrder, String(out))
		}
	}
	return nil
}

func (d *TryDefinition) labelHasName() {}

func isTryClause(d Definition) bool {
	switch d.(type) {
	case *CatchDefinition, *FinallyDefinition:
		return true
	}
	return false
}

func validateTryParent(shortName string, parent Container) error {
	if _, ok := parent.(*TryDefinition); !ok {
		return fmt.Errorf("%w. %s must be a direct child of doTry", types.ErrInvalidParent, shortName)
	}
	return nil
}
