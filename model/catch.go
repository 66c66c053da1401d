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
	"strings"

	"github.com/rulego/routedsl/api/types"
)

// CatchDefinition handles the errors raised by the regular outputs of its try
// block. An error is caught when its type is one of the listed types, or a subtype
// of one, and the optional onWhen guard holds.
// CatchDefinition 捕获try块中的错误：错误类型匹配且onWhen条件成立时捕获
type CatchDefinition struct {
	withOutputs
	// exceptions 错误类型的限定名称，按声明顺序，允许重复
	exceptions []string
	// errorTypes 已解析的错误类型，与exceptions一一对应，可以为空
	errorTypes []*types.ErrorType
	onWhen     *ExpressionDefinition
}

// NewCatch creates a doCatch clause for the given error type names.
func NewCatch(exceptions ...string) *CatchDefinition {
	d := &CatchDefinition{}
	d.init(d)
	d.exceptions = append(d.exceptions, exceptions...)
	return d
}

// NewCatchTypes creates a doCatch clause for already resolved error types.
func NewCatchTypes(errorTypes ...*types.ErrorType) *CatchDefinition {
	d := NewCatch()
	d.ExceptionTypes(errorTypes...)
	return d
}

func (d *CatchDefinition) ShortName() string {
	return types.NodeCatch
}

func (d *CatchDefinition) Label() string {
	return types.NodeCatch + "[" + strings.Join(d.exceptions, ",") + "]"
}

func (d *CatchDefinition) New() Definition {
	return NewCatch()
}

// Exception appends error type names. Duplicates are kept.
func (d *CatchDefinition) Exception(names ...string) *CatchDefinition {
	d.syncErrorTypes()
	for _, name := range names {
		d.exceptions = append(d.exceptions, name)
		d.errorTypes = append(d.errorTypes, nil)
	}
	return d
}

// ExceptionTypes appends resolved error types and their names.
func (d *CatchDefinition) ExceptionTypes(errorTypes ...*types.ErrorType) *CatchDefinition {
	d.syncErrorTypes()
	for _, t := range errorTypes {
		if t == nil {
			continue
		}
		d.exceptions = append(d.exceptions, t.Name)
		d.errorTypes = append(d.errorTypes, t)
	}
	return d
}

// GetExceptions returns the error type names.
func (d *CatchDefinition) GetExceptions() []string {
	return d.exceptions
}

// GetErrorTypes returns the resolved error types, parallel to GetExceptions. It is
// empty until ExceptionTypes or ResolveErrorTypes ran.
func (d *CatchDefinition) GetErrorTypes() []*types.ErrorType {
	return d.errorTypes
}

// ResolveErrorTypes resolves every listed name against registry.
func (d *CatchDefinition) ResolveErrorTypes(registry *types.ErrorTypeRegistry) error {
	resolved := make([]*types.ErrorType, len(d.exceptions))
	for i, name := range d.exceptions {
		if i < len(d.errorTypes) && d.errorTypes[i] != nil {
			resolved[i] = d.errorTypes[i]
			continue
		}
		t, err := registry.Resolve(name)
		if err != nil {
			return err
		}
		resolved[i] = t
	}
	d.errorTypes = resolved
	return nil
}

// OnWhen installs the guard, replacing any previous one.
func (d *CatchDefinition) OnWhen(predicate types.Predicate) *CatchDefinition {
	if predicate == nil {
		d.onWhen = nil
		return d
	}
	d.onWhen = PredicateOf(predicate)
	return d
}

// SetOnWhen installs a guard given as an expression definition.
func (d *CatchDefinition) SetOnWhen(def *ExpressionDefinition) {
	d.onWhen = def
}

func (d *CatchDefinition) GetOnWhen() *ExpressionDefinition {
	return d.onWhen
}

// PrepareOnWhen resolves a deferred guard clause.
func (d *CatchDefinition) PrepareOnWhen() {
	if d.onWhen != nil {
		d.onWhen = d.onWhen.Prepare()
	}
}

// Matches reports whether this clause catches err. A guard that is only textual
// cannot be evaluated here and never matches.
func (d *CatchDefinition) Matches(err error, exchange types.Exchange) bool {
	if d.MatchingType(err) == "" {
		return false
	}
	if d.onWhen == nil {
		return true
	}
	matched, ok := d.onWhen.Evaluate(exchange)
	return ok && matched
}

// MatchingType returns the first listed type name that err is an instance of,
// ignoring the guard. It returns an empty string when no type matches.
func (d *CatchDefinition) MatchingType(err error) string {
	errorType, ok := types.ErrorTypeOf(err)
	if !ok {
		return ""
	}
	for i, name := range d.exceptions {
		if i < len(d.errorTypes) && d.errorTypes[i] != nil {
			if errorType.IsSubtypeOf(d.errorTypes[i]) {
				return name
			}
		} else if errorType.IsSubtypeOfName(name) {
			return name
		}
	}
	return ""
}

func (d *CatchDefinition) syncErrorTypes() {
	for len(d.errorTypes) < len(d.exceptions) {
		d.errorTypes = append(d.errorTypes, nil)
	}
}

func (d *CatchDefinition) validateParent(parent Container) error {
	return validateTryParent(types.NodeCatch, parent)
}

func (d *CatchDefinition) labelHasName() {}
