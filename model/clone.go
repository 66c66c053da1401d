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
	"reflect"

	"github.com/rulego/routedsl/api/types"
)

// outputsHolder gives Clone access to the children of container variants.
type outputsHolder interface {
	outputsRef() *[]Definition
}

func (n *withOutputs) outputsRef() *[]Definition {
	return &n.outputs
}

type expressionCloner interface {
	cloneExpression()
}

func (h *expressionHolder) cloneExpression() {
	if h.expression != nil {
		e := *h.expression
		h.expression = &e
	}
}

type fieldCloner interface {
	cloneFields()
}

func (d *CatchDefinition) cloneFields() {
	d.exceptions = append([]string(nil), d.exceptions...)
	d.errorTypes = append([]*types.ErrorType(nil), d.errorTypes...)
	if d.onWhen != nil {
		e := *d.onWhen
		d.onWhen = &e
	}
}

// Clone returns a detached deep copy of d and its descendants. Ids, flags and
// expression definitions are copied; expression, predicate, endpoint and policy
// instances are shared with the original.
// Clone 深拷贝节点及其子节点
func Clone(d Definition) Definition {
	if isNil(d) {
		return nil
	}
	v := reflect.ValueOf(d).Elem()
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	c := cp.Interface().(Definition)

	n := c.node()
	n.init(c)
	n.parent = nil
	if e, ok := c.(expressionCloner); ok {
		e.cloneExpression()
	}
	if f, ok := c.(fieldCloner); ok {
		f.cloneFields()
	}
	if h, ok := c.(outputsHolder); ok {
		outputs := h.outputsRef()
		children := *outputs
		*outputs = nil
		for _, child := range children {
			cc := Clone(child)
			*outputs = append(*outputs, cc)
			cc.node().parent = c
		}
	}
	return c
}

// CloneOutputs clones every node of outputs.
func CloneOutputs(outputs []Definition) []Definition {
	var result []Definition
	for _, out := range outputs {
		result = append(result, Clone(out))
	}
	return result
}
