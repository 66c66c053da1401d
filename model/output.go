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
	"reflect"

	"github.com/rulego/routedsl/api/types"
)

// outputValidator is implemented by containers that constrain the order or the
// kinds of their children. current is the list the output would be appended to.
type outputValidator interface {
	validateOutput(current []Definition, out Definition) error
}

// parentValidator is implemented by nodes that can only live in specific containers.
type parentValidator interface {
	validateParent(parent Container) error
}

func isNil(d Definition) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// RouteOf walks up the parents of c and returns the route owning it, nil when the
// subtree is detached.
func RouteOf(c Container) *RouteDefinition {
	for c != nil {
		switch v := c.(type) {
		case *RouteDefinition:
			return v
		case Definition:
			c = v.Parent()
		default:
			return nil
		}
	}
	return nil
}

func isFrozen(c Container) bool {
	r := RouteOf(c)
	return r != nil && r.frozen
}

// isAncestorOrSelf reports whether d is c or one of its ancestors.
func isAncestorOrSelf(d Definition, c Container) bool {
	for c != nil {
		cur, ok := c.(Definition)
		if !ok {
			return false
		}
		if cur == d {
			return true
		}
		c = cur.Parent()
	}
	return false
}

// checkAdd validates that out can be appended to current, owned by self. It has no
// side effects so a failed add leaves both trees untouched.
func checkAdd(self Container, current []Definition, out Definition, isRoute bool) error {
	if isNil(out) {
		return types.ErrNodeNil
	}
	if isFrozen(self) {
		return types.ErrFrozen
	}
	if p := out.Parent(); p != nil && p != self && isFrozen(p) {
		return types.ErrFrozen
	}
	if out.IsTopLevelOnly() && !isRoute {
		return fmt.Errorf("%w. Try moving %s to the top of route", types.ErrTopLevelOnly, String(out))
	}
	if v, ok := out.(parentValidator); ok {
		if err := v.validateParent(self); err != nil {
			return err
		}
	}
	if v, ok := self.(outputValidator); ok {
		if err := v.validateOutput(current, out); err != nil {
			return err
		}
	}
	if isAncestorOrSelf(out, self) {
		return fmt.Errorf("%w. node=%s", types.ErrCycle, String(out))
	}
	return nil
}

func addOutput(self Container, outputs *[]Definition, out Definition, isRoute bool) error {
	current := *outputs
	if !isNil(out) && out.Parent() != self && sharedOutputs(self, current)[out] {
		// a shared node moves to the end and stays with its owner
		if isFrozen(self) {
			return types.ErrFrozen
		}
		*outputs = append(without(current, out), out)
		return nil
	}
	if !isNil(out) && out.Parent() == self {
		// re-adding an existing child moves it to the end
		current = without(current, out)
	}
	if err := checkAdd(self, current, out, isRoute); err != nil {
		return err
	}
	detach(out)
	*outputs = append(*outputs, out)
	out.node().parent = self
	return nil
}

// detach removes out from its current parent, if any.
func detach(out Definition) {
	if p := out.Parent(); p != nil {
		p.RemoveOutput(out)
	}
	out.node().parent = nil
}

func removeOutput(self Container, outputs *[]Definition, out Definition) bool {
	if isNil(out) || isFrozen(self) {
		return false
	}
	for i, o := range *outputs {
		if o == out {
			*outputs = append((*outputs)[:i:i], (*outputs)[i+1:]...)
			if out.Parent() == self {
				out.node().parent = nil
			}
			return true
		}
	}
	return false
}

func clearOutputs(self Container, outputs *[]Definition) {
	if isFrozen(self) {
		return
	}
	for _, o := range *outputs {
		if o.Parent() == self {
			o.node().parent = nil
		}
	}
	*outputs = nil
}

func setOutputs(self Container, outputs *[]Definition, outs []Definition, isRoute bool) error {
	if isFrozen(self) {
		return types.ErrFrozen
	}
	shared := sharedOutputs(self, *outputs)
	seen := make(map[Definition]bool, len(outs))
	for i, out := range outs {
		if !isNil(out) && seen[out] {
			return fmt.Errorf("%w. node=%s is listed twice", types.ErrInvalidParent, String(out))
		}
		seen[out] = true
		if shared[out] {
			continue
		}
		if err := checkAdd(self, outs[:i], out, isRoute); err != nil {
			return err
		}
	}
	clearOutputs(self, outputs)
	for _, out := range outs {
		if shared[out] {
			// listed already, the owner keeps it
			*outputs = append(*outputs, out)
			continue
		}
		detach(out)
		*outputs = append(*outputs, out)
		out.node().parent = self
	}
	return nil
}

// sharedOutputs returns the nodes listed in outputs that are owned by another
// container, such as the nodes a route shares with its template.
func sharedOutputs(self Container, outputs []Definition) map[Definition]bool {
	var shared map[Definition]bool
	for _, out := range outputs {
		if p := out.Parent(); p != nil && p != self {
			if shared == nil {
				shared = make(map[Definition]bool)
			}
			shared[out] = true
		}
	}
	return shared
}

func without(list []Definition, d Definition) []Definition {
	var result []Definition
	for _, item := range list {
		if item != d {
			result = append(result, item)
		}
	}
	return result
}
