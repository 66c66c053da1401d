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

// Walk visits every node below c in depth-first pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(c Container, fn func(d Definition) bool) {
	for _, out := range c.Outputs() {
		if fn(out) {
			Walk(out, fn)
		}
	}
}

// FilterTypeInOutputs returns every node of type T below outputs, in depth-first
// order.
func FilterTypeInOutputs[T Definition](outputs []Definition) []T {
	var result []T
	for _, out := range outputs {
		if t, ok := out.(T); ok {
			result = append(result, t)
		}
		result = append(result, FilterTypeInOutputs[T](out.Outputs())...)
	}
	return result
}

// FindFirstParentOfType returns the closest ancestor of d of type T.
func FindFirstParentOfType[T Container](d Definition) (T, bool) {
	var zero T
	c := d.Parent()
	for c != nil {
		if t, ok := c.(T); ok {
			return t, true
		}
		def, ok := c.(Definition)
		if !ok {
			break
		}
		c = def.Parent()
	}
	return zero, false
}

// GetRoute returns the route owning d, nil when d is detached.
func GetRoute(d Definition) *RouteDefinition {
	return RouteOf(d)
}

// HasOutputs reports whether outputs contains a node, ignoring abstract ones when
// excludeAbstract is set.
func HasOutputs(outputs []Definition, excludeAbstract bool) bool {
	for _, out := range outputs {
		if !excludeAbstract || !out.IsAbstract() {
			return true
		}
	}
	return false
}

// GatherAllNodeIds returns the ids assigned to the input and every node of route,
// in depth-first order. Nodes without an id are skipped.
func GatherAllNodeIds(route *RouteDefinition) []string {
	var ids []string
	if in := route.GetInput(); in != nil && in.GetId() != "" {
		ids = append(ids, in.GetId())
	}
	Walk(route, func(d Definition) bool {
		if d.GetId() != "" {
			ids = append(ids, d.GetId())
		}
		return true
	})
	return ids
}

// GatherAllEndpointUris returns the uri of the input and every send node of route,
// without duplicates.
func GatherAllEndpointUris(route *RouteDefinition) []string {
	var uris []string
	seen := make(map[string]bool)
	add := func(uri string) {
		if uri != "" && !seen[uri] {
			seen[uri] = true
			uris = append(uris, uri)
		}
	}
	add(route.GetEndpointUri())
	Walk(route, func(d Definition) bool {
		if s, ok := d.(SendNode); ok {
			add(s.GetEndpointUri())
		}
		return true
	})
	return uris
}
