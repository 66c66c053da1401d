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

package engine

import (
	"github.com/rulego/routedsl/model"
	"github.com/rulego/routedsl/utils/pattern"
	"github.com/rulego/routedsl/utils/str"
)

// RouteFilter decides whether a route is kept.
type RouteFilter func(route *model.RouteDefinition) bool

// FilterByPattern returns a filter over the route id and the input endpoint uri.
// include and exclude are comma separated patterns, matched ignoring case by exact
// name, trailing wildcard or regular expression. Exclude patterns win. A route is
// included by default when no include pattern is given.
// FilterByPattern 根据包含、排除模式过滤路由，排除优先
func FilterByPattern(include, exclude string) RouteFilter {
	includes := str.SplitAndTrim(include, ",")
	excludes := str.SplitAndTrim(exclude, ",")
	return func(route *model.RouteDefinition) bool {
		id := route.GetId()
		uri := route.GetEndpointUri()
		for _, p := range excludes {
			if pattern.Match(id, p) || pattern.Match(uri, p) {
				return false
			}
		}
		if len(includes) == 0 {
			return true
		}
		for _, p := range includes {
			if pattern.Match(id, p) || pattern.Match(uri, p) {
				return true
			}
		}
		return false
	}
}
