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
	"testing"

	"github.com/rulego/routedsl/model"
	"github.com/stretchr/testify/assert"
)

func newFilterRoute(id, uri string) *model.RouteDefinition {
	route := model.NewRouteFrom(uri)
	route.SetId(id)
	return route
}

func TestFilterByPattern(t *testing.T) {
	filter := FilterByPattern("foo*", "jms:*")
	assert.False(t, filter(newFilterRoute("fooBar", "jms:queue:x")))
	assert.True(t, filter(newFilterRoute("fooBar", "direct:x")))
	assert.False(t, filter(newFilterRoute("other", "direct:x")))

	tests := []struct {
		include string
		exclude string
		id      string
		uri     string
		want    bool
	}{
		{"", "", "any", "direct:x", true},
		{"", "other", "any", "direct:x", true},
		{"", "ANY", "any", "direct:x", false},
		{"direct:*", "", "any", "DIRECT:x", true},
		{"foo, bar", "", "bar", "direct:x", true},
		{"route\\d+", "", "route42", "direct:x", true},
		{"route\\d+", "", "routeX", "direct:x", false},
		{"*", "seda:*", "a", "seda:b", false},
		{"[invalid", "", "a", "direct:x", false},
	}
	for _, tt := range tests {
		t.Run(tt.include+"|"+tt.exclude+"|"+tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByPattern(tt.include, tt.exclude)(newFilterRoute(tt.id, tt.uri)))
		})
	}
}
