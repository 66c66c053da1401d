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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	route, err := From("direct:start").
		Filter(Simple("true")).Id("f1").
		To("mock:a").Id("a").
		Loop(Constant("2")).
		To("mock:b").
		To("mock:a").
		End().
		End().
		Intercept().To("log:intercept").End().
		ToD("http:dynamic").
		Build()
	require.Nil(t, err)
	route.GetInput().SetId("from1")

	tos := FilterTypeInOutputs[*ToDefinition](route.Outputs())
	assert.Equal(t, 4, len(tos))

	loop := FilterTypeInOutputs[*LoopDefinition](route.Outputs())[0]
	b := loop.Outputs()[0]
	filter, ok := FindFirstParentOfType[*FilterDefinition](b)
	assert.True(t, ok)
	assert.Equal(t, "f1", filter.GetId())
	_, ok = FindFirstParentOfType[*TryDefinition](b)
	assert.False(t, ok)
	assert.Same(t, route, GetRoute(b))
	assert.Nil(t, GetRoute(NewTo("mock:x")))

	assert.Equal(t, []string{"from1", "f1", "a"}, GatherAllNodeIds(route))
	assert.Equal(t, []string{"direct:start", "mock:a", "mock:b", "log:intercept", "http:dynamic"}, GatherAllEndpointUris(route))

	var visited []string
	Walk(route, func(d Definition) bool {
		visited = append(visited, d.ShortName())
		return d.ShortName() != "loop"
	})
	assert.Equal(t, []string{"filter", "to", "loop", "intercept", "to", "toD"}, visited)

	assert.True(t, HasOutputs(route.Outputs(), true))
	assert.False(t, HasOutputs([]Definition{NewIntercept()}, true))
	assert.True(t, HasOutputs([]Definition{NewIntercept()}, false))
	assert.False(t, HasOutputs(nil, false))
}
