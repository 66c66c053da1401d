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
	"errors"
	"strings"
	"testing"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteContext(t *testing.T) {
	ctx := NewRouteContext(testConfig())
	a := mustBuild(t, model.From("direct:a").RouteId("a").To("mock:a"))
	b := mustBuild(t, model.From("jms:b").To("mock:b"))
	require.Nil(t, ctx.AddRouteDefinitions(a, b))
	assert.True(t, a.IsPrepared())
	assert.Equal(t, "route1", b.GetId())

	route, err := ctx.RouteDefinition("a")
	require.Nil(t, err)
	assert.Equal(t, a, route)
	assert.Equal(t, []*model.RouteDefinition{a, b}, ctx.RouteDefinitions())

	_, err = ctx.RouteDefinition("none")
	assert.True(t, errors.Is(err, types.ErrRouteNotFound))

	err = ctx.AddRouteDefinition(mustBuild(t, model.From("direct:c").RouteId("a").To("mock:c")))
	assert.True(t, errors.Is(err, types.ErrDuplicateRoute))

	err = ctx.AddRouteDefinitions(
		mustBuild(t, model.From("direct:d").RouteId("d").To("mock:d")),
		mustBuild(t, model.From("direct:d").RouteId("d").To("mock:d")),
	)
	assert.True(t, errors.Is(err, types.ErrDuplicateRoute))

	// nothing is registered when one route fails
	err = ctx.AddRouteDefinitions(
		mustBuild(t, model.From("direct:e").RouteId("e").To("mock:e")),
		model.NewRouteFrom("direct:f"),
	)
	assert.True(t, errors.Is(err, types.ErrRouteNoOutput))
	_, err = ctx.RouteDefinition("e")
	assert.True(t, errors.Is(err, types.ErrRouteNotFound))

	require.Nil(t, ctx.AddRouteDefinition(mustBuild(t, model.From("direct:g").RouteId("g").To("mock:g").Id("send"))))
	err = ctx.AddRouteDefinition(mustBuild(t, model.From("direct:h").RouteId("h").To("mock:h").Id("send")))
	assert.True(t, errors.Is(err, types.ErrDuplicateId))
	_, err = ctx.RouteDefinition("h")
	assert.NotNil(t, err)

	assert.Equal(t, []string{"a", "g"}, routeIds(ctx.FilterRoutes("direct:*", "")))
	assert.Equal(t, []string{"route1"}, routeIds(ctx.FilterRoutes("", "a,g")))

	require.Nil(t, ctx.RemoveRouteDefinition("a"))
	assert.True(t, errors.Is(ctx.RemoveRouteDefinition("a"), types.ErrRouteNotFound))
	assert.Equal(t, []string{"route1", "g"}, routeIds(ctx.RouteDefinitions()))

	assert.True(t, errors.Is(ctx.AddRouteDefinition(nil), types.ErrNodeNil))
}

func routeIds(routes []*model.RouteDefinition) []string {
	var ids []string
	for _, route := range routes {
		ids = append(ids, route.GetId())
	}
	return ids
}

func TestRouteContextFilter(t *testing.T) {
	ctx := NewRouteContext(testConfig())
	ctx.SetRouteFilter(FilterByPattern("", "skip*"))
	require.Nil(t, ctx.AddRouteDefinitions(
		mustBuild(t, model.From("direct:a").RouteId("keep").To("mock:a")),
		mustBuild(t, model.From("direct:b").RouteId("skipMe").To("mock:b")),
	))
	assert.Equal(t, []string{"keep"}, routeIds(ctx.RouteDefinitions()))
}

func TestRouteTemplates(t *testing.T) {
	ctx := NewRouteContext(testConfig())
	template, err := model.RouteTemplate("tpl").From("direct:{{name}}").
		TemplateParameter("name").
		TemplateOptionalParameter("target", "mock:out").
		To("{{target}}").
		BuildTemplate()
	require.Nil(t, err)
	require.Nil(t, ctx.AddRouteTemplateDefinitions(template))

	found, err := ctx.RouteTemplateDefinition("tpl")
	require.Nil(t, err)
	assert.Equal(t, template, found)
	assert.Equal(t, []*model.RouteTemplateDefinition{template}, ctx.RouteTemplateDefinitions())

	assert.True(t, errors.Is(ctx.AddRouteTemplateDefinitions(template), types.ErrDuplicateTemplate))
	assert.NotNil(t, ctx.AddRouteTemplateDefinitions(model.NewRouteTemplate("")))
	_, err = ctx.RouteTemplateDefinition("none")
	assert.True(t, errors.Is(err, types.ErrTemplateNotFound))

	_, err = ctx.AddRouteFromTemplate("r", "none", nil)
	assert.True(t, errors.Is(err, types.ErrTemplateNotFound))

	_, err = ctx.AddRouteFromTemplate("r", "tpl", nil)
	assert.True(t, errors.Is(err, types.ErrMissingParameter))
	assert.True(t, strings.Contains(err.Error(), "Route template tpl the following mandatory parameters must be provided: name"))

	route, err := ctx.AddRouteFromTemplate("r1", "tpl", map[string]string{"name": "a"})
	require.Nil(t, err)
	assert.Equal(t, "r1", route.GetId())
	assert.Equal(t, "direct:a", route.GetEndpointUri())
	assert.Equal(t, map[string]string{"name": "a", "target": "mock:out"}, route.TemplateParameters)
	assert.Equal(t, "tpl", route.Properties[PropertyTemplateId])
	assert.Equal(t, "direct:{{name}}", template.GetEndpointUri())
	// outputs are shared with the template
	assert.True(t, route.Outputs()[0] == template.Outputs()[0])

	generated, err := ctx.AddRouteFromTemplate("", "tpl", map[string]string{"name": "b"})
	require.Nil(t, err)
	assert.NotEqual(t, "", generated.GetId())
	assert.False(t, generated.HasCustomId())

	require.Nil(t, ctx.RemoveRouteTemplateDefinition("tpl"))
	assert.True(t, errors.Is(ctx.RemoveRouteTemplateDefinition("tpl"), types.ErrTemplateNotFound))
	_, err = ctx.RouteDefinition("r1")
	assert.Nil(t, err)
}

func TestTemplatedRouteFreeze(t *testing.T) {
	ctx := NewRouteContext(testConfig())
	template, err := model.RouteTemplate("T3").From("direct:{{name}}").
		TemplateParameter("name").
		Filter(model.Expr("msg.a > 1")).To("mock:a").End().
		To("mock:b").
		BuildTemplate()
	require.Nil(t, err)
	require.Nil(t, ctx.AddRouteTemplateDefinitions(template))

	route, err := ctx.AddRouteFromTemplate("r3", "T3", map[string]string{"name": "a"})
	require.Nil(t, err)
	assert.Same(t, template, route.SharedTemplate())
	route.Freeze()
	filter := route.Outputs()[0]
	assert.True(t, errors.Is(filter.AddOutput(model.NewTo("mock:late")), types.ErrFrozen))
	assert.Equal(t, 1, len(filter.Outputs()))
	assert.True(t, template.IsFrozen())

	sibling, err := ctx.AddRouteFromTemplate("r4", "T3", map[string]string{"name": "b"})
	require.Nil(t, err)
	assert.Equal(t, route.Outputs(), sibling.Outputs())
	assert.Equal(t, "direct:b", sibling.GetEndpointUri())
	assert.False(t, sibling.IsFrozen())
	require.Nil(t, sibling.AddOutput(model.NewTo("mock:c")))
	assert.Equal(t, 2, len(template.Outputs()))
	assert.Equal(t, 2, len(route.Outputs()))

	copied, err := ctx.AddTemplatedRoute(TemplatedRoute{
		RouteId:     "r5",
		TemplateId:  "T3",
		Parameters:  map[string]string{"name": "c"},
		CopyOutputs: true,
	})
	require.Nil(t, err)
	assert.Nil(t, copied.SharedTemplate())
	require.Nil(t, copied.Outputs()[0].AddOutput(model.NewTo("mock:d")))
	assert.Equal(t, 1, len(filter.Outputs()))
}

func TestTemplatedRouteCopyOutputs(t *testing.T) {
	ctx := NewRouteContext(testConfig(types.WithProperties(map[string]string{"queue": "global", "env": "prod"})))
	require.Nil(t, ctx.LoadRoutes([]byte(routesFile)))
	template, err := ctx.RouteTemplateDefinition("orderTemplate")
	require.Nil(t, err)

	route, err := ctx.AddTemplatedRoute(TemplatedRoute{
		RouteId:     "{{queue}}-{{env}}",
		TemplateId:  "orderTemplate",
		Parameters:  map[string]string{"queue": "north", "threshold": "5"},
		Prefix:      "n-",
		CopyOutputs: true,
	})
	require.Nil(t, err)
	assert.Equal(t, "north-prod", route.GetId())
	assert.Equal(t, "jms:north", route.GetEndpointUri())
	assert.Equal(t, "orders from north", route.Description)

	filter := route.Outputs()[0].(*model.FilterDefinition)
	assert.False(t, filter == template.Outputs()[0])
	assert.Equal(t, "n-big", filter.GetId())
	assert.Equal(t, "msg.amount > 5", filter.GetExpression().Text)
	assert.Equal(t, "to[mock:north]", model.String(filter.Outputs()[0]))
	assert.True(t, strings.HasPrefix(filter.Outputs()[0].GetId(), "n-"))

	// the template is left untouched
	tf := template.Outputs()[0].(*model.FilterDefinition)
	assert.Equal(t, "big", tf.GetId())
	assert.Equal(t, "msg.amount > {{threshold}}", tf.GetExpression().Text)
	assert.Equal(t, model.Container(tf), tf.Outputs()[0].Parent())

	// parameters fall back to the global properties
	global, err := ctx.AddTemplatedRoute(TemplatedRoute{TemplateId: "orderTemplate", CopyOutputs: true})
	require.Nil(t, err)
	assert.Equal(t, "jms:global", global.GetEndpointUri())
	assert.Equal(t, "100", global.TemplateParameters["threshold"])
	_, ok := global.TemplateParameters["region"]
	assert.False(t, ok)
}

func TestLoadAndDumpRoutes(t *testing.T) {
	ctx := NewRouteContext(testConfig())
	require.Nil(t, ctx.LoadRoutes([]byte(routesFile)))
	route, err := ctx.RouteDefinition("orders")
	require.Nil(t, err)
	assert.True(t, route.IsPrepared())
	intercept := route.Outputs()[0].(*model.InterceptDefinition)
	assert.Equal(t, 1, len(intercept.Outputs()))
	assert.Equal(t, 1, len(intercept.GetWhen().Outputs()))

	// loading the dump into a new context gives the same routes
	data, err := ctx.DumpRoutes()
	require.Nil(t, err)
	other := NewRouteContext(testConfig())
	require.Nil(t, other.LoadRoutes(data))
	assert.Equal(t, routeIds(ctx.RouteDefinitions()), routeIds(other.RouteDefinitions()))
	again, err := other.RouteDefinition("orders")
	require.Nil(t, err)
	assert.Equal(t, route.String(), again.String())

	_, err = ctx.AddRouteFromTemplate("east", "orderTemplate", map[string]string{"queue": "east"})
	require.Nil(t, err)
	// a node with a custom id shared through the template is not a duplicate
	_, err = ctx.AddRouteFromTemplate("west", "orderTemplate", map[string]string{"queue": "west"})
	require.Nil(t, err)

	data, err = ctx.DumpRoutes()
	require.Nil(t, err)
	def, err := (&JsonParser{}).DecodeRoutes(data)
	require.Nil(t, err)
	assert.Equal(t, 3, len(def.Routes))
	assert.Equal(t, 1, len(def.RouteTemplates))
	assert.Equal(t, "west", def.Routes[2].Id)
	assert.Equal(t, "jms:west", def.Routes[2].From.Configuration[KeyUri])

	assert.True(t, errors.Is(ctx.LoadRoutes(nil), types.ErrDslEmpty))
	assert.NotNil(t, ctx.LoadRoutes([]byte(routesFile)))

	yamlCtx := NewRouteContext(testConfig(types.WithParser(&YamlParser{})))
	require.Nil(t, yamlCtx.LoadRoutes([]byte(routesYaml)))
	_, err = yamlCtx.RouteDefinition("greetings")
	assert.Nil(t, err)
}
