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
	"testing"
	"time"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDefinition(t *testing.T) {
	def, err := (&JsonParser{}).DecodeRoutes([]byte(routesFile))
	require.Nil(t, err)
	routes, templates, err := ToDefinition(def)
	require.Nil(t, err)
	require.Equal(t, 1, len(routes))
	require.Equal(t, 1, len(templates))

	route := routes[0]
	assert.Equal(t, "orders", route.GetId())
	assert.True(t, route.HasCustomId())
	assert.Equal(t, "sales", route.Group)
	assert.Equal(t, 500*time.Millisecond, route.Delayer)
	assert.False(t, route.IsAutoStartup())
	assert.Equal(t, "ops", route.Properties["owner"])
	assert.Equal(t, "direct:orders", route.GetEndpointUri())
	assert.Equal(t, "in", route.GetInput().GetId())

	outputs := route.Outputs()
	require.Equal(t, 5, len(outputs))

	intercept := outputs[0].(*model.InterceptDefinition)
	require.Equal(t, 2, len(intercept.Outputs()))
	when := intercept.GetWhen()
	require.NotNil(t, when)
	assert.Equal(t, model.LanguageSimple, when.GetExpression().Language)
	assert.Equal(t, "${header.trace}", when.GetExpression().Text)

	setHeader := outputs[1].(*model.SetHeaderDefinition)
	assert.Equal(t, "kind", setHeader.Name)
	assert.Equal(t, "constant{order}", setHeader.GetExpression().String())

	try := outputs[2].(*model.TryDefinition)
	assert.Equal(t, 1, len(try.OutputsWithoutCatches()))
	send := try.Outputs()[0].(*model.ToDefinition)
	assert.Equal(t, "send", send.GetId())
	assert.Equal(t, types.InOut, send.GetPattern())
	require.Equal(t, 1, len(try.CatchClauses()))
	catch := try.CatchClauses()[0]
	assert.Equal(t, []string{"java.io.IOException"}, catch.GetExceptions())
	assert.Equal(t, "expr{retries < 3}", catch.GetOnWhen().String())
	require.NotNil(t, try.FinallyClause())
	assert.Equal(t, "to[mock:done]", model.String(try.FinallyClause().Outputs()[0]))

	sample := outputs[3].(*model.SampleDefinition)
	assert.Equal(t, 2*time.Second, sample.GetSamplePeriod())

	loop := outputs[4].(*model.LoopDefinition)
	assert.Equal(t, types.True, loop.GetDisabled())
	assert.True(t, loop.IsCopy())
	assert.Equal(t, model.LoopCount, loop.Mode())

	template := templates[0]
	assert.Equal(t, "orderTemplate", template.GetId())
	assert.Equal(t, "queue,threshold,region", template.Parameters())
	params := template.GetTemplateParameters()
	assert.True(t, params[0].Required)
	assert.Equal(t, "100", params[1].DefaultValue)
	assert.False(t, params[2].Required)
	assert.Equal(t, "jms:{{queue}}", template.GetEndpointUri())
}

func TestToDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		def  types.RoutesDsl
		err  error
	}{
		{
			name: "unknownType",
			def: types.RoutesDsl{Routes: []types.RouteDsl{{
				Id:    "a",
				From:  &types.NodeDsl{Type: "from", Configuration: types.Configuration{KeyUri: "direct:a"}},
				Steps: []types.NodeDsl{{Type: "choice"}},
			}}},
			err: types.ErrNodeTypeNotFound,
		},
		{
			name: "inputType",
			def: types.RoutesDsl{Routes: []types.RouteDsl{{
				Id:   "a",
				From: &types.NodeDsl{Type: "to", Configuration: types.Configuration{KeyUri: "direct:a"}},
			}}},
			err: types.ErrInvalidParent,
		},
		{
			name: "leafOutputs",
			def: types.RoutesDsl{Routes: []types.RouteDsl{{
				Id: "a",
				Steps: []types.NodeDsl{{
					Type:    "to",
					Outputs: []types.NodeDsl{{Type: "to"}},
				}},
			}}},
			err: types.ErrOutputNotSupported,
		},
		{
			name: "catchOutsideTry",
			def: types.RoutesDsl{Routes: []types.RouteDsl{{
				Id:    "a",
				Steps: []types.NodeDsl{{Type: "doCatch"}},
			}}},
			err: types.ErrInvalidParent,
		},
		{
			name: "nestedIntercept",
			def: types.RoutesDsl{RouteTemplates: []types.RouteTemplateDsl{{RouteDsl: types.RouteDsl{
				Id: "t",
				Steps: []types.NodeDsl{{
					Type:    "filter",
					Outputs: []types.NodeDsl{{Type: "intercept"}},
				}},
			}}}},
			err: types.ErrTopLevelOnly,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ToDefinition(tt.def)
			assert.True(t, errors.Is(err, tt.err), "%v", err)
		})
	}

	_, err := ToNodeDefinition(types.NodeDsl{Type: "sample", Configuration: types.Configuration{KeySamplePeriod: "soon"}})
	assert.NotNil(t, err)
}

func TestToDsl(t *testing.T) {
	clause := model.Clause()
	route, err := model.From("direct:start").RouteId("dsl").RouteGroup("g").
		Filter(clause).Id("f").To("mock:a").End().
		SetHeader("h", model.Constant("v")).
		DoTry().InOut("http://svc").
		DoCatch("java.io.IOException").OnWhen(model.Expr("retries < 3")).To("mock:err").
		DoFinally().To("mock:done").
		EndDoTry().
		SampleFrequency(10).
		Loop(model.Expr("3")).Copy().To("mock:loop").End().
		InterceptSendToEndpoint("http:*").SkipSendToOriginalEndpoint().AfterUri("mock:after").To("log:x").End().
		Build()
	require.Nil(t, err)
	clause.Expr("msg.ok")

	def := ToRouteDsl(route)
	assert.Equal(t, "dsl", def.Id)
	assert.Equal(t, map[string]interface{}{"language": "expr", "expression": "msg.ok"}, def.Steps[0].Configuration[KeyExpression])
	assert.Equal(t, "f", def.Steps[0].Id)
	assert.Equal(t, int64(10), def.Steps[3].Configuration[KeyMessageFrequency])
	assert.Equal(t, true, def.Steps[4].Configuration[KeyCopy])
	assert.Equal(t, true, def.Steps[5].Configuration[KeySkipSendToOriginalEndpoint])
	// encoding leaves the clause in the tree unresolved
	assert.Equal(t, "", route.Outputs()[0].(*model.FilterDefinition).GetExpression().Language)

	for _, parser := range []types.Parser{&JsonParser{}, &YamlParser{}} {
		data, err := parser.EncodeRoutes(types.RoutesDsl{Routes: []types.RouteDsl{def}})
		require.Nil(t, err)
		decoded, err := parser.DecodeRoutes(data)
		require.Nil(t, err)
		routes, _, err := ToDefinition(decoded)
		require.Nil(t, err)
		require.Equal(t, 1, len(routes))
		again := routes[0]
		assert.Equal(t, "dsl", again.GetId())
		assert.Equal(t, "g", again.Group)
		assert.Equal(t, len(route.Outputs()), len(again.Outputs()))
		for i, out := range route.Outputs() {
			assert.Equal(t, model.String(out), model.String(again.Outputs()[i]))
			assert.Equal(t, len(out.Outputs()), len(again.Outputs()[i].Outputs()))
		}
		try := again.Outputs()[2].(*model.TryDefinition)
		assert.Equal(t, types.InOut, try.Outputs()[0].(*model.ToDefinition).GetPattern())
		assert.Equal(t, "expr{retries < 3}", try.CatchClauses()[0].GetOnWhen().String())
		assert.Equal(t, int64(10), again.Outputs()[3].(*model.SampleDefinition).GetMessageFrequency())
		isend := again.Outputs()[5].(*model.InterceptSendToEndpointDefinition)
		assert.Equal(t, "mock:after", isend.AfterUri)
		assert.Equal(t, types.True, isend.SkipSendToOriginalEndpoint)
	}
}

func TestToDslTemplates(t *testing.T) {
	template, err := model.RouteTemplate("tpl").From("direct:{{name}}").
		TemplateParameter("name").
		TemplateOptionalParameter("target", "mock:out").
		To("{{target}}").
		BuildTemplate()
	require.Nil(t, err)

	def := ToDsl(nil, []*model.RouteTemplateDefinition{template})
	require.Equal(t, 1, len(def.RouteTemplates))
	item := def.RouteTemplates[0]
	assert.Equal(t, "tpl", item.Id)
	assert.Equal(t, []types.ParameterDsl{
		{Name: "name"},
		{Name: "target", DefaultValue: "mock:out", Required: types.False},
	}, item.Parameters)

	_, templates, err := ToDefinition(def)
	require.Nil(t, err)
	require.Equal(t, 1, len(templates))
	assert.Equal(t, template.GetTemplateParameters(), templates[0].GetTemplateParameters())
	assert.Equal(t, "direct:{{name}}", templates[0].GetEndpointUri())
}
