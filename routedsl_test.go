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

package routedsl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/builtin/policy"
	"github.com/rulego/routedsl/engine"
	"github.com/rulego/routedsl/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var templateFile = `
{
  "routeTemplates": [
    {
      "id": "tick",
      "parameters": [{"name": "period", "defaultValue": "1000"}, {"name": "name"}],
      "from": {"type": "from", "configuration": {"uri": "timer:{{name}}?period={{period}}"}},
      "steps": [{"type": "to", "configuration": {"uri": "log:{{name}}"}}]
    }
  ]
}
`

var routeFile = `
routes:
  - id: payments
    from:
      type: from
      configuration:
        uri: direct:payments
    steps:
      - type: transacted
        configuration:
          ref: PROPAGATION_REQUIRED
      - type: to
        configuration:
          uri: mock:ledger
`

func TestPool(t *testing.T) {
	pool := &Pool{}
	ctx := pool.New("a", types.WithLogger(types.DiscardLogger()))
	assert.True(t, ctx == pool.New("a"))
	found, ok := pool.Get("a")
	assert.True(t, ok)
	assert.True(t, ctx == found)

	names := 0
	pool.Range(func(name string, _ *engine.RouteContext) bool {
		names++
		return true
	})
	assert.Equal(t, 1, names)

	pool.Del("a")
	_, ok = pool.Get("a")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "templates.json"), []byte(templateFile), 0644))
	require.Nil(t, os.MkdirAll(filepath.Join(dir, "payments"), 0755))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "payments", "routes.yaml"), []byte(routeFile), 0644))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not a route"), 0644))

	ctx, err := Load("load", dir, types.WithLogger(types.DiscardLogger()))
	require.Nil(t, err)
	defer Del("load")

	route, err := ctx.RouteDefinition("payments")
	require.Nil(t, err)
	tx := route.Outputs()[0].(*model.TransactedDefinition)
	assert.Equal(t, 1, len(tx.Outputs()))
	resolved, err := tx.ResolvePolicy(ctx.Config().BeanRegistry)
	require.Nil(t, err)
	assert.Equal(t, policy.PropagationRequired, resolved.PropagationBehavior())

	tick, err := ctx.AddRouteFromTemplate("tick1", "tick", map[string]string{"name": "t1"})
	require.Nil(t, err)
	assert.Equal(t, "timer:t1?period=1000", tick.GetEndpointUri())

	_, err = Load("broken", filepath.Join(dir, "none"))
	assert.NotNil(t, err)
	Del("broken")
}

func TestBuilders(t *testing.T) {
	ctx := New("builders", types.WithLogger(types.DiscardLogger()))
	defer Del("builders")

	route, err := From("direct:a").RouteId("a").
		Filter(model.Expr("msg.ok")).To("mock:ok").End().
		Build()
	require.Nil(t, err)
	require.Nil(t, ctx.AddRouteDefinition(route))
	assert.Equal(t, []string{"from1", "filter1", "to1"}, model.GatherAllNodeIds(route))

	template, err := RouteTemplate("t").From("direct:{{in}}").TemplateParameter("in").To("mock:t").BuildTemplate()
	require.Nil(t, err)
	require.Nil(t, ctx.AddRouteTemplateDefinitions(template))
	_, err = ctx.AddRouteFromTemplate("t1", "t", map[string]string{"in": "x"})
	assert.Nil(t, err)
}
