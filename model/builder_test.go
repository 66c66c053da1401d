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
	"errors"
	"testing"
	"time"

	"github.com/rulego/routedsl/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("blocks", func(t *testing.T) {
		route, err := From("direct:start").
			RouteId("orders").
			Filter(Expr("msg.amount > 100")).Id("big").
			To("log:big").
			End().
			Loop(Constant("3")).Copy().
			To("mock:loop").
			End().
			To("mock:result").
			Build()
		require.Nil(t, err)
		assert.Equal(t, "orders", route.GetId())
		assert.Equal(t, "direct:start", route.GetEndpointUri())
		require.Equal(t, 3, len(route.Outputs()))

		filter := route.Outputs()[0].(*FilterDefinition)
		assert.Equal(t, "big", filter.GetId())
		assert.Equal(t, "msg.amount > 100", filter.Label())
		assert.Equal(t, 1, len(filter.Outputs()))

		loop := route.Outputs()[1].(*LoopDefinition)
		assert.True(t, loop.IsCopy())
		assert.Equal(t, 1, len(loop.Outputs()))
		assert.Equal(t, "mock:result", route.Outputs()[2].Label())
	})

	t.Run("tryCatchFinally", func(t *testing.T) {
		route, err := From("direct:start").
			DoTry().
			To("http:orders").
			DoCatch("java.io.IOException").OnWhen(testPredicate{label: "retry", result: true}).
			To("log:io").
			DoCatch("java.lang.Exception").
			To("log:other").
			DoFinally().
			To("mock:finally").
			EndDoTry().
			To("mock:after").
			Build()
		require.Nil(t, err)
		require.Equal(t, 2, len(route.Outputs()))
		try := route.Outputs()[0].(*TryDefinition)
		assert.Equal(t, 4, len(try.Outputs()))
		assert.Equal(t, 2, len(try.CatchClauses()))
		assert.Equal(t, "retry", try.CatchClauses()[0].GetOnWhen().Label())
		assert.Equal(t, 1, len(try.FinallyClause().Outputs()))
		assert.Equal(t, "mock:after", route.Outputs()[1].Label())
	})

	t.Run("endClosesTry", func(t *testing.T) {
		route, err := From("direct:start").
			DoTry().
			To("http:orders").
			DoCatch("java.lang.Exception").
			To("log:io").
			End().
			To("mock:after").
			Build()
		require.Nil(t, err)
		assert.Equal(t, 2, len(route.Outputs()))
	})

	t.Run("circuitBreaker", func(t *testing.T) {
		route, err := From("direct:start").
			CircuitBreaker().
			To("http:slow").
			OnFallbackViaNetwork().
			To("http:backup").
			End().
			Build()
		require.Nil(t, err)
		cb := route.Outputs()[0].(*CircuitBreakerDefinition)
		require.NotNil(t, cb.OnFallback())
		assert.Equal(t, "onFallbackViaNetwork[http:backup]", String(cb.OnFallback()))
		assert.Equal(t, 1, len(route.Outputs()))
	})

	t.Run("intercept", func(t *testing.T) {
		route, err := From("direct:start").
			Intercept().When(Simple("${body} contains 'Hello'")).To("mock:intercepted").End().
			To("mock:result").
			Build()
		require.Nil(t, err)
		intercept := route.Outputs()[0].(*InterceptDefinition)
		assert.Equal(t, 2, len(intercept.Outputs()))
		require.Nil(t, intercept.AfterPropertiesSet())
		assert.Equal(t, 1, len(intercept.GetWhen().Outputs()))
	})

	t.Run("firstErrorWins", func(t *testing.T) {
		b := From("direct:start").
			Filter(Simple("true")).
			Intercept().
			DoCatch("java.lang.Exception").
			To("mock:a")
		err := b.Err()
		assert.True(t, errors.Is(err, types.ErrTopLevelOnly))
		_, buildErr := b.Build()
		assert.Equal(t, err, buildErr)
	})

	t.Run("stateErrors", func(t *testing.T) {
		cases := map[string]*Builder{
			"end":        From("direct:a").End(),
			"copy":       From("direct:a").Copy(),
			"when":       From("direct:a").When(Simple("true")),
			"onWhen":     From("direct:a").OnWhen(Simple("true")),
			"doFinally":  From("direct:a").DoFinally(),
			"onFallback": From("direct:a").OnFallback(),
			"id":         From("direct:a").Id("x"),
			"parameter":  From("direct:a").TemplateParameter("x"),
			"skip":       From("direct:a").SkipSendToOriginalEndpoint(),
		}
		for name, b := range cases {
			assert.True(t, errors.Is(b.Err(), types.ErrBuilderState), name)
		}
		_, err := From("direct:a").BuildTemplate()
		assert.True(t, errors.Is(err, types.ErrBuilderState))
	})

	t.Run("transactedPolicy", func(t *testing.T) {
		_, err := From("direct:a").TransactedPolicy(testPolicy("plain")).Build()
		assert.True(t, errors.Is(err, types.ErrNotTransactedPolicy))

		route, err := From("direct:a").TransactedPolicy(testTxPolicy("tx")).To("sql:insert").Build()
		require.Nil(t, err)
		tx := route.Outputs()[0].(*TransactedDefinition)
		assert.Equal(t, 1, len(tx.Outputs()))
		assert.Equal(t, "transacted[tx]", String(tx))
	})

	t.Run("nodeAttributes", func(t *testing.T) {
		route, err := From("direct:a").
			InOut("jms:queue:a").Description("request reply").Disabled().InheritErrorHandler(false).
			InOnly("jms:queue:b").
			ToD("http:${header.host}").
			SetHeader("h", Constant("v")).
			SetProperty("p", Constant("v")).
			Transform(Simple("${body}")).
			Validate(Simple("${body} != null")).
			DelayOf(1500 * time.Millisecond).
			Sample(0).
			SampleFrequency(5).
			ThrowException("java.lang.IllegalStateException", "boom").
			Build()
		require.Nil(t, err)
		outs := route.Outputs()
		require.Equal(t, 11, len(outs))
		to := outs[0].(*ToDefinition)
		assert.Equal(t, types.InOut, to.GetPattern())
		assert.Equal(t, "request reply", to.GetDescription())
		assert.Equal(t, types.True, to.GetDisabled())
		assert.Equal(t, types.False, to.GetInheritErrorHandler())
		assert.Equal(t, types.InOnly, outs[1].(*ToDefinition).GetPattern())
		assert.Equal(t, "1500", outs[6].(*DelayDefinition).Label())
	})
}

type testPolicy string

func (p testPolicy) PolicyName() string {
	return string(p)
}

type testTxPolicy string

func (p testTxPolicy) PolicyName() string {
	return string(p)
}

func (p testTxPolicy) PropagationBehavior() string {
	return "PROPAGATION_REQUIRED"
}
