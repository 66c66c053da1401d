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

	"github.com/rulego/routedsl/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptAfterPropertiesSet(t *testing.T) {
	t.Run("guardTakesFollowingOutputs", func(t *testing.T) {
		intercept := NewIntercept()
		guard := NewWhen(testPredicate{label: "P", result: true})
		a, b := NewTo("mock:a"), NewTo("mock:b")
		require.Nil(t, intercept.AddOutput(guard))
		require.Nil(t, intercept.AddOutput(a))
		require.Nil(t, intercept.AddOutput(b))

		require.Nil(t, intercept.AfterPropertiesSet())
		assert.Equal(t, []Definition{guard}, intercept.Outputs())
		assert.Equal(t, []Definition{a, b}, guard.Outputs())
		assert.Equal(t, Container(guard), a.Parent())
		assert.Equal(t, Container(guard), b.Parent())
		assert.Equal(t, guard, intercept.GetWhen())
	})

	t.Run("idempotent", func(t *testing.T) {
		intercept := NewIntercept()
		guard := NewWhen(Simple("${header.foo}"))
		a, b := NewTo("mock:a"), NewTo("mock:b")
		require.Nil(t, intercept.SetOutputs([]Definition{guard, a, b}))

		require.Nil(t, intercept.AfterPropertiesSet())
		require.Nil(t, intercept.AfterPropertiesSet())
		assert.Equal(t, []Definition{guard}, intercept.Outputs())
		assert.Equal(t, []Definition{a, b}, guard.Outputs())
	})

	t.Run("noLeadingGuard", func(t *testing.T) {
		intercept := NewIntercept()
		a := NewTo("mock:a")
		guard := NewWhen(Simple("${header.foo}"))
		require.Nil(t, intercept.SetOutputs([]Definition{a, guard}))
		require.Nil(t, intercept.AfterPropertiesSet())
		assert.Equal(t, []Definition{a, guard}, intercept.Outputs())
		assert.Nil(t, intercept.GetWhen())
	})

	t.Run("empty", func(t *testing.T) {
		intercept := NewIntercept()
		require.Nil(t, intercept.AfterPropertiesSet())
		assert.Equal(t, 0, len(intercept.Outputs()))
	})

	t.Run("guardOnly", func(t *testing.T) {
		intercept := NewIntercept()
		require.Nil(t, intercept.When(Simple("${header.foo}")))
		require.Nil(t, intercept.AfterPropertiesSet())
		assert.Equal(t, 1, len(intercept.Outputs()))
		assert.Equal(t, 0, len(intercept.GetWhen().Outputs()))
	})

	t.Run("variants", func(t *testing.T) {
		for _, i := range []Interceptor{NewInterceptFrom("jms:*"), NewInterceptSendToEndpoint("mock:*")} {
			guard := NewWhen(Simple("true"))
			a := NewTo("mock:a")
			require.Nil(t, i.SetOutputs([]Definition{guard, a}))
			require.Nil(t, i.AfterPropertiesSet())
			assert.Equal(t, []Definition{guard}, i.Outputs())
			assert.Equal(t, []Definition{a}, guard.Outputs())
			assert.True(t, i.IsAbstract())
			assert.True(t, i.IsTopLevelOnly())
		}
	})

	t.Run("frozen", func(t *testing.T) {
		route := NewRouteFrom("direct:a")
		intercept := NewIntercept()
		require.Nil(t, route.AddOutput(intercept))
		require.Nil(t, intercept.When(Simple("true")))
		require.Nil(t, intercept.AddOutput(NewTo("mock:a")))
		route.Freeze()
		assert.True(t, errors.Is(intercept.AfterPropertiesSet(), types.ErrFrozen))
		assert.Equal(t, 2, len(intercept.Outputs()))
	})
}

func TestInterceptFlags(t *testing.T) {
	intercept := NewIntercept()
	assert.True(t, intercept.IsAbstract())
	assert.True(t, intercept.IsTopLevelOnly())
	assert.True(t, intercept.IsOutputSupported())
	assert.False(t, intercept.IsWrappingEntireOutput())
	assert.Equal(t, "interceptFrom[jms:*]", String(NewInterceptFrom("jms:*")))
}
