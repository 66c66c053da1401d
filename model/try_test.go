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
	"fmt"
	"testing"

	"github.com/rulego/routedsl/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryOrdering(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		try := NewTry()
		to := NewTo("mock:a")
		c1, c2 := NewCatch("java.io.IOException"), NewCatch("java.lang.Exception")
		finally := NewFinally()
		require.Nil(t, try.SetOutputs([]Definition{to, c1, c2, finally}))
		assert.Equal(t, []*CatchDefinition{c1, c2}, try.CatchClauses())
		assert.Equal(t, finally, try.FinallyClause())
		assert.Equal(t, []Definition{to}, try.OutputsWithoutCatches())
	})

	t.Run("duplicateFinally", func(t *testing.T) {
		try := NewTry()
		require.Nil(t, try.AddOutput(NewFinally()))
		assert.True(t, errors.Is(try.AddOutput(NewFinally()), types.ErrDuplicateFinally))
	})

	t.Run("finallyMustBeLast", func(t *testing.T) {
		try := NewTry()
		require.Nil(t, try.AddOutput(NewFinally()))
		assert.True(t, errors.Is(try.AddOutput(NewCatch("java.lang.Exception")), types.ErrFinallyMustBeLast))
		assert.True(t, errors.Is(try.AddOutput(NewTo("mock:a")), types.ErrFinallyMustBeLast))
	})

	t.Run("outputAfterCatch", func(t *testing.T) {
		try := NewTry()
		require.Nil(t, try.AddOutput(NewCatch("java.lang.Exception")))
		assert.True(t, errors.Is(try.AddOutput(NewTo("mock:a")), types.ErrCatchOrder))
	})

	t.Run("clauseOutsideTry", func(t *testing.T) {
		route := NewRouteFrom("direct:a")
		assert.True(t, errors.Is(route.AddOutput(NewCatch("java.lang.Exception")), types.ErrInvalidParent))
		assert.True(t, errors.Is(NewStep("").AddOutput(NewFinally()), types.ErrInvalidParent))
	})

	t.Run("setOutputsChecksOrder", func(t *testing.T) {
		try := NewTry()
		err := try.SetOutputs([]Definition{NewFinally(), NewTo("mock:a")})
		assert.True(t, errors.Is(err, types.ErrFinallyMustBeLast))
		assert.Equal(t, 0, len(try.Outputs()))
	})
}

func TestCatchMatches(t *testing.T) {
	fileNotFound := types.NewTypedError(types.FileNotFoundExceptionType, "missing.txt", nil)
	illegalState := types.NewTypedError(types.IllegalStateExceptionType, "bad state", nil)

	t.Run("subtype", func(t *testing.T) {
		c := NewCatch("java.io.IOException")
		assert.True(t, c.Matches(fileNotFound, nil))
		assert.Equal(t, "java.io.IOException", c.MatchingType(fileNotFound))
		assert.False(t, c.Matches(illegalState, nil))
		assert.False(t, c.Matches(errors.New("untyped"), nil))
	})

	t.Run("wrapped", func(t *testing.T) {
		c := NewCatch("java.io.IOException")
		assert.True(t, c.Matches(fmt.Errorf("read: %w", fileNotFound), nil))
	})

	t.Run("guard", func(t *testing.T) {
		c := NewCatch("java.io.IOException").OnWhen(testPredicate{label: "never", result: false})
		assert.False(t, c.Matches(fileNotFound, nil))
		c.OnWhen(testPredicate{label: "always", result: true})
		assert.True(t, c.Matches(fileNotFound, nil))
		assert.False(t, c.Matches(illegalState, nil))
		c.OnWhen(nil)
		assert.True(t, c.Matches(fileNotFound, nil))
	})

	t.Run("textualGuard", func(t *testing.T) {
		c := NewCatch("java.io.IOException")
		c.SetOnWhen(Simple("${exception.message} contains 'missing'"))
		assert.False(t, c.Matches(fileNotFound, nil))
	})

	t.Run("duplicatesKept", func(t *testing.T) {
		c := NewCatch("java.io.IOException").Exception("java.io.IOException", "java.lang.Exception")
		assert.Equal(t, []string{"java.io.IOException", "java.io.IOException", "java.lang.Exception"}, c.GetExceptions())
		assert.Equal(t, "java.io.IOException", c.MatchingType(fileNotFound))
		assert.Equal(t, "java.lang.Exception", c.MatchingType(illegalState))
	})

	t.Run("resolvedTypes", func(t *testing.T) {
		registry := types.NewErrorTypeRegistry()
		custom := types.NewErrorType("com.acme.OrderException", types.IOExceptionType)
		require.Nil(t, registry.Register(custom))

		c := NewCatch("java.io.IOException")
		require.Nil(t, c.ResolveErrorTypes(registry))
		assert.Equal(t, []*types.ErrorType{types.IOExceptionType}, c.GetErrorTypes())
		assert.True(t, c.Matches(types.NewTypedError(custom, "order", nil), nil))

		unknown := NewCatch("com.acme.Unknown")
		assert.True(t, errors.Is(unknown.ResolveErrorTypes(registry), types.ErrErrorTypeNotFound))
	})

	t.Run("types", func(t *testing.T) {
		c := NewCatchTypes(types.IOExceptionType)
		assert.Equal(t, []string{"java.io.IOException"}, c.GetExceptions())
		assert.True(t, c.Matches(fileNotFound, nil))
	})
}
