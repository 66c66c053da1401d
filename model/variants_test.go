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

type testEndpoint string

func (e testEndpoint) EndpointUri() string {
	return string(e)
}

type testEndpointBuilder string

func (b testEndpointBuilder) Uri() string {
	return string(b)
}

func TestSendEndpoint(t *testing.T) {
	to := NewTo("mock:a")
	assert.Equal(t, "mock:a", to.GetEndpointUri())

	to.SetEndpoint(testEndpoint("jms:queue:a"))
	assert.Equal(t, "", to.GetUri())
	assert.Equal(t, "jms:queue:a", to.GetEndpointUri())

	to.SetEndpointBuilder(testEndpointBuilder("kafka:topic"))
	assert.Nil(t, to.GetEndpoint())
	assert.Equal(t, "kafka:topic", to.GetEndpointUri())

	to.SetUri("mock:b")
	assert.Nil(t, to.GetEndpointBuilder())
	assert.Equal(t, "mock:b", to.GetEndpointUri())

	assert.Equal(t, "", NewTo("").GetEndpointUri())
	assert.Equal(t, "seda:x", NewToEndpoint(testEndpoint("seda:x")).Label())
	assert.Equal(t, "seda:y", NewToBuilder(testEndpointBuilder("seda:y")).Label())
}

func TestPolicy(t *testing.T) {
	policy := NewPolicy("admin")
	assert.True(t, policy.IsWrappingEntireOutput())
	assert.False(t, policy.IsTopLevelOnly())
	assert.False(t, policy.IsAbstract())

	registry := types.MapBeanRegistry{"admin": testPolicy("adminPolicy"), "other": 1}
	resolved, err := policy.ResolvePolicy(registry)
	require.Nil(t, err)
	assert.Equal(t, "adminPolicy", resolved.PolicyName())

	_, err = NewPolicy("missing").ResolvePolicy(registry)
	assert.True(t, errors.Is(err, types.ErrBeanNotFound))
	_, err = NewPolicy("other").ResolvePolicy(registry)
	assert.True(t, errors.Is(err, types.ErrUnexpectedBeanType))

	instance := NewPolicyInstance(testPolicy("inline"))
	assert.Equal(t, "inline", instance.Label())
	resolved, err = instance.ResolvePolicy(nil)
	require.Nil(t, err)
	assert.Equal(t, "inline", resolved.PolicyName())
}

func TestTransacted(t *testing.T) {
	tx := NewTransacted("required")
	assert.True(t, tx.IsTopLevelOnly())
	assert.True(t, tx.IsAbstract())
	assert.True(t, tx.IsWrappingEntireOutput())

	assert.True(t, errors.Is(tx.SetPolicy(testPolicy("plain")), types.ErrNotTransactedPolicy))
	assert.Nil(t, tx.GetPolicy())
	require.Nil(t, tx.SetPolicy(testTxPolicy("tx")))
	assert.Equal(t, "PROPAGATION_REQUIRED", tx.GetPolicy().PropagationBehavior())

	registry := types.MapBeanRegistry{"required": testTxPolicy("required"), "plain": testPolicy("plain")}
	byRef := NewTransacted("required")
	resolved, err := byRef.ResolvePolicy(registry)
	require.Nil(t, err)
	assert.Equal(t, "required", resolved.PolicyName())
	_, err = NewTransacted("plain").ResolvePolicy(registry)
	assert.True(t, errors.Is(err, types.ErrNotTransactedPolicy))
}

func TestCircuitBreaker(t *testing.T) {
	cb := NewCircuitBreaker()
	fallback := NewOnFallback()
	require.Nil(t, cb.AddOutput(NewTo("http:a")))
	require.Nil(t, cb.AddOutput(fallback))
	assert.True(t, errors.Is(cb.AddOutput(NewOnFallback()), types.ErrDuplicateFallback))
	assert.True(t, errors.Is(cb.AddOutput(NewTo("http:b")), types.ErrFallbackMustBeLast))
	assert.Same(t, fallback, cb.OnFallback())

	assert.True(t, errors.Is(NewStep("").AddOutput(NewOnFallback()), types.ErrInvalidParent))

	require.Nil(t, fallback.AddOutput(NewTo("log:a")))
	require.Nil(t, fallback.AddOutput(NewTo("log:b")))
	assert.Equal(t, "onFallback[log:a,log:b]", String(fallback))
	fallback.FallbackViaNetwork = types.False
	assert.Equal(t, "onFallback[log:a,log:b]", fallback.Label())
	fallback.FallbackViaNetwork = types.True
	assert.Equal(t, "onFallbackViaNetwork[log:a,log:b]", fallback.Label())
}

func TestSample(t *testing.T) {
	sample := NewSample(2 * time.Second)
	assert.Equal(t, 2*time.Second, sample.GetSamplePeriod())
	sample.SampleMessageFrequency(10)
	assert.EqualValues(t, 10, sample.GetMessageFrequency())
	assert.EqualValues(t, 0, sample.GetSamplePeriod())
	sample.SamplePeriod(time.Minute)
	assert.EqualValues(t, 0, sample.GetMessageFrequency())
	assert.Equal(t, time.Minute, sample.GetSamplePeriod())
}

func TestThrowException(t *testing.T) {
	registry := types.NewErrorTypeRegistry()
	throw := NewThrowException("java.lang.IllegalArgumentException", "bad input")
	err, resolveErr := throw.NewError(registry)
	require.Nil(t, resolveErr)
	errorType, ok := types.ErrorTypeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.IllegalArgumentExceptionType, errorType)

	cause := types.NewTypedError(types.IOExceptionType, "disk", nil)
	byValue := NewThrowError(cause)
	assert.Equal(t, "java.io.IOException", byValue.ExceptionType)
	err, resolveErr = byValue.NewError(registry)
	require.Nil(t, resolveErr)
	assert.Equal(t, cause, err)

	_, resolveErr = NewThrowException("com.acme.Unknown", "").NewError(registry)
	assert.True(t, errors.Is(resolveErr, types.ErrErrorTypeNotFound))
}

func TestRegistry(t *testing.T) {
	for _, name := range Registry.Names() {
		node, err := Registry.NewNode(name)
		require.Nil(t, err)
		assert.Equal(t, name, node.ShortName())
		assert.True(t, node.Index() > 0)
	}
	assert.Contains(t, Registry.Names(), types.NodeTry)
	assert.NotContains(t, Registry.Names(), types.NodeFrom)

	_, err := Registry.NewNode("unknown")
	assert.True(t, errors.Is(err, types.ErrNodeTypeNotFound))

	registry := new(NodeRegistry)
	require.Nil(t, registry.Register(&StepDefinition{}))
	assert.NotNil(t, registry.Register(&StepDefinition{}))
	require.Nil(t, registry.Unregister(types.NodeStep))
	assert.True(t, errors.Is(registry.Unregister(types.NodeStep), types.ErrNodeTypeNotFound))
}
