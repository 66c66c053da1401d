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
	"fmt"
	"time"

	"github.com/rulego/routedsl/api/types"
)

// Builder assembles a route with a fluent API. Container nodes open a block that
// following calls add to, until End closes it. The first error stops the builder;
// it is reported by Err and Build.
// Builder 路由流式构建器，遇到第一个错误后停止，通过Err()或Build()返回错误
//
//	route, err := model.From("direct:start").
//		DoTry().
//			To("http:orders").
//		DoCatch("java.io.IOException").
//			To("log:io").
//		DoFinally().
//			To("mock:finally").
//		EndDoTry().
//		Build()
type Builder struct {
	route    *RouteDefinition
	template *RouteTemplateDefinition
	blocks   []Container
	last     Definition
	err      error
}

// NewBuilder continues building route.
func NewBuilder(route *RouteDefinition) *Builder {
	return &Builder{route: route, blocks: []Container{route}}
}

// From starts a route consuming from uri.
func From(uri string) *Builder {
	return NewBuilder(NewRouteFrom(uri))
}

// FromEndpoint starts a route consuming from a resolved endpoint.
func FromEndpoint(endpoint types.Endpoint) *Builder {
	route := NewRoute()
	_ = route.SetInput(NewFromEndpoint(endpoint))
	return NewBuilder(route)
}

// RouteTemplate starts a route template. Set its input with From.
func RouteTemplate(id string) *Builder {
	t := NewRouteTemplate(id)
	b := NewBuilder(&t.RouteDefinition)
	b.template = t
	return b
}

// Err returns the first error raised while building.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the route and the first error raised while building.
func (b *Builder) Build() (*RouteDefinition, error) {
	return b.route, b.err
}

// BuildTemplate returns the template started by RouteTemplate.
func (b *Builder) BuildTemplate() (*RouteTemplateDefinition, error) {
	if b.template == nil {
		return nil, b.fail(fmt.Errorf("%w. not building a route template", types.ErrBuilderState)).err
	}
	return b.template, b.err
}

// Route returns the route being built, even when building failed.
func (b *Builder) Route() *RouteDefinition {
	return b.route
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) stateError(format string, args ...interface{}) *Builder {
	return b.fail(fmt.Errorf("%w. "+format, append([]interface{}{types.ErrBuilderState}, args...)...))
}

func (b *Builder) current() Container {
	return b.blocks[len(b.blocks)-1]
}

func (b *Builder) pop() {
	if len(b.blocks) > 1 {
		b.blocks = b.blocks[:len(b.blocks)-1]
	}
}

func (b *Builder) add(d Definition) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.current().AddOutput(d); err != nil {
		return b.fail(fmt.Errorf("add %s: %w", String(d), err))
	}
	b.last = d
	return b
}

func (b *Builder) push(d Definition) *Builder {
	if b.add(d); b.err == nil {
		b.blocks = append(b.blocks, d)
	}
	return b
}

// route level attributes

// From sets the input of the route.
func (b *Builder) From(uri string) *Builder {
	if b.err == nil {
		if err := b.route.SetInput(NewFrom(uri)); err != nil {
			b.fail(err)
		}
	}
	return b
}

func (b *Builder) RouteId(id string) *Builder {
	b.route.SetId(id)
	return b
}

func (b *Builder) RouteGroup(group string) *Builder {
	b.route.Group = group
	return b
}

func (b *Builder) RouteDescription(description string) *Builder {
	b.route.Description = description
	return b
}

func (b *Builder) NodePrefixId(prefix string) *Builder {
	b.route.NodePrefixId = prefix
	return b
}

func (b *Builder) StreamCaching() *Builder {
	b.route.StreamCache = types.True
	return b
}

func (b *Builder) Tracing() *Builder {
	b.route.Trace = types.True
	return b
}

func (b *Builder) MessageHistory() *Builder {
	b.route.MessageHistory = types.True
	return b
}

func (b *Builder) LogMask() *Builder {
	b.route.LogMask = types.True
	return b
}

func (b *Builder) Delayer(delay time.Duration) *Builder {
	b.route.Delayer = delay
	return b
}

func (b *Builder) StartupOrder(order int) *Builder {
	b.route.StartupOrder = &order
	return b
}

func (b *Builder) AutoStartup(autoStartup bool) *Builder {
	b.route.AutoStartup = types.BoolOf(autoStartup)
	return b
}

func (b *Builder) RoutePolicy(policies ...types.RoutePolicy) *Builder {
	b.route.RoutePolicies = append(b.route.RoutePolicies, policies...)
	return b
}

func (b *Builder) RoutePolicyRef(ref string) *Builder {
	b.route.RoutePolicyRef = ref
	return b
}

func (b *Builder) ShutdownRoute(shutdownRoute types.ShutdownRoute) *Builder {
	b.route.ShutdownRoute = shutdownRoute
	return b
}

func (b *Builder) ShutdownRunningTask(task types.ShutdownRunningTask) *Builder {
	b.route.ShutdownRunningTask = task
	return b
}

func (b *Builder) ErrorHandlerRef(ref string) *Builder {
	b.route.ErrorHandlerRef = ref
	return b
}

func (b *Builder) ErrorHandler(factory types.ErrorHandlerFactory) *Builder {
	b.route.ErrorHandlerFactory = factory
	return b
}

func (b *Builder) InputType(urn string) *Builder {
	b.route.InputType = &DataType{Urn: urn}
	return b
}

func (b *Builder) OutputType(urn string) *Builder {
	b.route.OutputType = &DataType{Urn: urn}
	return b
}

func (b *Builder) RouteProperty(key, value string) *Builder {
	b.route.Property(key, value)
	return b
}

func (b *Builder) Precondition(precondition string) *Builder {
	b.route.Precondition = precondition
	return b
}

// TemplateParameter declares required template parameters.
func (b *Builder) TemplateParameter(names ...string) *Builder {
	if b.template == nil {
		return b.stateError("templateParameter outside a route template")
	}
	b.template.TemplateParameter(names...)
	return b
}

// TemplateOptionalParameter declares a template parameter with a default value.
func (b *Builder) TemplateOptionalParameter(name, defaultValue string) *Builder {
	if b.template == nil {
		return b.stateError("templateParameter outside a route template")
	}
	b.template.TemplateOptionalParameter(name, defaultValue)
	return b
}

// attributes of the last added node

// Id sets the id of the last added node.
func (b *Builder) Id(id string) *Builder {
	if b.last == nil {
		return b.stateError("id %s set before any node", id)
	}
	b.last.SetId(id)
	return b
}

// Description sets the description of the last added node.
func (b *Builder) Description(description string) *Builder {
	if b.last == nil {
		return b.stateError("description set before any node")
	}
	b.last.SetDescription(description)
	return b
}

// Disabled disables the last added node.
func (b *Builder) Disabled() *Builder {
	if b.last == nil {
		return b.stateError("disabled set before any node")
	}
	b.last.SetDisabled(types.True)
	return b
}

// InheritErrorHandler sets whether the last added node uses the route error handler.
func (b *Builder) InheritErrorHandler(inherit bool) *Builder {
	if b.last == nil {
		return b.stateError("inheritErrorHandler set before any node")
	}
	b.last.SetInheritErrorHandler(types.BoolOf(inherit))
	return b
}

// blocks

// End closes the innermost block. Closing a doCatch, doFinally or onFallback also
// closes the enclosing doTry or circuitBreaker.
func (b *Builder) End() *Builder {
	if b.err != nil {
		return b
	}
	if len(b.blocks) == 1 {
		return b.stateError("end without an open block")
	}
	switch b.current().(type) {
	case *CatchDefinition, *FinallyDefinition, *OnFallbackDefinition:
		b.pop()
	}
	b.pop()
	return b
}

// endpoints

func (b *Builder) To(uri string) *Builder {
	return b.add(NewTo(uri))
}

func (b *Builder) ToEndpoint(endpoint types.Endpoint) *Builder {
	return b.add(NewToEndpoint(endpoint))
}

func (b *Builder) ToBuilder(builder types.EndpointBuilder) *Builder {
	return b.add(NewToBuilder(builder))
}

// InOnly sends to uri with the InOnly exchange pattern.
func (b *Builder) InOnly(uri string) *Builder {
	to := NewTo(uri)
	to.SetPattern(types.InOnly)
	return b.add(to)
}

// InOut sends to uri with the InOut exchange pattern.
func (b *Builder) InOut(uri string) *Builder {
	to := NewTo(uri)
	to.SetPattern(types.InOut)
	return b.add(to)
}

func (b *Builder) ToD(uri string) *Builder {
	return b.add(NewToDynamic(uri))
}

// EIPs

// Filter opens a filter block.
func (b *Builder) Filter(predicate types.Expression) *Builder {
	return b.push(NewFilter(predicate))
}

func (b *Builder) Delay(expression types.Expression) *Builder {
	return b.add(NewDelay(expression))
}

func (b *Builder) DelayOf(delay time.Duration) *Builder {
	return b.add(NewDelayOf(delay))
}

// Loop opens a count loop block.
func (b *Builder) Loop(count types.Expression) *Builder {
	return b.push(NewLoop(count))
}

// LoopDoWhile opens a while loop block.
func (b *Builder) LoopDoWhile(predicate types.Expression) *Builder {
	return b.push(NewLoopDoWhile(predicate))
}

// Copy makes the current loop work on copies.
func (b *Builder) Copy() *Builder {
	loop, ok := b.current().(*LoopDefinition)
	if !ok {
		return b.stateError("copy outside a loop")
	}
	loop.Copy()
	return b
}

// Intercept opens an intercept block. Only valid directly under the route.
func (b *Builder) Intercept() *Builder {
	return b.push(NewIntercept())
}

// InterceptFrom opens an interceptFrom block for the uri pattern.
func (b *Builder) InterceptFrom(uri string) *Builder {
	return b.push(NewInterceptFrom(uri))
}

// InterceptSendToEndpoint opens an interceptSendToEndpoint block for the uri pattern.
func (b *Builder) InterceptSendToEndpoint(uri string) *Builder {
	return b.push(NewInterceptSendToEndpoint(uri))
}

// SkipSendToOriginalEndpoint applies to the current interceptSendToEndpoint.
func (b *Builder) SkipSendToOriginalEndpoint() *Builder {
	i, ok := b.current().(*InterceptSendToEndpointDefinition)
	if !ok {
		return b.stateError("skipSendToOriginalEndpoint outside interceptSendToEndpoint")
	}
	i.SkipSendToOriginalEndpoint = types.True
	return b
}

// AfterUri applies to the current interceptSendToEndpoint.
func (b *Builder) AfterUri(uri string) *Builder {
	i, ok := b.current().(*InterceptSendToEndpointDefinition)
	if !ok {
		return b.stateError("afterUri outside interceptSendToEndpoint")
	}
	i.AfterUri = uri
	return b
}

// When adds the guard of the current interceptor. Outputs added after it stay
// siblings until route preparation moves them into the guard.
func (b *Builder) When(predicate types.Expression) *Builder {
	if _, ok := b.current().(Interceptor); !ok {
		return b.stateError("when outside an interceptor")
	}
	return b.add(NewWhen(predicate))
}

// Policy opens a policy block referring to a policy bean.
func (b *Builder) Policy(ref string) *Builder {
	return b.push(NewPolicy(ref))
}

// PolicyInstance opens a policy block for a policy instance.
func (b *Builder) PolicyInstance(policy types.Policy) *Builder {
	return b.push(NewPolicyInstance(policy))
}

// Transacted opens a transacted block. ref may be empty.
func (b *Builder) Transacted(ref string) *Builder {
	return b.push(NewTransacted(ref))
}

// TransactedPolicy opens a transacted block for a policy instance.
func (b *Builder) TransactedPolicy(policy types.Policy) *Builder {
	d := NewTransacted("")
	if err := d.SetPolicy(policy); err != nil {
		return b.fail(err)
	}
	return b.push(d)
}

func (b *Builder) Sample(period time.Duration) *Builder {
	return b.add(NewSample(period))
}

func (b *Builder) SampleFrequency(frequency int64) *Builder {
	return b.add(NewSampleFrequency(frequency))
}

func (b *Builder) ThrowException(exceptionType, message string) *Builder {
	return b.add(NewThrowException(exceptionType, message))
}

func (b *Builder) ThrowError(err error) *Builder {
	return b.add(NewThrowError(err))
}

func (b *Builder) Transform(expression types.Expression) *Builder {
	return b.add(NewTransform(expression))
}

func (b *Builder) Validate(predicate types.Expression) *Builder {
	return b.add(NewValidate(predicate))
}

func (b *Builder) SetHeader(name string, expression types.Expression) *Builder {
	return b.add(NewSetHeader(name, expression))
}

func (b *Builder) SetProperty(name string, expression types.Expression) *Builder {
	return b.add(NewSetProperty(name, expression))
}

// CircuitBreaker opens a circuit breaker block.
func (b *Builder) CircuitBreaker() *Builder {
	return b.push(NewCircuitBreaker())
}

// OnFallback opens the fallback of the current circuit breaker.
func (b *Builder) OnFallback() *Builder {
	return b.onFallback(types.Unset)
}

// OnFallbackViaNetwork opens a fallback that goes over the network.
func (b *Builder) OnFallbackViaNetwork() *Builder {
	return b.onFallback(types.True)
}

func (b *Builder) onFallback(viaNetwork types.OptionalBool) *Builder {
	if _, ok := b.current().(*CircuitBreakerDefinition); !ok {
		return b.stateError("onFallback outside circuitBreaker")
	}
	d := NewOnFallback()
	d.FallbackViaNetwork = viaNetwork
	return b.push(d)
}

// Step opens a step block.
func (b *Builder) Step(id string) *Builder {
	return b.push(NewStep(id))
}

// try blocks

// DoTry opens a try block.
func (b *Builder) DoTry() *Builder {
	return b.push(NewTry())
}

// DoCatch closes the current clause, if any, and opens a doCatch clause.
func (b *Builder) DoCatch(exceptions ...string) *Builder {
	if !b.enterTry("doCatch") {
		return b
	}
	return b.push(NewCatch(exceptions...))
}

// DoCatchTypes opens a doCatch clause for resolved error types.
func (b *Builder) DoCatchTypes(errorTypes ...*types.ErrorType) *Builder {
	if !b.enterTry("doCatch") {
		return b
	}
	return b.push(NewCatchTypes(errorTypes...))
}

// OnWhen sets the guard of the current doCatch.
func (b *Builder) OnWhen(predicate types.Expression) *Builder {
	c, ok := b.current().(*CatchDefinition)
	if !ok {
		return b.stateError("onWhen outside doCatch")
	}
	if p, isPredicate := predicate.(types.Predicate); isPredicate {
		c.OnWhen(p)
	} else {
		c.SetOnWhen(ExpressionOf(predicate))
	}
	return b
}

// DoFinally closes the current clause, if any, and opens the doFinally clause.
func (b *Builder) DoFinally() *Builder {
	if !b.enterTry("doFinally") {
		return b
	}
	return b.push(NewFinally())
}

// EndDoTry closes the try block.
func (b *Builder) EndDoTry() *Builder {
	if !b.enterTry("endDoTry") {
		return b
	}
	b.pop()
	return b
}

// enterTry closes an open clause and checks that a try block is current.
func (b *Builder) enterTry(op string) bool {
	if b.err != nil {
		return false
	}
	switch b.current().(type) {
	case *CatchDefinition, *FinallyDefinition:
		b.pop()
	}
	if _, ok := b.current().(*TryDefinition); !ok {
		b.stateError("%s outside doTry", op)
		return false
	}
	return true
}
