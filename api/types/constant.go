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

package types

import "errors"

const (
	// ParameterSeparator joins declared template parameter names.
	ParameterSeparator = ","
	// PlaceholderPrefix and PlaceholderSuffix delimit template parameter placeholders, {{name}}.
	PlaceholderPrefix = "{{"
	PlaceholderSuffix = "}}"
)

// Structural violations. Returned at tree construction or by the prepare pass.
// 结构性错误，在构建树或预处理阶段返回
var (
	// ErrNodeNil is returned when a nil node is added.
	ErrNodeNil = errors.New("node can not be nil")
	// ErrOutputNotSupported is returned when adding an output to a node that has none.
	ErrOutputNotSupported = errors.New("the node does not support outputs")
	// ErrTopLevelOnly is returned when a top-level only node is nested below the route.
	ErrTopLevelOnly = errors.New("the output must be added as top-level on the route")
	// ErrInvalidParent is returned when a node is added to a container it can not live in,
	// such as a doCatch outside of a doTry.
	ErrInvalidParent = errors.New("the node can not be added to this parent")
	// ErrCycle is returned when a node would become its own ancestor.
	ErrCycle = errors.New("the node can not be added below itself")
	// ErrDuplicateFinally is returned when a doTry gets a second doFinally.
	ErrDuplicateFinally = errors.New("doTry can only have one doFinally")
	// ErrFinallyMustBeLast is returned when an output is added to a doTry after its doFinally.
	ErrFinallyMustBeLast = errors.New("doFinally must be the last output of doTry")
	// ErrCatchOrder is returned when a regular output is added to a doTry after a doCatch.
	ErrCatchOrder = errors.New("regular outputs must be added before doCatch")
	// ErrDuplicateFallback is returned when a circuitBreaker gets a second onFallback.
	ErrDuplicateFallback = errors.New("circuitBreaker can only have one onFallback")
	// ErrFallbackMustBeLast is returned when an output is added to a circuitBreaker after its onFallback.
	ErrFallbackMustBeLast = errors.New("onFallback must be the last output of circuitBreaker")
	// ErrMultipleTransacted is returned when a route declares more than one transacted.
	ErrMultipleTransacted = errors.New("the route can only have one transacted defined")
	// ErrNotTransactedPolicy is returned when a transacted node gets a non transactional policy.
	ErrNotTransactedPolicy = errors.New("the policy is not a transacted policy")
	// ErrRouteNoInput is returned when a route has no input.
	ErrRouteNoInput = errors.New("route has no inputs")
	// ErrRouteNoOutput is returned when a route has no outputs.
	ErrRouteNoOutput = errors.New("route has no outputs")
	// ErrDuplicateId is returned when two nodes share a custom id.
	ErrDuplicateId = errors.New("duplicate id detected")
	// ErrFrozen is returned when mutating a route after it was frozen.
	ErrFrozen = errors.New("the route is frozen and can not be modified")
	// ErrSharedNode is returned when a rewrite would change a node a route shares with its template.
	ErrSharedNode = errors.New("node is shared with a route template")
	// ErrBuilderState is returned when a fluent builder call does not fit the current block.
	ErrBuilderState = errors.New("invalid builder state")
)

// Lookup failures. Surfaced to the caller as configuration errors.
// 查找失败错误
var (
	ErrRouteNotFound         = errors.New("route not found")
	ErrTemplateNotFound      = errors.New("route template not found")
	ErrBeanNotFound          = errors.New("bean not found in registry")
	ErrErrorTypeNotFound     = errors.New("error type not found")
	ErrLanguageNotFound      = errors.New("expression language not found")
	ErrNodeTypeNotFound      = errors.New("node type not found")
	ErrMissingParameter      = errors.New("route template parameter not provided")
	ErrDuplicateRoute        = errors.New("route already exists")
	ErrDuplicateTemplate     = errors.New("route template already exists")
	ErrDslEmpty              = errors.New("dsl can not empty")
	ErrInvalidExpression     = errors.New("invalid expression")
	ErrInvalidRoutePolicy    = errors.New("invalid route policy")
	ErrUnexpectedBeanType    = errors.New("bean has unexpected type")
	ErrNodeIdFactoryRequired = errors.New("node id factory is required")
)
