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

// Package types defines the collaborator interfaces, configuration and shared value
// types used by the route definition model.
//
// Package types 定义路由定义模型使用的协作者接口、配置以及共享的值类型。
//
// Nothing in this package evaluates expressions, resolves endpoints or executes
// exchanges. Those concerns belong to the runtime that compiles a prepared route;
// the interfaces here are the narrow views the definition tree needs of them.
package types

// Short names of the node variants. The short name doubles as the tag used by the
// declarative DSL.
// 节点类型短名称，同时作为声明式DSL中的节点标签
const (
	NodeRoute                   = "route"
	NodeRouteTemplate           = "routeTemplate"
	NodeFrom                    = "from"
	NodeTo                      = "to"
	NodeToDynamic               = "toD"
	NodeTry                     = "doTry"
	NodeCatch                   = "doCatch"
	NodeFinally                 = "doFinally"
	NodeFilter                  = "filter"
	NodeWhen                    = "when"
	NodeDelay                   = "delay"
	NodeLoop                    = "loop"
	NodeIntercept               = "intercept"
	NodeInterceptFrom           = "interceptFrom"
	NodeInterceptSendToEndpoint = "interceptSendToEndpoint"
	NodePolicy                  = "policy"
	NodeTransacted              = "transacted"
	NodeSample                  = "sample"
	NodeThrowException          = "throwException"
	NodeTransform               = "transform"
	NodeValidate                = "validate"
	NodeSetHeader               = "setHeader"
	NodeSetProperty             = "setProperty"
	NodeCircuitBreaker          = "circuitBreaker"
	NodeOnFallback              = "onFallback"
	NodeStep                    = "step"
)

// ExchangePattern is the message exchange pattern a send node uses.
type ExchangePattern string

const (
	InOnly ExchangePattern = "InOnly"
	InOut  ExchangePattern = "InOut"
)

// ShutdownRoute controls when a route is stopped during graceful shutdown.
type ShutdownRoute string

const (
	ShutdownRouteDefault ShutdownRoute = "Default"
	ShutdownRouteDefer   ShutdownRoute = "Defer"
)

// ShutdownRunningTask controls how in-flight work of a route is completed on shutdown.
type ShutdownRunningTask string

const (
	CompleteCurrentTaskOnly ShutdownRunningTask = "CompleteCurrentTaskOnly"
	CompleteAllTasks        ShutdownRunningTask = "CompleteAllTasks"
)

// Configuration 节点配置类型，声明式DSL中节点的配置参数
type Configuration map[string]interface{}

// Exchange is the in-flight message owned by the runtime. The definition model only
// passes it through to predicates, it never inspects it.
type Exchange interface{}
