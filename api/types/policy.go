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

// Policy wraps a group of processing steps, for example a security or
// transactional boundary.
// Policy 包装一组处理步骤的策略，例如安全或事务边界
type Policy interface {
	// PolicyName returns a short name used in labels and diagnostics.
	PolicyName() string
}

// TransactedPolicy is a Policy that demarcates a transaction.
// TransactedPolicy 事务策略
type TransactedPolicy interface {
	Policy
	// PropagationBehavior returns the transaction propagation, such as PROPAGATION_REQUIRED.
	PropagationBehavior() string
}

// RoutePolicy controls the lifecycle of a whole route.
// RoutePolicy 路由级别策略，控制整个路由的生命周期
type RoutePolicy interface {
	// RoutePolicyName returns a short name used in diagnostics.
	RoutePolicyName() string
}

// Validator is implemented by collaborators that can check their own configuration
// before the route is handed to the compiler.
type Validator interface {
	Validate() error
}

// ErrorHandlerFactory creates the error handler of a route.
// ErrorHandlerFactory 路由错误处理器工厂
type ErrorHandlerFactory interface {
	// ErrorHandlerType returns the kind of error handler, such as "deadLetterChannel".
	ErrorHandlerType() string
}

// BeanRegistry is the dependency-injection collaborator used to look up policies,
// error handlers and other referenced objects by name.
// BeanRegistry 依赖注入注册表，通过名称查找引用对象
type BeanRegistry interface {
	Lookup(name string) (interface{}, bool)
}

// MapBeanRegistry is a BeanRegistry backed by a map.
type MapBeanRegistry map[string]interface{}

func (r MapBeanRegistry) Lookup(name string) (interface{}, bool) {
	v, ok := r[name]
	return v, ok
}
