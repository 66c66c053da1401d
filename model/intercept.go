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
	"github.com/rulego/routedsl/api/types"
)

// Interceptor is implemented by the intercept variants. They are abstract: the
// compiler injects them at defined points instead of running them in line.
// Interceptor 拦截器节点，由编译器在特定位置注入
type Interceptor interface {
	Definition
	// AfterPropertiesSet moves every output following a leading when guard into that
	// guard. It does nothing when there is no leading guard or nothing follows it.
	AfterPropertiesSet() error
}

// InterceptDefinition intercepts every exchange before each processing step of the
// route.
// InterceptDefinition 拦截路由中每个处理步骤
type InterceptDefinition struct {
	withOutputs
}

// NewIntercept creates an intercept.
func NewIntercept() *InterceptDefinition {
	d := &InterceptDefinition{}
	d.init(d)
	return d
}

func (d *InterceptDefinition) ShortName() string {
	return types.NodeIntercept
}

func (d *InterceptDefinition) Label() string {
	return types.NodeIntercept
}

func (d *InterceptDefinition) New() Definition {
	return NewIntercept()
}

func (d *InterceptDefinition) IsAbstract() bool {
	return true
}

func (d *InterceptDefinition) IsTopLevelOnly() bool {
	return true
}

// When appends a guard. After AfterPropertiesSet the guard owns every output
// added after it.
func (d *InterceptDefinition) When(predicate types.Expression) error {
	return d.AddOutput(NewWhen(predicate))
}

// GetWhen returns the leading guard, nil when the first output is not a guard.
func (d *InterceptDefinition) GetWhen() *WhenDefinition {
	if len(d.outputs) == 0 {
		return nil
	}
	w, _ := d.outputs[0].(*WhenDefinition)
	return w
}

func (d *InterceptDefinition) AfterPropertiesSet() error {
	return redistribute(d.self, &d.outputs)
}

// redistribute implements AfterPropertiesSet for every intercept variant.
func redistribute(self Container, outputs *[]Definition) error {
	if len(*outputs) < 2 {
		return nil
	}
	guard, ok := (*outputs)[0].(*WhenDefinition)
	if !ok {
		return nil
	}
	if isFrozen(self) {
		return types.ErrFrozen
	}
	rest := append([]Definition(nil), (*outputs)[1:]...)
	current := guard.outputs
	for i, out := range rest {
		if err := checkAdd(guard, append(current[:len(current):len(current)], rest[:i]...), out, false); err != nil {
			return err
		}
	}
	for _, out := range rest {
		guard.outputs = append(guard.outputs, out)
		out.node().parent = guard
	}
	*outputs = (*outputs)[:1:1]
	return nil
}

// InterceptFromDefinition intercepts exchanges entering routes whose input matches
// Uri. An empty Uri matches every route.
// InterceptFromDefinition 拦截输入端点匹配Uri的路由
type InterceptFromDefinition struct {
	InterceptDefinition
	// Uri 端点匹配模式，支持通配符与正则表达式
	Uri string
}

// NewInterceptFrom creates an interceptFrom for the uri pattern.
func NewInterceptFrom(uri string) *InterceptFromDefinition {
	d := &InterceptFromDefinition{Uri: uri}
	d.init(d)
	return d
}

func (d *InterceptFromDefinition) ShortName() string {
	return types.NodeInterceptFrom
}

func (d *InterceptFromDefinition) Label() string {
	return d.Uri
}

func (d *InterceptFromDefinition) New() Definition {
	return NewInterceptFrom("")
}

// InterceptSendToEndpointDefinition intercepts exchanges sent to endpoints matching
// Uri.
// InterceptSendToEndpointDefinition 拦截发送到匹配Uri端点的消息
type InterceptSendToEndpointDefinition struct {
	InterceptDefinition
	// Uri 端点匹配模式
	Uri string
	// SkipSendToOriginalEndpoint 拦截后是否跳过原端点
	SkipSendToOriginalEndpoint types.OptionalBool
	// AfterUri 原端点处理完成后再发送到的端点
	AfterUri string
}

// NewInterceptSendToEndpoint creates an interceptSendToEndpoint for the uri pattern.
func NewInterceptSendToEndpoint(uri string) *InterceptSendToEndpointDefinition {
	d := &InterceptSendToEndpointDefinition{Uri: uri}
	d.init(d)
	return d
}

func (d *InterceptSendToEndpointDefinition) ShortName() string {
	return types.NodeInterceptSendToEndpoint
}

func (d *InterceptSendToEndpointDefinition) Label() string {
	return d.Uri
}

func (d *InterceptSendToEndpointDefinition) New() Definition {
	return NewInterceptSendToEndpoint("")
}
