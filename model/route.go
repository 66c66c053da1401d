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
	"strings"
	"time"

	"github.com/rulego/routedsl/api/types"
)

// DataType declares the message type a route expects or produces.
type DataType struct {
	// Urn 数据类型标识，例如：json、java:com.foo.Order
	Urn string
	// Validate 是否校验消息类型
	Validate types.OptionalBool
}

// RouteDefinition is the top level aggregate: one input, the ordered outputs and
// the route level configuration. Attributes are plain fields; structural changes go
// through the Container methods, which honour Freeze.
// RouteDefinition 路由定义：一个输入、有序输出以及路由级配置
type RouteDefinition struct {
	// Group 路由分组
	Group string
	// Description 路由描述
	Description string
	// NodePrefixId 自动生成节点ID时使用的前缀
	NodePrefixId string
	// StreamCache 是否开启流缓存
	StreamCache types.OptionalBool
	// Trace 是否开启跟踪
	Trace types.OptionalBool
	// MessageHistory 是否记录消息历史
	MessageHistory types.OptionalBool
	// LogMask 是否对日志中的敏感信息脱敏
	LogMask types.OptionalBool
	// AutoStartup 是否自动启动，未设置时默认启动
	AutoStartup types.OptionalBool
	// Delayer 每个处理步骤之间的延迟
	Delayer time.Duration
	// StartupOrder 启动顺序，nil表示未设置
	StartupOrder *int
	// RoutePolicies 路由策略实例
	RoutePolicies []types.RoutePolicy
	// RoutePolicyRef 路由策略引用，多个使用逗号分隔
	RoutePolicyRef string
	// ShutdownRoute 关闭路由方式
	ShutdownRoute types.ShutdownRoute
	// ShutdownRunningTask 关闭时运行中任务的处理方式
	ShutdownRunningTask types.ShutdownRunningTask
	// ErrorHandlerRef 错误处理器引用
	ErrorHandlerRef string
	// ErrorHandlerFactory 错误处理器工厂，优先于ErrorHandlerRef
	ErrorHandlerFactory types.ErrorHandlerFactory
	// InputType 输入数据类型约束
	InputType *DataType
	// OutputType 输出数据类型约束
	OutputType *DataType
	// Properties 路由级属性
	Properties map[string]string
	// TemplateParameters 从模板创建路由时使用的参数绑定
	TemplateParameters map[string]string
	// Precondition 路由前置条件，不成立时不创建路由
	Precondition string

	id       string
	customId bool
	input    *FromDefinition
	outputs  []Definition
	prepared bool
	frozen   bool
	// template is the template the route was materialized from
	template *RouteTemplateDefinition
}

// NewRoute creates an empty route.
func NewRoute() *RouteDefinition {
	return &RouteDefinition{}
}

// NewRouteFrom creates a route with an input for uri.
func NewRouteFrom(uri string) *RouteDefinition {
	r := NewRoute()
	_ = r.SetInput(NewFrom(uri))
	return r
}

func (r *RouteDefinition) ShortName() string {
	return types.NodeRoute
}

func (r *RouteDefinition) GetId() string {
	return r.id
}

func (r *RouteDefinition) SetId(id string) {
	r.id = id
	r.customId = id != ""
}

func (r *RouteDefinition) HasCustomId() bool {
	return r.customId
}

// IdOrCreate returns the route id, generating one with factory when none is set.
func (r *RouteDefinition) IdOrCreate(factory types.NodeIdFactory) string {
	if r.id == "" && factory != nil {
		r.id = factory.CreateId(types.NodeRoute)
		r.customId = false
	}
	return r.id
}

// GetInput returns the input, nil when none was set.
func (r *RouteDefinition) GetInput() *FromDefinition {
	return r.input
}

// SetInput replaces the input.
func (r *RouteDefinition) SetInput(input *FromDefinition) error {
	if r.frozen {
		return types.ErrFrozen
	}
	if r.input != nil && r.input.parent == Container(r) {
		r.input.parent = nil
	}
	r.input = input
	if input != nil {
		input.parent = r
	}
	return nil
}

// GetEndpointUri returns the uri of the input, empty when there is none.
func (r *RouteDefinition) GetEndpointUri() string {
	if r.input == nil {
		return ""
	}
	return r.input.GetEndpointUri()
}

func (r *RouteDefinition) Outputs() []Definition {
	return r.outputs
}

func (r *RouteDefinition) AddOutput(out Definition) error {
	return addOutput(r, &r.outputs, out, true)
}

func (r *RouteDefinition) ClearOutputs() {
	clearOutputs(r, &r.outputs)
}

func (r *RouteDefinition) RemoveOutput(out Definition) bool {
	return removeOutput(r, &r.outputs, out)
}

func (r *RouteDefinition) SetOutputs(outs []Definition) error {
	return setOutputs(r, &r.outputs, outs, true)
}

// Property sets a route scoped property.
func (r *RouteDefinition) Property(key, value string) *RouteDefinition {
	if r.Properties == nil {
		r.Properties = make(map[string]string)
	}
	r.Properties[key] = value
	return r
}

// IsAutoStartup reports whether the route starts with the context; unset means true.
func (r *RouteDefinition) IsAutoStartup() bool {
	return r.AutoStartup.Get(true)
}

// IsPrepared reports whether the route went through preparation.
func (r *RouteDefinition) IsPrepared() bool {
	return r.prepared
}

// MarkPrepared records that preparation ran, so it is not applied again.
func (r *RouteDefinition) MarkPrepared() {
	r.prepared = true
}

// MarkUnprepared allows preparation to run again, for example after a builder
// appended outputs.
func (r *RouteDefinition) MarkUnprepared() {
	r.prepared = false
}

// Freeze makes the structure of the route read-only: every later structural
// mutation of the route or of any node below it fails with types.ErrFrozen.
//
// Nodes the route shares with its route template are owned by the template, so
// the template is frozen too. Routes materialized from it still get their own
// structure but share the frozen nodes.
func (r *RouteDefinition) Freeze() {
	r.frozen = true
	if t := r.SharedTemplate(); t != nil {
		t.frozen = true
	}
}

// SharedTemplate returns the route template owning some of the outputs of this
// route, nil when the route owns all of them.
// SharedTemplate 返回与本路由共享输出节点的路由模板
func (r *RouteDefinition) SharedTemplate() *RouteTemplateDefinition {
	if r.template == nil {
		return nil
	}
	owner := Container(&r.template.RouteDefinition)
	for _, out := range r.outputs {
		if out.Parent() == owner {
			return r.template
		}
	}
	return nil
}

// SyncTemplateOutputs re-reads the outputs shared with the route template after
// the template was rewritten. Shared nodes keep the template order, and nodes no
// longer at the top of the template are dropped. Outputs owned by the route follow
// them.
func (r *RouteDefinition) SyncTemplateOutputs() {
	t := r.SharedTemplate()
	if t == nil {
		return
	}
	listed := make(map[Definition]bool, len(r.outputs))
	var own []Definition
	for _, out := range r.outputs {
		listed[out] = true
		if out.Parent() == Container(r) {
			own = append(own, out)
		}
	}
	var outputs []Definition
	for _, out := range t.outputs {
		if listed[out] {
			outputs = append(outputs, out)
		}
	}
	r.outputs = append(outputs, own...)
}

func (r *RouteDefinition) IsFrozen() bool {
	return r.frozen
}

func (r *RouteDefinition) Label() string {
	return r.GetEndpointUri()
}

// String renders Route(id)[uri -> [outputs]].
func (r *RouteDefinition) String() string {
	var outs []string
	for _, out := range r.outputs {
		outs = append(outs, String(out))
	}
	if r.id != "" {
		return fmt.Sprintf("Route(%s)[%s -> [%s]]", r.id, r.GetEndpointUri(), strings.Join(outs, ", "))
	}
	return fmt.Sprintf("Route[%s -> [%s]]", r.GetEndpointUri(), strings.Join(outs, ", "))
}
