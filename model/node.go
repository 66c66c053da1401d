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

// Package model provides the route definition tree: the node variants of the
// routing DSL, the output containers that assemble them, the route and route
// template aggregates, and a fluent builder.
//
// Package model 提供路由定义树：路由DSL的各种节点、组装节点的输出容器、
// 路由与路由模板聚合以及流式构建器。
//
// A tree is built once, prepared by the engine package and then handed to an
// external compiler. Nothing here is safe for concurrent mutation; each route is
// expected to be built by a single goroutine and treated as read-only afterwards.
//
// Usage / 使用：
//
//	route, err := model.From("direct:start").
//		RouteId("orders").
//		Filter(model.Expr("msg.amount > 100")).
//		To("log:big").
//		End().
//		To("mock:result").
//		Build()
package model

import (
	"strings"
	"sync/atomic"

	"github.com/rulego/routedsl/api/types"
)

// Container is a node that owns an ordered sequence of child nodes. The order is
// the execution order.
// Container 输出容器，拥有有序子节点列表，顺序即执行顺序
type Container interface {
	// Outputs returns the live ordered children. Mutate only through the container.
	Outputs() []Definition
	// AddOutput appends out and makes this container its parent. If out already has a
	// parent it is moved, never shared.
	AddOutput(out Definition) error
	// ClearOutputs removes all children and detaches them.
	ClearOutputs()
	// RemoveOutput detaches out, reporting whether it was a child.
	RemoveOutput(out Definition) bool
	// SetOutputs replaces all children.
	SetOutputs(outs []Definition) error
}

// Definition is implemented by every node variant of a route tree. The set of
// variants is closed: only this package can implement it.
// Definition 路由树节点接口，节点类型集合是封闭的
type Definition interface {
	Container
	// ShortName returns the fixed variant name, also used as the DSL tag.
	ShortName() string
	// Label returns a human readable description, which may embed child state.
	Label() string
	// GetId returns the node id, empty when none was assigned yet.
	GetId() string
	// SetId sets a custom id.
	SetId(id string)
	// HasCustomId reports whether the id was set by the user rather than generated.
	HasCustomId() bool
	// IdOrCreate returns the id, generating one with factory when none is set.
	IdOrCreate(factory types.NodeIdFactory) string
	GetDescription() string
	SetDescription(description string)
	// Index returns the creation sequence number of the node.
	Index() int
	// Parent returns the owning container, nil for a detached node.
	Parent() Container
	// IsOutputSupported reports whether the node can have children.
	IsOutputSupported() bool
	// IsAbstract reports whether the node is excluded from the linear flow and only
	// used by specific compiler passes, such as interceptors.
	IsAbstract() bool
	// IsTopLevelOnly reports whether the node must be a direct child of the route.
	IsTopLevelOnly() bool
	// IsWrappingEntireOutput reports whether the compiler must treat the children as
	// a single composed unit.
	IsWrappingEntireOutput() bool
	GetDisabled() types.OptionalBool
	SetDisabled(disabled types.OptionalBool)
	GetInheritErrorHandler() types.OptionalBool
	SetInheritErrorHandler(inherit types.OptionalBool)
	// New returns a fresh node of the same variant, used by the node registry.
	New() Definition

	node() *nodeBase
}

var nodeCounter int64

// nodeBase holds the state shared by all variants.
type nodeBase struct {
	self                Definition
	id                  string
	customId            bool
	description         string
	parent              Container
	index               int
	disabled            types.OptionalBool
	inheritErrorHandler types.OptionalBool
}

func (n *nodeBase) init(self Definition) {
	n.self = self
	n.index = int(atomic.AddInt64(&nodeCounter, 1))
}

func (n *nodeBase) node() *nodeBase {
	return n
}

func (n *nodeBase) GetId() string {
	return n.id
}

func (n *nodeBase) SetId(id string) {
	n.id = id
	n.customId = id != ""
}

func (n *nodeBase) HasCustomId() bool {
	return n.customId
}

func (n *nodeBase) IdOrCreate(factory types.NodeIdFactory) string {
	if n.id == "" && factory != nil {
		n.id = factory.CreateId(n.self.ShortName())
		n.customId = false
	}
	return n.id
}

func (n *nodeBase) GetDescription() string {
	return n.description
}

func (n *nodeBase) SetDescription(description string) {
	n.description = description
}

func (n *nodeBase) Index() int {
	return n.index
}

func (n *nodeBase) Parent() Container {
	return n.parent
}

func (n *nodeBase) IsAbstract() bool {
	return false
}

func (n *nodeBase) IsTopLevelOnly() bool {
	return false
}

func (n *nodeBase) IsWrappingEntireOutput() bool {
	return false
}

func (n *nodeBase) GetDisabled() types.OptionalBool {
	return n.disabled
}

func (n *nodeBase) SetDisabled(disabled types.OptionalBool) {
	n.disabled = disabled
}

func (n *nodeBase) GetInheritErrorHandler() types.OptionalBool {
	return n.inheritErrorHandler
}

func (n *nodeBase) SetInheritErrorHandler(inherit types.OptionalBool) {
	n.inheritErrorHandler = inherit
}

// noOutputs is embedded by leaf variants. The accessor is always empty and every
// mutation is rejected.
type noOutputs struct {
	nodeBase
}

func (n *noOutputs) Outputs() []Definition {
	return []Definition{}
}

func (n *noOutputs) AddOutput(out Definition) error {
	return types.ErrOutputNotSupported
}

func (n *noOutputs) ClearOutputs() {
}

func (n *noOutputs) RemoveOutput(out Definition) bool {
	return false
}

func (n *noOutputs) SetOutputs(outs []Definition) error {
	if len(outs) == 0 {
		return nil
	}
	return types.ErrOutputNotSupported
}

func (n *noOutputs) IsOutputSupported() bool {
	return false
}

// withOutputs is embedded by container variants.
type withOutputs struct {
	nodeBase
	outputs []Definition
}

func (n *withOutputs) Outputs() []Definition {
	return n.outputs
}

func (n *withOutputs) AddOutput(out Definition) error {
	return addOutput(n.self, &n.outputs, out, false)
}

func (n *withOutputs) ClearOutputs() {
	clearOutputs(n.self, &n.outputs)
}

func (n *withOutputs) RemoveOutput(out Definition) bool {
	return removeOutput(n.self, &n.outputs, out)
}

func (n *withOutputs) SetOutputs(outs []Definition) error {
	return setOutputs(n.self, &n.outputs, outs, false)
}

func (n *withOutputs) IsOutputSupported() bool {
	return true
}

// labelOf joins the labels of nodes, used by variants whose label embeds children.
func labelOf(outputs []Definition) string {
	var labels []string
	for _, out := range outputs {
		labels = append(labels, out.Label())
	}
	return strings.Join(labels, ",")
}

// String renders a node as shortName[label] for diagnostics.
func String(d Definition) string {
	if d == nil {
		return ""
	}
	label := d.Label()
	if label == "" || label == d.ShortName() {
		return d.ShortName()
	}
	if _, ok := d.(namedLabel); ok {
		return label
	}
	return d.ShortName() + "[" + label + "]"
}

// namedLabel is implemented by variants whose label already starts with their name.
type namedLabel interface {
	labelHasName()
}
