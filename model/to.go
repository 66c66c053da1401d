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

// ToDefinition sends the exchange to a static endpoint.
// ToDefinition 发送消息到静态端点
type ToDefinition struct {
	noOutputs
	endpointRef
	// pattern 消息交换模式，为空则使用端点默认值
	pattern types.ExchangePattern
}

// NewTo creates a send node for uri.
func NewTo(uri string) *ToDefinition {
	d := &ToDefinition{}
	d.init(d)
	d.SetUri(uri)
	return d
}

// NewToEndpoint creates a send node for an already resolved endpoint.
func NewToEndpoint(endpoint types.Endpoint) *ToDefinition {
	d := NewTo("")
	d.SetEndpoint(endpoint)
	return d
}

// NewToBuilder creates a send node for an endpoint builder.
func NewToBuilder(builder types.EndpointBuilder) *ToDefinition {
	d := NewTo("")
	d.SetEndpointBuilder(builder)
	return d
}

func (d *ToDefinition) ShortName() string {
	return types.NodeTo
}

func (d *ToDefinition) New() Definition {
	return NewTo("")
}

func (d *ToDefinition) GetPattern() types.ExchangePattern {
	return d.pattern
}

func (d *ToDefinition) SetPattern(pattern types.ExchangePattern) {
	d.pattern = pattern
}
