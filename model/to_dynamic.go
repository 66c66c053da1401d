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

// ToDynamicDefinition sends the exchange to an endpoint computed per exchange. The
// uri may contain expressions, such as `http:${header.host}/orders`.
// ToDynamicDefinition 发送消息到动态计算的端点
type ToDynamicDefinition struct {
	noOutputs
	endpointRef
	pattern types.ExchangePattern
	// CacheSize 端点缓存大小，0表示使用默认值，-1表示关闭缓存
	CacheSize int
	// IgnoreInvalidEndpoint 是否忽略无效端点
	IgnoreInvalidEndpoint types.OptionalBool
	// AllowOptimisedComponents 是否允许优化的组件
	AllowOptimisedComponents types.OptionalBool
	// AutoStartComponents 是否自动启动组件
	AutoStartComponents types.OptionalBool
}

// NewToDynamic creates a dynamic send node for uri.
func NewToDynamic(uri string) *ToDynamicDefinition {
	d := &ToDynamicDefinition{}
	d.init(d)
	d.SetUri(uri)
	return d
}

func (d *ToDynamicDefinition) ShortName() string {
	return types.NodeToDynamic
}

func (d *ToDynamicDefinition) New() Definition {
	return NewToDynamic("")
}

func (d *ToDynamicDefinition) GetPattern() types.ExchangePattern {
	return d.pattern
}

func (d *ToDynamicDefinition) SetPattern(pattern types.ExchangePattern) {
	d.pattern = pattern
}
