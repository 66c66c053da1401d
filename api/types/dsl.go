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

// RoutesDsl 声明式路由定义，包含路由和路由模板
type RoutesDsl struct {
	//路由列表
	Routes []RouteDsl `json:"routes,omitempty" yaml:"routes,omitempty"`
	//路由模板列表
	RouteTemplates []RouteTemplateDsl `json:"routeTemplates,omitempty" yaml:"routeTemplates,omitempty"`
}

// RouteDsl 路由定义
type RouteDsl struct {
	//路由ID
	Id string `json:"id,omitempty" yaml:"id,omitempty"`
	//路由分组
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
	//路由描述
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	//节点ID前缀
	NodePrefixId string `json:"nodePrefixId,omitempty" yaml:"nodePrefixId,omitempty"`
	//路由输入节点，类型固定为 from
	From *NodeDsl `json:"from,omitempty" yaml:"from,omitempty"`
	//流缓存
	StreamCache OptionalBool `json:"streamCache,omitempty" yaml:"streamCache,omitempty"`
	//跟踪
	Trace OptionalBool `json:"trace,omitempty" yaml:"trace,omitempty"`
	//消息历史
	MessageHistory OptionalBool `json:"messageHistory,omitempty" yaml:"messageHistory,omitempty"`
	//日志脱敏
	LogMask OptionalBool `json:"logMask,omitempty" yaml:"logMask,omitempty"`
	//是否自动启动
	AutoStartup OptionalBool `json:"autoStartup,omitempty" yaml:"autoStartup,omitempty"`
	//每个节点之间的延迟，单位毫秒，0表示未设置
	Delayer int64 `json:"delayer,omitempty" yaml:"delayer,omitempty"`
	//启动顺序
	StartupOrder *int `json:"startupOrder,omitempty" yaml:"startupOrder,omitempty"`
	//路由策略引用，多个用逗号分隔
	RoutePolicyRef string `json:"routePolicyRef,omitempty" yaml:"routePolicyRef,omitempty"`
	//关闭策略
	ShutdownRoute string `json:"shutdownRoute,omitempty" yaml:"shutdownRoute,omitempty"`
	//关闭时运行中任务的处理方式
	ShutdownRunningTask string `json:"shutdownRunningTask,omitempty" yaml:"shutdownRunningTask,omitempty"`
	//错误处理器引用
	ErrorHandlerRef string `json:"errorHandlerRef,omitempty" yaml:"errorHandlerRef,omitempty"`
	//输入类型约束
	InputType *DataTypeDsl `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	//输出类型约束
	OutputType *DataTypeDsl `json:"outputType,omitempty" yaml:"outputType,omitempty"`
	//路由级别属性
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	//前置条件
	Precondition string `json:"precondition,omitempty" yaml:"precondition,omitempty"`
	//路由处理步骤
	Steps []NodeDsl `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// RouteTemplateDsl 路由模板定义
type RouteTemplateDsl struct {
	RouteDsl `yaml:",inline"`
	//模板参数
	Parameters []ParameterDsl `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// ParameterDsl 模板参数定义
type ParameterDsl struct {
	Name         string `json:"name" yaml:"name"`
	DefaultValue string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	//是否必填，未设置时为必填
	Required OptionalBool `json:"required,omitempty" yaml:"required,omitempty"`
}

// DataTypeDsl 输入输出类型约束
type DataTypeDsl struct {
	Urn      string `json:"urn" yaml:"urn"`
	Validate bool   `json:"validate,omitempty" yaml:"validate,omitempty"`
}

// NodeDsl 节点定义
type NodeDsl struct {
	//节点类型，对应节点短名称，例如：to、filter、doTry
	Type string `json:"type" yaml:"type"`
	//节点ID，为空时由 NodeIdFactory 生成
	Id string `json:"id,omitempty" yaml:"id,omitempty"`
	//节点描述
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	//是否禁用
	Disabled OptionalBool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	//是否继承路由错误处理器
	InheritErrorHandler OptionalBool `json:"inheritErrorHandler,omitempty" yaml:"inheritErrorHandler,omitempty"`
	//节点配置参数，具体内容取决于节点类型。表达式使用 {"language":"expr","expression":"..."} 表示
	Configuration Configuration `json:"configuration,omitempty" yaml:"configuration,omitempty"`
	//子节点
	Outputs []NodeDsl `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// ExpressionDsl 表达式定义
type ExpressionDsl struct {
	Language   string `json:"language" yaml:"language" mapstructure:"language"`
	Expression string `json:"expression" yaml:"expression" mapstructure:"expression"`
}

// Parser 声明式DSL解析器
type Parser interface {
	// DecodeRoutes 解析路由DSL
	DecodeRoutes(data []byte) (RoutesDsl, error)
	// EncodeRoutes 把路由DSL编码成字节
	EncodeRoutes(def RoutesDsl) ([]byte, error)
}

// NodeIdFactory 节点ID生成器
type NodeIdFactory interface {
	// CreateId 根据节点短名称生成ID
	CreateId(shortName string) string
}
