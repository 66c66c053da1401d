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

package engine

import (
	"fmt"
	"time"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/model"
	"github.com/rulego/routedsl/utils/maps"
)

// Configuration keys of the declarative DSL.
const (
	KeyUri                        = "uri"
	KeyPattern                    = "pattern"
	KeyExpression                 = "expression"
	KeyExceptions                 = "exceptions"
	KeyOnWhen                     = "onWhen"
	KeyStatusPropertyName         = "statusPropertyName"
	KeyAsyncDelayed               = "asyncDelayed"
	KeyCallerRunsWhenRejected     = "callerRunsWhenRejected"
	KeyCopy                       = "copy"
	KeyDoWhile                    = "doWhile"
	KeyBreakOnShutdown            = "breakOnShutdown"
	KeyCacheSize                  = "cacheSize"
	KeyIgnoreInvalidEndpoint      = "ignoreInvalidEndpoint"
	KeyAllowOptimisedComponents   = "allowOptimisedComponents"
	KeyAutoStartComponents        = "autoStartComponents"
	KeySkipSendToOriginalEndpoint = "skipSendToOriginalEndpoint"
	KeyAfterUri                   = "afterUri"
	KeyRef                        = "ref"
	KeySamplePeriod               = "samplePeriod"
	KeyMessageFrequency           = "messageFrequency"
	KeyExceptionType              = "exceptionType"
	KeyMessage                    = "message"
	KeyFromType                   = "fromType"
	KeyToType                     = "toType"
	KeyPredicateExceptionFactory  = "predicateExceptionFactory"
	KeyName                       = "name"
	KeyConfigurationRef           = "configurationRef"
	KeyFallbackViaNetwork         = "fallbackViaNetwork"
)

// nodeConfiguration is the union of the configuration keys of every node type.
// Each type reads the keys it knows and ignores the others.
type nodeConfiguration struct {
	Uri                        string             `mapstructure:"uri"`
	Pattern                    string             `mapstructure:"pattern"`
	Expression                 interface{}        `mapstructure:"expression"`
	Exceptions                 []string           `mapstructure:"exceptions"`
	OnWhen                     interface{}        `mapstructure:"onWhen"`
	StatusPropertyName         string             `mapstructure:"statusPropertyName"`
	AsyncDelayed               types.OptionalBool `mapstructure:"asyncDelayed"`
	CallerRunsWhenRejected     types.OptionalBool `mapstructure:"callerRunsWhenRejected"`
	Copy                       types.OptionalBool `mapstructure:"copy"`
	DoWhile                    types.OptionalBool `mapstructure:"doWhile"`
	BreakOnShutdown            types.OptionalBool `mapstructure:"breakOnShutdown"`
	CacheSize                  int                `mapstructure:"cacheSize"`
	IgnoreInvalidEndpoint      types.OptionalBool `mapstructure:"ignoreInvalidEndpoint"`
	AllowOptimisedComponents   types.OptionalBool `mapstructure:"allowOptimisedComponents"`
	AutoStartComponents        types.OptionalBool `mapstructure:"autoStartComponents"`
	SkipSendToOriginalEndpoint types.OptionalBool `mapstructure:"skipSendToOriginalEndpoint"`
	AfterUri                   string             `mapstructure:"afterUri"`
	Ref                        string             `mapstructure:"ref"`
	SamplePeriod               time.Duration      `mapstructure:"samplePeriod"`
	MessageFrequency           int64              `mapstructure:"messageFrequency"`
	ExceptionType              string             `mapstructure:"exceptionType"`
	Message                    string             `mapstructure:"message"`
	FromType                   string             `mapstructure:"fromType"`
	ToType                     string             `mapstructure:"toType"`
	PredicateExceptionFactory  string             `mapstructure:"predicateExceptionFactory"`
	Name                       string             `mapstructure:"name"`
	ConfigurationRef           string             `mapstructure:"configurationRef"`
	FallbackViaNetwork         types.OptionalBool `mapstructure:"fallbackViaNetwork"`
}

// ToDefinition converts the declarative form into routes and route templates,
// creating nodes through model.Registry.
// ToDefinition 把声明式DSL转换成路由和路由模板定义
func ToDefinition(def types.RoutesDsl) ([]*model.RouteDefinition, []*model.RouteTemplateDefinition, error) {
	var routes []*model.RouteDefinition
	for _, item := range def.Routes {
		route, err := ToRouteDefinition(item)
		if err != nil {
			return nil, nil, err
		}
		routes = append(routes, route)
	}
	var templates []*model.RouteTemplateDefinition
	for _, item := range def.RouteTemplates {
		template, err := ToRouteTemplateDefinition(item)
		if err != nil {
			return nil, nil, err
		}
		templates = append(templates, template)
	}
	return routes, templates, nil
}

// ToRouteDefinition converts a single route.
func ToRouteDefinition(def types.RouteDsl) (*model.RouteDefinition, error) {
	route := model.NewRoute()
	if err := fillRoute(route, def); err != nil {
		return nil, err
	}
	return route, nil
}

// ToRouteTemplateDefinition converts a single route template. Parameters are
// required unless they say otherwise.
func ToRouteTemplateDefinition(def types.RouteTemplateDsl) (*model.RouteTemplateDefinition, error) {
	template := model.NewRouteTemplate(def.Id)
	if err := fillRoute(&template.RouteDefinition, def.RouteDsl); err != nil {
		return nil, err
	}
	for _, p := range def.Parameters {
		template.AddTemplateParameter(model.TemplateParameter{
			Name:         p.Name,
			DefaultValue: p.DefaultValue,
			Description:  p.Description,
			Required:     p.Required.Get(true),
		})
	}
	return template, nil
}

func fillRoute(route *model.RouteDefinition, def types.RouteDsl) error {
	if def.Id != "" {
		route.SetId(def.Id)
	}
	route.Group = def.Group
	route.Description = def.Description
	route.NodePrefixId = def.NodePrefixId
	route.StreamCache = def.StreamCache
	route.Trace = def.Trace
	route.MessageHistory = def.MessageHistory
	route.LogMask = def.LogMask
	route.AutoStartup = def.AutoStartup
	route.Delayer = time.Duration(def.Delayer) * time.Millisecond
	route.StartupOrder = def.StartupOrder
	route.RoutePolicyRef = def.RoutePolicyRef
	route.ShutdownRoute = types.ShutdownRoute(def.ShutdownRoute)
	route.ShutdownRunningTask = types.ShutdownRunningTask(def.ShutdownRunningTask)
	route.ErrorHandlerRef = def.ErrorHandlerRef
	route.InputType = toDataType(def.InputType)
	route.OutputType = toDataType(def.OutputType)
	route.Precondition = def.Precondition
	for k, v := range def.Properties {
		route.Property(k, v)
	}
	if def.From != nil {
		if def.From.Type != "" && def.From.Type != types.NodeFrom {
			return fmt.Errorf("%w. route=%s input type=%s", types.ErrInvalidParent, def.Id, def.From.Type)
		}
		var c nodeConfiguration
		if err := maps.Map2Struct(def.From.Configuration, &c); err != nil {
			return fmt.Errorf("route=%s from: %w", def.Id, err)
		}
		from := model.NewFrom(c.Uri)
		fillNode(from, *def.From)
		if err := route.SetInput(from); err != nil {
			return err
		}
	}
	for _, step := range def.Steps {
		node, err := ToNodeDefinition(step)
		if err != nil {
			return fmt.Errorf("route=%s: %w", def.Id, err)
		}
		if err := route.AddOutput(node); err != nil {
			return fmt.Errorf("route=%s: %w", def.Id, err)
		}
	}
	return nil
}

func toDataType(def *types.DataTypeDsl) *model.DataType {
	if def == nil {
		return nil
	}
	t := &model.DataType{Urn: def.Urn}
	if def.Validate {
		t.Validate = types.True
	}
	return t
}

func fillNode(node model.Definition, def types.NodeDsl) {
	if def.Id != "" {
		node.SetId(def.Id)
	}
	node.SetDescription(def.Description)
	node.SetDisabled(def.Disabled)
	node.SetInheritErrorHandler(def.InheritErrorHandler)
}

// ToNodeDefinition converts a node and its outputs.
func ToNodeDefinition(def types.NodeDsl) (model.Definition, error) {
	node, err := model.Registry.NewNode(def.Type)
	if err != nil {
		return nil, err
	}
	fillNode(node, def)
	var c nodeConfiguration
	if err := maps.Map2Struct(def.Configuration, &c); err != nil {
		return nil, fmt.Errorf("node type=%s id=%s: %w", def.Type, def.Id, err)
	}
	if err := configure(node, c); err != nil {
		return nil, fmt.Errorf("node type=%s id=%s: %w", def.Type, def.Id, err)
	}
	for _, item := range def.Outputs {
		out, err := ToNodeDefinition(item)
		if err != nil {
			return nil, err
		}
		if err := node.AddOutput(out); err != nil {
			return nil, fmt.Errorf("node type=%s id=%s: %w", def.Type, def.Id, err)
		}
	}
	return node, nil
}

func configure(node model.Definition, c nodeConfiguration) error {
	if e, ok := node.(model.ExpressionNode); ok && c.Expression != nil {
		expression, err := toExpression(c.Expression)
		if err != nil {
			return err
		}
		e.SetExpression(expression)
	}
	switch n := node.(type) {
	case *model.ToDefinition:
		n.SetUri(c.Uri)
		n.SetPattern(types.ExchangePattern(c.Pattern))
	case *model.ToDynamicDefinition:
		n.SetUri(c.Uri)
		n.SetPattern(types.ExchangePattern(c.Pattern))
		n.CacheSize = c.CacheSize
		n.IgnoreInvalidEndpoint = c.IgnoreInvalidEndpoint
		n.AllowOptimisedComponents = c.AllowOptimisedComponents
		n.AutoStartComponents = c.AutoStartComponents
	case *model.CatchDefinition:
		n.Exception(c.Exceptions...)
		if c.OnWhen != nil {
			onWhen, err := toExpression(c.OnWhen)
			if err != nil {
				return err
			}
			n.SetOnWhen(onWhen)
		}
	case *model.FilterDefinition:
		n.StatusPropertyName = c.StatusPropertyName
	case *model.DelayDefinition:
		n.AsyncDelayed = c.AsyncDelayed
		n.CallerRunsWhenRejected = c.CallerRunsWhenRejected
	case *model.LoopDefinition:
		n.SetCopy(c.Copy)
		n.SetDoWhile(c.DoWhile)
		n.BreakOnShutdown = c.BreakOnShutdown
	case *model.InterceptFromDefinition:
		n.Uri = c.Uri
	case *model.InterceptSendToEndpointDefinition:
		n.Uri = c.Uri
		n.SkipSendToOriginalEndpoint = c.SkipSendToOriginalEndpoint
		n.AfterUri = c.AfterUri
	case *model.PolicyDefinition:
		n.SetRef(c.Ref)
	case *model.TransactedDefinition:
		n.SetRef(c.Ref)
	case *model.SampleDefinition:
		if c.MessageFrequency > 0 {
			n.SampleMessageFrequency(c.MessageFrequency)
		} else {
			n.SamplePeriod(c.SamplePeriod)
		}
	case *model.ThrowExceptionDefinition:
		n.ExceptionType = c.ExceptionType
		n.Message = c.Message
	case *model.TransformDefinition:
		n.FromType = c.FromType
		n.ToType = c.ToType
	case *model.ValidateDefinition:
		n.PredicateExceptionFactory = c.PredicateExceptionFactory
	case *model.SetHeaderDefinition:
		n.Name = c.Name
	case *model.SetPropertyDefinition:
		n.Name = c.Name
	case *model.CircuitBreakerDefinition:
		n.ConfigurationRef = c.ConfigurationRef
	case *model.OnFallbackDefinition:
		n.FallbackViaNetwork = c.FallbackViaNetwork
	}
	return nil
}

// toExpression accepts {"language":"expr","expression":"..."} or a plain string,
// which is a simple language expression.
func toExpression(v interface{}) (*model.ExpressionDefinition, error) {
	if s, ok := v.(string); ok {
		return model.Simple(s), nil
	}
	var def types.ExpressionDsl
	if err := maps.Map2Struct(v, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidExpression, err)
	}
	if def.Language == "" {
		def.Language = model.LanguageSimple
	}
	return model.NewExpression(def.Language, def.Expression), nil
}

// ToDsl converts routes and route templates into the declarative form. Expression,
// endpoint and policy instances are written by their label or uri.
// ToDsl 把路由和路由模板定义转换成声明式DSL
func ToDsl(routes []*model.RouteDefinition, templates []*model.RouteTemplateDefinition) types.RoutesDsl {
	var def types.RoutesDsl
	for _, route := range routes {
		def.Routes = append(def.Routes, ToRouteDsl(route))
	}
	for _, template := range templates {
		item := types.RouteTemplateDsl{RouteDsl: ToRouteDsl(&template.RouteDefinition)}
		for _, p := range template.GetTemplateParameters() {
			param := types.ParameterDsl{Name: p.Name, DefaultValue: p.DefaultValue, Description: p.Description}
			if !p.Required {
				param.Required = types.False
			}
			item.Parameters = append(item.Parameters, param)
		}
		def.RouteTemplates = append(def.RouteTemplates, item)
	}
	return def
}

// ToRouteDsl converts a single route.
func ToRouteDsl(route *model.RouteDefinition) types.RouteDsl {
	def := types.RouteDsl{
		Group:               route.Group,
		Description:         route.Description,
		NodePrefixId:        route.NodePrefixId,
		StreamCache:         route.StreamCache,
		Trace:               route.Trace,
		MessageHistory:      route.MessageHistory,
		LogMask:             route.LogMask,
		AutoStartup:         route.AutoStartup,
		Delayer:             route.Delayer.Milliseconds(),
		StartupOrder:        route.StartupOrder,
		RoutePolicyRef:      route.RoutePolicyRef,
		ShutdownRoute:       string(route.ShutdownRoute),
		ShutdownRunningTask: string(route.ShutdownRunningTask),
		ErrorHandlerRef:     route.ErrorHandlerRef,
		InputType:           toDataTypeDsl(route.InputType),
		OutputType:          toDataTypeDsl(route.OutputType),
		Precondition:        route.Precondition,
	}
	if route.HasCustomId() {
		def.Id = route.GetId()
	}
	if len(route.Properties) > 0 {
		def.Properties = make(map[string]string, len(route.Properties))
		for k, v := range route.Properties {
			def.Properties[k] = v
		}
	}
	if in := route.GetInput(); in != nil {
		from := nodeDsl(in)
		from.Configuration = types.Configuration{KeyUri: in.GetEndpointUri()}
		def.From = &from
	}
	for _, out := range route.Outputs() {
		def.Steps = append(def.Steps, ToNodeDsl(out))
	}
	return def
}

func toDataTypeDsl(t *model.DataType) *types.DataTypeDsl {
	if t == nil {
		return nil
	}
	return &types.DataTypeDsl{Urn: t.Urn, Validate: t.Validate.Get(false)}
}

func nodeDsl(node model.Definition) types.NodeDsl {
	def := types.NodeDsl{
		Type:                node.ShortName(),
		Description:         node.GetDescription(),
		Disabled:            node.GetDisabled(),
		InheritErrorHandler: node.GetInheritErrorHandler(),
	}
	if node.HasCustomId() {
		def.Id = node.GetId()
	}
	return def
}

// ToNodeDsl converts a node and its outputs.
func ToNodeDsl(node model.Definition) types.NodeDsl {
	def := nodeDsl(node)
	c := configuration{}
	if e, ok := node.(model.ExpressionNode); ok {
		c.expression(KeyExpression, e.GetExpression())
	}
	switch n := node.(type) {
	case *model.ToDefinition:
		c.str(KeyUri, n.GetEndpointUri())
		c.str(KeyPattern, string(n.GetPattern()))
	case *model.ToDynamicDefinition:
		c.str(KeyUri, n.GetEndpointUri())
		c.str(KeyPattern, string(n.GetPattern()))
		if n.CacheSize != 0 {
			c[KeyCacheSize] = n.CacheSize
		}
		c.flag(KeyIgnoreInvalidEndpoint, n.IgnoreInvalidEndpoint)
		c.flag(KeyAllowOptimisedComponents, n.AllowOptimisedComponents)
		c.flag(KeyAutoStartComponents, n.AutoStartComponents)
	case *model.CatchDefinition:
		if exceptions := n.GetExceptions(); len(exceptions) > 0 {
			c[KeyExceptions] = append([]string(nil), exceptions...)
		}
		c.expression(KeyOnWhen, n.GetOnWhen())
	case *model.FilterDefinition:
		c.str(KeyStatusPropertyName, n.StatusPropertyName)
	case *model.DelayDefinition:
		c.flag(KeyAsyncDelayed, n.AsyncDelayed)
		c.flag(KeyCallerRunsWhenRejected, n.CallerRunsWhenRejected)
	case *model.LoopDefinition:
		c.flag(KeyCopy, n.GetCopy())
		c.flag(KeyDoWhile, n.GetDoWhile())
		c.flag(KeyBreakOnShutdown, n.BreakOnShutdown)
	case *model.InterceptFromDefinition:
		c.str(KeyUri, n.Uri)
	case *model.InterceptSendToEndpointDefinition:
		c.str(KeyUri, n.Uri)
		c.flag(KeySkipSendToOriginalEndpoint, n.SkipSendToOriginalEndpoint)
		c.str(KeyAfterUri, n.AfterUri)
	case *model.PolicyDefinition:
		c.str(KeyRef, n.GetRef())
	case *model.TransactedDefinition:
		c.str(KeyRef, n.GetRef())
	case *model.SampleDefinition:
		if n.GetMessageFrequency() > 0 {
			c[KeyMessageFrequency] = n.GetMessageFrequency()
		} else {
			c[KeySamplePeriod] = n.GetSamplePeriod().Milliseconds()
		}
	case *model.ThrowExceptionDefinition:
		c.str(KeyExceptionType, n.ExceptionType)
		c.str(KeyMessage, n.Message)
	case *model.TransformDefinition:
		c.str(KeyFromType, n.FromType)
		c.str(KeyToType, n.ToType)
	case *model.ValidateDefinition:
		c.str(KeyPredicateExceptionFactory, n.PredicateExceptionFactory)
	case *model.SetHeaderDefinition:
		c.str(KeyName, n.Name)
	case *model.SetPropertyDefinition:
		c.str(KeyName, n.Name)
	case *model.CircuitBreakerDefinition:
		c.str(KeyConfigurationRef, n.ConfigurationRef)
	case *model.OnFallbackDefinition:
		c.flag(KeyFallbackViaNetwork, n.FallbackViaNetwork)
	}
	if len(c) > 0 {
		def.Configuration = types.Configuration(c)
	}
	for _, out := range node.Outputs() {
		def.Outputs = append(def.Outputs, ToNodeDsl(out))
	}
	return def
}

// configuration collects the keys of a node, skipping unset values.
type configuration map[string]interface{}

func (c configuration) str(key, value string) {
	if value != "" {
		c[key] = value
	}
}

func (c configuration) flag(key string, value types.OptionalBool) {
	if value.IsSet() {
		c[key] = value.Get(false)
	}
}

func (c configuration) expression(key string, e *model.ExpressionDefinition) {
	if e == nil {
		return
	}
	if clause, ok := e.GetExpressionValue().(*model.ExpressionClause); ok && clause.Definition() != nil {
		e = clause.Definition()
	}
	c[key] = map[string]interface{}{
		"language":   e.Language,
		"expression": e.Label(),
	}
}
