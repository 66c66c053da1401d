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

// Package engine prepares route definition trees for an external compiler.
//
// Package engine 负责把路由定义树预处理成可以交给外部编译器的形式。
//
// The engine package is responsible for:
// engine 包负责：
//   - Registering routes and route templates (RouteContext)
//     注册路由与路由模板（RouteContext）
//   - Materializing routes from templates with parameter bindings
//     根据参数绑定从模板创建路由
//   - Rewriting routes before compilation (PrepareRoute)
//     编译前重写路由（PrepareRoute）
//   - Assigning node ids and checking their uniqueness
//     分配节点ID并校验唯一性
//   - Converting between definitions and the declarative DSL
//     在定义与声明式DSL之间相互转换
//
// Nothing here evaluates expressions, resolves endpoints or runs exchanges.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/builtin/language"
	"github.com/rulego/routedsl/model"
	"github.com/rulego/routedsl/utils/str"
)

// PropertyTemplateId is the route property recording the template a route was
// created from.
const PropertyTemplateId = "templateId"

// RouteContext is the registry of the routes and route templates of an
// application. It is safe for concurrent use; the definitions it holds are not.
// RouteContext 路由上下文，管理路由和路由模板
type RouteContext struct {
	config     types.Config
	routes     map[string]*model.RouteDefinition
	routeIds   []string
	templates  map[string]*model.RouteTemplateDefinition
	templateId []string
	filter     RouteFilter
	lock       sync.RWMutex
}

// NewRouteContext creates a route context, filling in the collaborators config
// leaves empty.
func NewRouteContext(config types.Config) *RouteContext {
	if config.Logger == nil {
		config.Logger = types.DefaultLogger()
	}
	if config.NodeIdFactory == nil {
		config.NodeIdFactory = NewDefaultNodeIdFactory()
	}
	if config.Languages == nil {
		config.Languages = language.Builtins
	}
	if config.Parser == nil {
		config.Parser = &JsonParser{}
	}
	if config.ErrorTypes == nil {
		config.ErrorTypes = types.NewErrorTypeRegistry()
	}
	if config.BeanRegistry == nil {
		config.BeanRegistry = types.MapBeanRegistry{}
	}
	return &RouteContext{
		config:    config,
		routes:    make(map[string]*model.RouteDefinition),
		templates: make(map[string]*model.RouteTemplateDefinition),
	}
}

func (c *RouteContext) Config() types.Config {
	return c.config
}

// SetRouteFilter installs a filter applied to routes added afterwards. Routes it
// rejects are skipped. nil removes the filter.
func (c *RouteContext) SetRouteFilter(filter RouteFilter) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.filter = filter
}

// AddRouteDefinition prepares and registers a route.
func (c *RouteContext) AddRouteDefinition(route *model.RouteDefinition) error {
	return c.AddRouteDefinitions(route)
}

// AddRouteDefinitions prepares and registers routes. Routes get an id when they
// have none. Nothing is registered when one of them fails.
// AddRouteDefinitions 预处理并注册路由，任一路由失败则全部不注册
func (c *RouteContext) AddRouteDefinitions(routes ...*model.RouteDefinition) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.addRouteDefinitions(routes)
}

func (c *RouteContext) addRouteDefinitions(routes []*model.RouteDefinition) error {
	var accepted []*model.RouteDefinition
	seen := make(map[string]bool)
	for _, route := range routes {
		if route == nil {
			return types.ErrNodeNil
		}
		id := route.IdOrCreate(c.config.NodeIdFactory)
		if c.filter != nil && !c.filter(route) {
			c.config.Logger.Printf("route=%s is excluded by the route filter", id)
			continue
		}
		if _, ok := c.routes[id]; ok || seen[id] {
			return fmt.Errorf("%w. id=%s", types.ErrDuplicateRoute, id)
		}
		seen[id] = true
		accepted = append(accepted, route)
	}
	for _, route := range accepted {
		if err := PrepareRoute(c.config, route); err != nil {
			return err
		}
	}
	for _, route := range accepted {
		if err := ValidateUniqueIds(route, append(c.routeDefinitions(), accepted...)); err != nil {
			return fmt.Errorf("route=%s: %w", route.GetId(), err)
		}
	}
	for _, route := range accepted {
		c.routes[route.GetId()] = route
		c.routeIds = append(c.routeIds, route.GetId())
	}
	return nil
}

// AddRouteTemplateDefinitions registers route templates. Templates need an id.
func (c *RouteContext) AddRouteTemplateDefinitions(templates ...*model.RouteTemplateDefinition) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	seen := make(map[string]bool)
	for _, template := range templates {
		if template == nil {
			return types.ErrNodeNil
		}
		id := template.GetId()
		if id == "" {
			return errors.New("route template id can not be empty")
		}
		if _, ok := c.templates[id]; ok || seen[id] {
			return fmt.Errorf("%w. id=%s", types.ErrDuplicateTemplate, id)
		}
		seen[id] = true
	}
	for _, template := range templates {
		c.templates[template.GetId()] = template
		c.templateId = append(c.templateId, template.GetId())
	}
	return nil
}

// RouteDefinition returns the route registered under id.
func (c *RouteContext) RouteDefinition(id string) (*model.RouteDefinition, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if route, ok := c.routes[id]; ok {
		return route, nil
	}
	return nil, fmt.Errorf("%w. id=%s", types.ErrRouteNotFound, id)
}

// RouteDefinitions returns the registered routes in registration order.
func (c *RouteContext) RouteDefinitions() []*model.RouteDefinition {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.routeDefinitions()
}

func (c *RouteContext) routeDefinitions() []*model.RouteDefinition {
	var routes []*model.RouteDefinition
	for _, id := range c.routeIds {
		routes = append(routes, c.routes[id])
	}
	return routes
}

// RouteTemplateDefinition returns the template registered under id.
func (c *RouteContext) RouteTemplateDefinition(id string) (*model.RouteTemplateDefinition, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if template, ok := c.templates[id]; ok {
		return template, nil
	}
	return nil, fmt.Errorf("%w. id=%s", types.ErrTemplateNotFound, id)
}

// RouteTemplateDefinitions returns the registered templates in registration order.
func (c *RouteContext) RouteTemplateDefinitions() []*model.RouteTemplateDefinition {
	c.lock.RLock()
	defer c.lock.RUnlock()
	var templates []*model.RouteTemplateDefinition
	for _, id := range c.templateId {
		templates = append(templates, c.templates[id])
	}
	return templates
}

// RemoveRouteDefinition unregisters the route with id.
func (c *RouteContext) RemoveRouteDefinition(id string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.routes[id]; !ok {
		return fmt.Errorf("%w. id=%s", types.ErrRouteNotFound, id)
	}
	delete(c.routes, id)
	c.routeIds = remove(c.routeIds, id)
	return nil
}

// RemoveRouteTemplateDefinition unregisters the template with id. Routes created
// from it are kept.
func (c *RouteContext) RemoveRouteTemplateDefinition(id string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.templates[id]; !ok {
		return fmt.Errorf("%w. id=%s", types.ErrTemplateNotFound, id)
	}
	delete(c.templates, id)
	c.templateId = remove(c.templateId, id)
	return nil
}

func remove(ids []string, id string) []string {
	var result []string
	for _, item := range ids {
		if item != id {
			result = append(result, item)
		}
	}
	return result
}

// FilterRoutes returns the registered routes accepted by FilterByPattern(include,
// exclude).
func (c *RouteContext) FilterRoutes(include, exclude string) []*model.RouteDefinition {
	filter := FilterByPattern(include, exclude)
	var result []*model.RouteDefinition
	for _, route := range c.RouteDefinitions() {
		if filter(route) {
			result = append(result, route)
		}
	}
	return result
}

// TemplatedRoute describes a route to create from a route template.
// TemplatedRoute 从路由模板创建路由的参数
type TemplatedRoute struct {
	// RouteId 路由ID，可以包含{{name}}占位符，为空时自动生成
	RouteId string
	// TemplateId 路由模板ID
	TemplateId string
	// Parameters 模板参数绑定
	Parameters map[string]string
	// Prefix 节点ID前缀
	Prefix string
	// CopyOutputs clones the template outputs instead of sharing them. Only cloned
	// outputs get their {{name}} placeholders resolved.
	// CopyOutputs 是否复制模板的输出节点，默认与模板共享
	CopyOutputs bool
}

// AddRouteFromTemplate creates a route from the template templateId, sharing the
// template outputs, and registers it.
// AddRouteFromTemplate 根据路由模板创建并注册路由
func (c *RouteContext) AddRouteFromTemplate(routeId, templateId string, parameters map[string]string) (*model.RouteDefinition, error) {
	return c.AddTemplatedRoute(TemplatedRoute{RouteId: routeId, TemplateId: templateId, Parameters: parameters})
}

// AddTemplatedRoute creates a route from a template and registers it.
//
// Parameters are bound from t.Parameters, then from the global properties, then
// from the parameter defaults. A required parameter left unbound fails with
// types.ErrMissingParameter. The bindings are recorded in TemplateParameters of
// the route and resolve the {{name}} placeholders of the route id, group,
// description and input uri.
//
// When outputs are shared, the template goes through the structural preparation
// passes first, so preparing the route does not rewrite them again.
func (c *RouteContext) AddTemplatedRoute(t TemplatedRoute) (*model.RouteDefinition, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	template, ok := c.templates[t.TemplateId]
	if !ok {
		return nil, fmt.Errorf("%w. id=%s", types.ErrTemplateNotFound, t.TemplateId)
	}
	bindings, err := bindParameters(template, t.Parameters, c.config.Properties)
	if err != nil {
		return nil, err
	}
	dict := make(map[string]string, len(c.config.Properties)+len(bindings))
	for k, v := range c.config.Properties {
		dict[k] = v
	}
	for k, v := range bindings {
		dict[k] = v
	}

	if !t.CopyOutputs {
		if err := prepareTemplate(c.config, template); err != nil {
			return nil, err
		}
	}
	route := template.AsRouteDefinition()
	route.TemplateParameters = bindings
	properties := make(map[string]string, len(route.Properties)+1)
	for k, v := range route.Properties {
		properties[k] = v
	}
	properties[PropertyTemplateId] = t.TemplateId
	route.Properties = properties
	route.SetId(str.ResolvePlaceholders(t.RouteId, dict))
	route.Group = str.ResolvePlaceholders(route.Group, dict)
	route.Description = str.ResolvePlaceholders(route.Description, dict)
	if t.Prefix != "" {
		route.NodePrefixId = t.Prefix
	}
	if in := route.GetInput(); in != nil {
		var from *model.FromDefinition
		if in.GetEndpoint() != nil {
			from = model.NewFromEndpoint(in.GetEndpoint())
		} else {
			from = model.NewFrom(str.ResolvePlaceholders(in.GetEndpointUri(), dict))
		}
		from.SetDescription(in.GetDescription())
		if err := route.SetInput(from); err != nil {
			return nil, err
		}
	}
	if t.CopyOutputs {
		outputs := model.CloneOutputs(route.Outputs())
		for _, out := range outputs {
			resolveNode(out, dict, t.Prefix)
			model.Walk(out, func(d model.Definition) bool {
				resolveNode(d, dict, t.Prefix)
				return true
			})
		}
		if err := route.SetOutputs(outputs); err != nil {
			return nil, err
		}
	}
	if err := c.addRouteDefinitions([]*model.RouteDefinition{route}); err != nil {
		return nil, err
	}
	c.config.Logger.Printf("route=%s created from template=%s", route.GetId(), t.TemplateId)
	return route, nil
}

// bindParameters binds every declared parameter and reports the required ones
// left unbound.
func bindParameters(template *model.RouteTemplateDefinition, parameters, properties map[string]string) (map[string]string, error) {
	bindings := make(map[string]string, len(parameters))
	for k, v := range parameters {
		bindings[k] = v
	}
	var missing []string
	for _, p := range template.GetTemplateParameters() {
		if _, ok := bindings[p.Name]; ok {
			continue
		}
		if v, ok := properties[p.Name]; ok {
			bindings[p.Name] = v
			continue
		}
		if p.DefaultValue != "" {
			bindings[p.Name] = p.DefaultValue
			continue
		}
		if p.Required && !str.Contains(missing, p.Name) {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w. Route template %s the following mandatory parameters must be provided: %s",
			types.ErrMissingParameter, template.GetId(), strings.Join(missing, types.ParameterSeparator))
	}
	return bindings, nil
}

// resolveNode resolves the placeholders of the attributes of a cloned node and
// prefixes its custom id.
func resolveNode(d model.Definition, dict map[string]string, prefix string) {
	resolve := func(s string) string {
		return str.ResolvePlaceholders(s, dict)
	}
	if d.HasCustomId() {
		d.SetId(prefix + resolve(d.GetId()))
	}
	d.SetDescription(resolve(d.GetDescription()))
	if s, ok := d.(model.SendNode); ok && s.GetUri() != "" {
		s.SetUri(resolve(s.GetUri()))
	}
	if e, ok := d.(model.ExpressionNode); ok && e.GetExpression() != nil {
		e.GetExpression().Text = resolve(e.GetExpression().Text)
	}
	switch n := d.(type) {
	case *model.CatchDefinition:
		if n.GetOnWhen() != nil {
			n.GetOnWhen().Text = resolve(n.GetOnWhen().Text)
		}
	case *model.InterceptFromDefinition:
		n.Uri = resolve(n.Uri)
	case *model.InterceptSendToEndpointDefinition:
		n.Uri = resolve(n.Uri)
		n.AfterUri = resolve(n.AfterUri)
	case *model.PolicyDefinition:
		n.SetRef(resolve(n.GetRef()))
	case *model.TransactedDefinition:
		n.SetRef(resolve(n.GetRef()))
	case *model.ThrowExceptionDefinition:
		n.Message = resolve(n.Message)
	case *model.SetHeaderDefinition:
		n.Name = resolve(n.Name)
	case *model.SetPropertyDefinition:
		n.Name = resolve(n.Name)
	}
}

// LoadRoutes decodes routes and templates with the configured parser and registers
// them, templates first.
// LoadRoutes 解析DSL并注册路由和路由模板
func (c *RouteContext) LoadRoutes(data []byte) error {
	return c.LoadRoutesWithParser(c.config.Parser, data)
}

// LoadRoutesWithParser is LoadRoutes decoding data with parser.
func (c *RouteContext) LoadRoutesWithParser(parser types.Parser, data []byte) error {
	def, err := parser.DecodeRoutes(data)
	if err != nil {
		return err
	}
	routes, templates, err := ToDefinition(def)
	if err != nil {
		return err
	}
	if err := c.AddRouteTemplateDefinitions(templates...); err != nil {
		return err
	}
	if err := c.AddRouteDefinitions(routes...); err != nil {
		return err
	}
	c.config.Logger.Printf("loaded %d routes and %d route templates", len(routes), len(templates))
	return nil
}

// DumpRoutes encodes the registered routes and templates with the configured parser.
func (c *RouteContext) DumpRoutes() ([]byte, error) {
	return c.config.Parser.EncodeRoutes(ToDsl(c.RouteDefinitions(), c.RouteTemplateDefinitions()))
}
