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
	"strings"

	"github.com/rulego/routedsl/api/types"
)

// TemplateParameter declares a route template parameter.
// TemplateParameter 路由模板参数
type TemplateParameter struct {
	// Name 参数名称
	Name string
	// DefaultValue 默认值，为空且Required时创建路由必须提供该参数
	DefaultValue string
	// Description 参数描述
	Description string
	// Required 是否必须提供
	Required bool
}

// RouteTemplateDefinition is a route with declared parameters, materialized into
// concrete routes.
// RouteTemplateDefinition 路由模板，声明参数并可创建具体路由
type RouteTemplateDefinition struct {
	RouteDefinition
	parameters []TemplateParameter
}

// NewRouteTemplate creates a template with the given id.
func NewRouteTemplate(id string) *RouteTemplateDefinition {
	t := &RouteTemplateDefinition{}
	t.SetId(id)
	return t
}

func (t *RouteTemplateDefinition) ShortName() string {
	return types.NodeRouteTemplate
}

// TemplateParameter declares required parameters. Names accumulate in order and
// duplicates are kept.
func (t *RouteTemplateDefinition) TemplateParameter(names ...string) *RouteTemplateDefinition {
	for _, name := range names {
		t.parameters = append(t.parameters, TemplateParameter{Name: name, Required: true})
	}
	return t
}

// TemplateOptionalParameter declares a parameter with a default value.
func (t *RouteTemplateDefinition) TemplateOptionalParameter(name, defaultValue string) *RouteTemplateDefinition {
	t.parameters = append(t.parameters, TemplateParameter{Name: name, DefaultValue: defaultValue})
	return t
}

// AddTemplateParameter declares a fully described parameter.
func (t *RouteTemplateDefinition) AddTemplateParameter(parameter TemplateParameter) *RouteTemplateDefinition {
	t.parameters = append(t.parameters, parameter)
	return t
}

// GetTemplateParameters returns the declared parameters.
func (t *RouteTemplateDefinition) GetTemplateParameters() []TemplateParameter {
	return t.parameters
}

// Parameters returns the declared parameter names joined by commas.
func (t *RouteTemplateDefinition) Parameters() string {
	var names []string
	for _, p := range t.parameters {
		names = append(names, p.Name)
	}
	return strings.Join(names, types.ParameterSeparator)
}

// AsRouteDefinition copies every route attribute of the template, the input
// reference and the outputs into a new route. The new route has no parameters and
// no placeholder is substituted.
//
// The output nodes are shared with the template, not cloned: a node belongs to
// the last route that claimed it as parent, and changes to a node are visible
// through the template and every route materialized from it. Rewrites of the
// route never take a shared node away from the template; see
// RouteDefinition.SharedTemplate.
func (t *RouteTemplateDefinition) AsRouteDefinition() *RouteDefinition {
	route := t.RouteDefinition
	// capped so appending to either route never writes into the other's outputs
	route.outputs = t.outputs[:len(t.outputs):len(t.outputs)]
	route.TemplateParameters = nil
	route.prepared = false
	route.frozen = false
	route.template = t
	return &route
}
