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

// Package routedsl provides the route definition model of an integration router:
// routes, route templates and the enterprise integration patterns they are made of,
// built with a fluent API or loaded from a JSON or YAML DSL, then prepared for an
// external compiler.
//
// Package routedsl 提供集成路由的路由定义模型：路由、路由模板以及组成它们的企业集成模式，
// 可以通过流式API构建或从JSON、YAML DSL加载，预处理后交给外部编译器。
//
// # Usage
//
// Route DSL definition format:
//
//	{
//	  "routes": [
//	    {
//	      "id": "orders",
//	      "from": {"type": "from", "configuration": {"uri": "direct:orders"}},
//	      "steps": [
//	        {
//	          "type": "filter",
//	          "configuration": {"expression": {"language": "expr", "expression": "msg.amount > 100"}},
//	          "outputs": [{"type": "to", "configuration": {"uri": "log:big"}}]
//	        },
//	        {"type": "to", "configuration": {"uri": "mock:result"}}
//	      ]
//	    }
//	  ]
//	}
//
// Create a route context and load routes
//
//	ctx := routedsl.New("default")
//	err := ctx.LoadRoutes([]byte(routesFile))
//
// Build a route with the fluent API
//
//	route, err := routedsl.From("direct:orders").
//		Filter(model.Expr("msg.amount > 100")).To("log:big").End().
//		To("mock:result").
//		Build()
//	err = ctx.AddRouteDefinition(route)
//
// Create a route from a template
//
//	route, err := ctx.AddRouteFromTemplate("east", "orderTemplate", map[string]string{"queue": "east"})
//
// Load all route files of a folder
//
//	ctx, err := routedsl.Load("default", "./routes")
//
// Get a route context
//
//	ctx, ok := routedsl.Get("default")
package routedsl

import (
	"fmt"
	"sync"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/builtin/language"
	"github.com/rulego/routedsl/builtin/policy"
	"github.com/rulego/routedsl/engine"
	"github.com/rulego/routedsl/model"
	"github.com/rulego/routedsl/utils/fs"
)

// Extensions of the route files read by Load.
var (
	JsonExtensions = []string{".json"}
	YamlExtensions = []string{".yaml", ".yml"}
)

// DefaultPool is the default route context pool.
var DefaultPool = &Pool{}

// Pool 路由上下文池，按名称管理路由上下文
type Pool struct {
	contexts sync.Map
}

// New returns the route context registered under name, creating it with opts when
// there is none. opts are ignored for an existing context.
// New 获取或创建指定名称的路由上下文
func (p *Pool) New(name string, opts ...types.Option) *engine.RouteContext {
	if v, ok := p.contexts.Load(name); ok {
		return v.(*engine.RouteContext)
	}
	v, _ := p.contexts.LoadOrStore(name, engine.NewRouteContext(NewConfig(opts...)))
	return v.(*engine.RouteContext)
}

// Load loads every route file below folderPath, including sub folders, into the
// route context name. JSON files are decoded by the JSON parser and YAML files by
// the YAML parser. Files are loaded in lexical order, JSON files first, so a
// template must be declared before the routes of a later file are created from it.
// Load 加载指定文件夹及其子文件夹所有路由文件（.json/.yaml/.yml）到路由上下文
func (p *Pool) Load(name, folderPath string, opts ...types.Option) (*engine.RouteContext, error) {
	ctx := p.New(name, opts...)
	jsonPaths, err := fs.GetFilePathsByExt(folderPath, JsonExtensions...)
	if err != nil {
		return nil, err
	}
	yamlPaths, err := fs.GetFilePathsByExt(folderPath, YamlExtensions...)
	if err != nil {
		return nil, err
	}
	load := func(parser types.Parser, paths []string) error {
		for _, path := range paths {
			b := fs.LoadFile(path)
			if b == nil {
				continue
			}
			if err := ctx.LoadRoutesWithParser(parser, b); err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
		}
		return nil
	}
	if err := load(&engine.JsonParser{}, jsonPaths); err != nil {
		return nil, err
	}
	if err := load(&engine.YamlParser{}, yamlPaths); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Get 获取指定名称的路由上下文
func (p *Pool) Get(name string) (*engine.RouteContext, bool) {
	v, ok := p.contexts.Load(name)
	if ok {
		return v.(*engine.RouteContext), ok
	} else {
		return nil, false
	}
}

// Del 删除指定名称的路由上下文
func (p *Pool) Del(name string) {
	p.contexts.Delete(name)
}

// Range calls fn for every route context until fn returns false.
func (p *Pool) Range(fn func(name string, ctx *engine.RouteContext) bool) {
	p.contexts.Range(func(key, value any) bool {
		return fn(key.(string), value.(*engine.RouteContext))
	})
}

// NewConfig creates a config with the engine defaults: the counter based node id
// factory, the builtin expression languages, the default transaction policies and
// the JSON parser.
// NewConfig 创建带默认值的配置
func NewConfig(opts ...types.Option) types.Config {
	config := types.NewConfig(opts...)
	if config.NodeIdFactory == nil {
		config.NodeIdFactory = engine.NewDefaultNodeIdFactory()
	}
	if config.Languages == nil {
		config.Languages = language.Builtins
	}
	if config.Parser == nil {
		config.Parser = &engine.JsonParser{}
	}
	if beans, ok := config.BeanRegistry.(types.MapBeanRegistry); ok {
		for name, bean := range policy.Beans() {
			if _, exists := beans[name]; !exists {
				beans[name] = bean
			}
		}
	}
	return config
}

// New 获取或创建默认池中指定名称的路由上下文
func New(name string, opts ...types.Option) *engine.RouteContext {
	return DefaultPool.New(name, opts...)
}

// Load 加载文件夹中的路由文件到默认池中指定名称的路由上下文
func Load(name, folderPath string, opts ...types.Option) (*engine.RouteContext, error) {
	return DefaultPool.Load(name, folderPath, opts...)
}

// Get 获取默认池中指定名称的路由上下文
func Get(name string) (*engine.RouteContext, bool) {
	return DefaultPool.Get(name)
}

// Del 删除默认池中指定名称的路由上下文
func Del(name string) {
	DefaultPool.Del(name)
}

// From starts building a route consuming from uri.
func From(uri string) *model.Builder {
	return model.From(uri)
}

// RouteTemplate starts building a route template.
func RouteTemplate(id string) *model.Builder {
	return model.RouteTemplate(id)
}
