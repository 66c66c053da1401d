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
	"strconv"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/model"
)

var (
	_ types.NodeIdFactory = (*DefaultNodeIdFactory)(nil)
	_ types.NodeIdFactory = (*UUIDNodeIdFactory)(nil)
)

// DefaultNodeIdFactory generates ids from the short name and a counter per short
// name, for example to1, to2, filter1.
// DefaultNodeIdFactory 默认节点ID生成器：短名称+计数
type DefaultNodeIdFactory struct {
	counters map[string]int
	lock     sync.Mutex
}

func NewDefaultNodeIdFactory() *DefaultNodeIdFactory {
	return &DefaultNodeIdFactory{counters: make(map[string]int)}
}

func (f *DefaultNodeIdFactory) CreateId(shortName string) string {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.counters == nil {
		f.counters = make(map[string]int)
	}
	f.counters[shortName]++
	return shortName + strconv.Itoa(f.counters[shortName])
}

// Reset restarts every counter.
func (f *DefaultNodeIdFactory) Reset() {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.counters = make(map[string]int)
}

// UUIDNodeIdFactory generates random ids, for example to-0b6a4c3e-....
type UUIDNodeIdFactory struct {
}

func (f *UUIDNodeIdFactory) CreateId(shortName string) string {
	return shortName + "-" + uuid.Must(uuid.NewV4()).String()
}

type prefixedIdFactory struct {
	prefix  string
	factory types.NodeIdFactory
}

func (f prefixedIdFactory) CreateId(shortName string) string {
	return f.prefix + f.factory.CreateId(shortName)
}

// ForceAssignIds generates an id for the route, its input and every node that has
// none. Generated node ids are prefixed with the node prefix id of the route. Custom
// ids are left as they are.
// ForceAssignIds 为没有ID的路由和节点生成ID
func ForceAssignIds(route *model.RouteDefinition, factory types.NodeIdFactory) error {
	if factory == nil {
		return types.ErrNodeIdFactoryRequired
	}
	route.IdOrCreate(factory)
	nodeFactory := factory
	if route.NodePrefixId != "" {
		nodeFactory = prefixedIdFactory{prefix: route.NodePrefixId, factory: factory}
	}
	if in := route.GetInput(); in != nil {
		in.IdOrCreate(nodeFactory)
	}
	model.Walk(route, func(d model.Definition) bool {
		d.IdOrCreate(nodeFactory)
		return true
	})
	return nil
}

// ValidateUniqueIds checks that no custom id of route is used by another node of
// route or of routes. A node shared between routes is only counted once.
// ValidateUniqueIds 校验自定义ID在所有路由中唯一
func ValidateUniqueIds(route *model.RouteDefinition, routes []*model.RouteDefinition) error {
	owners := make(map[string]model.Definition)
	var err error
	collect := func(r *model.RouteDefinition, check bool) {
		visit := func(d model.Definition) bool {
			if err != nil {
				return false
			}
			if !d.HasCustomId() {
				return true
			}
			if owner, ok := owners[d.GetId()]; ok && owner != d {
				if check {
					err = fmt.Errorf("%w: %s. Please correct ids to be unique among all your routes", types.ErrDuplicateId, d.GetId())
				}
				return true
			}
			owners[d.GetId()] = d
			return true
		}
		if in := r.GetInput(); in != nil {
			visit(in)
		}
		model.Walk(r, visit)
	}
	for _, r := range routes {
		if r != route {
			collect(r, false)
		}
	}
	collect(route, true)
	return err
}
