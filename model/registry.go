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
	"sort"
	"sync"

	"github.com/rulego/routedsl/api/types"
)

// Registry is the default registry of node variants, keyed by short name.
var Registry = new(NodeRegistry)

func init() {
	for _, node := range []Definition{
		&ToDefinition{},
		&ToDynamicDefinition{},
		&TryDefinition{},
		&CatchDefinition{},
		&FinallyDefinition{},
		&FilterDefinition{},
		&WhenDefinition{},
		&DelayDefinition{},
		&LoopDefinition{},
		&InterceptDefinition{},
		&InterceptFromDefinition{},
		&InterceptSendToEndpointDefinition{},
		&PolicyDefinition{},
		&TransactedDefinition{},
		&SampleDefinition{},
		&ThrowExceptionDefinition{},
		&TransformDefinition{},
		&ValidateDefinition{},
		&SetHeaderDefinition{},
		&SetPropertyDefinition{},
		&CircuitBreakerDefinition{},
		&OnFallbackDefinition{},
		&StepDefinition{},
	} {
		_ = Registry.Register(node)
	}
}

// NodeRegistry maps short names to node prototypes. It is safe for concurrent use.
// NodeRegistry 节点类型注册表
type NodeRegistry struct {
	nodes map[string]Definition
	sync.RWMutex
}

// Register adds a prototype. The short name must not be registered yet.
func (r *NodeRegistry) Register(prototype Definition) error {
	r.Lock()
	defer r.Unlock()
	if r.nodes == nil {
		r.nodes = make(map[string]Definition)
	}
	if _, ok := r.nodes[prototype.ShortName()]; ok {
		return fmt.Errorf("the node type already exists. nodeType=%s", prototype.ShortName())
	}
	r.nodes[prototype.ShortName()] = prototype
	return nil
}

// Unregister removes a prototype.
func (r *NodeRegistry) Unregister(shortName string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.nodes[shortName]; !ok {
		return fmt.Errorf("%w. nodeType=%s", types.ErrNodeTypeNotFound, shortName)
	}
	delete(r.nodes, shortName)
	return nil
}

// NewNode creates a fresh node of the named variant.
func (r *NodeRegistry) NewNode(shortName string) (Definition, error) {
	r.RLock()
	defer r.RUnlock()
	if prototype, ok := r.nodes[shortName]; ok {
		return prototype.New(), nil
	}
	return nil, fmt.Errorf("%w. nodeType=%s", types.ErrNodeTypeNotFound, shortName)
}

// Names returns the registered short names in ascending order.
func (r *NodeRegistry) Names() []string {
	r.RLock()
	defer r.RUnlock()
	var names []string
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
