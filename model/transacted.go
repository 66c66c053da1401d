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

	"github.com/rulego/routedsl/api/types"
)

// TransactedDefinition is a policy restricted to transactions. It must sit
// directly under the route; route preparation moves the regular outputs of the
// route into it.
// TransactedDefinition 事务节点，只能位于路由顶层
type TransactedDefinition struct {
	withOutputs
	ref    string
	policy types.TransactedPolicy
}

// NewTransacted creates a transacted node. ref may be empty, in which case the
// runtime picks its default transaction policy.
func NewTransacted(ref string) *TransactedDefinition {
	d := &TransactedDefinition{ref: ref}
	d.init(d)
	return d
}

func (d *TransactedDefinition) ShortName() string {
	return types.NodeTransacted
}

func (d *TransactedDefinition) Label() string {
	var policy types.Policy
	if d.policy != nil {
		policy = d.policy
	}
	return policyLabel(d.ref, policy)
}

func (d *TransactedDefinition) New() Definition {
	return NewTransacted("")
}

func (d *TransactedDefinition) IsAbstract() bool {
	return true
}

func (d *TransactedDefinition) IsTopLevelOnly() bool {
	return true
}

func (d *TransactedDefinition) IsWrappingEntireOutput() bool {
	return true
}

func (d *TransactedDefinition) GetRef() string {
	return d.ref
}

func (d *TransactedDefinition) SetRef(ref string) {
	d.ref = ref
}

func (d *TransactedDefinition) GetPolicy() types.TransactedPolicy {
	return d.policy
}

// SetPolicy sets the policy instance. It fails unless policy is a
// types.TransactedPolicy.
func (d *TransactedDefinition) SetPolicy(policy types.Policy) error {
	if policy == nil {
		d.policy = nil
		return nil
	}
	tp, ok := policy.(types.TransactedPolicy)
	if !ok {
		return fmt.Errorf("%w. policy=%s", types.ErrNotTransactedPolicy, policy.PolicyName())
	}
	d.policy = tp
	return nil
}

// ResolvePolicy returns the transaction policy instance, looking the reference up
// in registry when no instance is set.
func (d *TransactedDefinition) ResolvePolicy(registry types.BeanRegistry) (types.TransactedPolicy, error) {
	if d.policy != nil {
		return d.policy, nil
	}
	bean, err := lookupBean(registry, d.ref)
	if err != nil {
		return nil, err
	}
	policy, ok := bean.(types.TransactedPolicy)
	if !ok {
		return nil, fmt.Errorf("%w. ref=%s", types.ErrNotTransactedPolicy, d.ref)
	}
	return policy, nil
}
