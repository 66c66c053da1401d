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

// PolicyDefinition wraps its whole output sequence in a policy. The policy is given
// by reference, by instance or both.
// PolicyDefinition 策略节点，以整体方式包装所有子节点
type PolicyDefinition struct {
	withOutputs
	ref    string
	policy types.Policy
}

// NewPolicy creates a policy node referring to a policy bean.
func NewPolicy(ref string) *PolicyDefinition {
	d := &PolicyDefinition{ref: ref}
	d.init(d)
	return d
}

// NewPolicyInstance creates a policy node for a policy instance.
func NewPolicyInstance(policy types.Policy) *PolicyDefinition {
	d := NewPolicy("")
	d.policy = policy
	return d
}

func (d *PolicyDefinition) ShortName() string {
	return types.NodePolicy
}

func (d *PolicyDefinition) Label() string {
	return policyLabel(d.ref, d.policy)
}

func (d *PolicyDefinition) New() Definition {
	return NewPolicy("")
}

func (d *PolicyDefinition) IsWrappingEntireOutput() bool {
	return true
}

func (d *PolicyDefinition) GetRef() string {
	return d.ref
}

func (d *PolicyDefinition) SetRef(ref string) {
	d.ref = ref
}

func (d *PolicyDefinition) GetPolicy() types.Policy {
	return d.policy
}

func (d *PolicyDefinition) SetPolicy(policy types.Policy) {
	d.policy = policy
}

// ResolvePolicy returns the policy instance, looking the reference up in registry
// when no instance is set.
func (d *PolicyDefinition) ResolvePolicy(registry types.BeanRegistry) (types.Policy, error) {
	if d.policy != nil {
		return d.policy, nil
	}
	bean, err := lookupBean(registry, d.ref)
	if err != nil {
		return nil, err
	}
	policy, ok := bean.(types.Policy)
	if !ok {
		return nil, fmt.Errorf("%w. ref=%s is not a policy", types.ErrUnexpectedBeanType, d.ref)
	}
	return policy, nil
}

func policyLabel(ref string, policy types.Policy) string {
	if ref != "" {
		return ref
	}
	if policy != nil {
		return policy.PolicyName()
	}
	return ""
}

func lookupBean(registry types.BeanRegistry, ref string) (interface{}, error) {
	if ref == "" || registry == nil {
		return nil, fmt.Errorf("%w. ref=%s", types.ErrBeanNotFound, ref)
	}
	bean, ok := registry.Lookup(ref)
	if !ok {
		return nil, fmt.Errorf("%w. ref=%s", types.ErrBeanNotFound, ref)
	}
	return bean, nil
}
