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
package policy

import "github.com/rulego/routedsl/api/types"

// Transaction propagation behaviours.
const (
	PropagationRequired     = "PROPAGATION_REQUIRED"
	PropagationRequiresNew  = "PROPAGATION_REQUIRES_NEW"
	PropagationMandatory    = "PROPAGATION_MANDATORY"
	PropagationSupports     = "PROPAGATION_SUPPORTS"
	PropagationNotSupported = "PROPAGATION_NOT_SUPPORTED"
	PropagationNever        = "PROPAGATION_NEVER"
	PropagationNested       = "PROPAGATION_NESTED"
)

var _ types.TransactedPolicy = (*TransactionPolicy)(nil)

// TransactionPolicy is a transacted policy identified by its propagation
// behaviour. Register it in the bean registry to reference it from transacted
// nodes by name.
// TransactionPolicy 事务策略
type TransactionPolicy struct {
	// Name 策略名称，为空时使用传播行为
	Name string
	// Propagation 传播行为，为空时使用 PROPAGATION_REQUIRED
	Propagation string
}

// Required returns a policy with PROPAGATION_REQUIRED.
func Required() *TransactionPolicy {
	return &TransactionPolicy{Propagation: PropagationRequired}
}

// RequiresNew returns a policy with PROPAGATION_REQUIRES_NEW.
func RequiresNew() *TransactionPolicy {
	return &TransactionPolicy{Propagation: PropagationRequiresNew}
}

func (p *TransactionPolicy) PolicyName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.PropagationBehavior()
}

func (p *TransactionPolicy) PropagationBehavior() string {
	if p.Propagation == "" {
		return PropagationRequired
	}
	return p.Propagation
}

// Beans returns the default transaction policies keyed by propagation name, ready
// to merge into a bean registry.
func Beans() types.MapBeanRegistry {
	beans := types.MapBeanRegistry{}
	for _, propagation := range []string{
		PropagationRequired, PropagationRequiresNew, PropagationMandatory, PropagationSupports,
		PropagationNotSupported, PropagationNever, PropagationNested,
	} {
		beans[propagation] = &TransactionPolicy{Propagation: propagation}
	}
	return beans
}
