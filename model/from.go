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

// FromDefinition is the input of a route. It is owned by the route and can never
// be added as an output.
// FromDefinition 路由输入端点
type FromDefinition struct {
	noOutputs
	endpointRef
}

// NewFrom creates a route input for uri.
func NewFrom(uri string) *FromDefinition {
	d := &FromDefinition{}
	d.init(d)
	d.SetUri(uri)
	return d
}

// NewFromEndpoint creates a route input for a resolved endpoint.
func NewFromEndpoint(endpoint types.Endpoint) *FromDefinition {
	d := NewFrom("")
	d.SetEndpoint(endpoint)
	return d
}

func (d *FromDefinition) ShortName() string {
	return types.NodeFrom
}

func (d *FromDefinition) New() Definition {
	return NewFrom("")
}

func (d *FromDefinition) validateParent(parent Container) error {
	return fmt.Errorf("%w. from can only be the input of a route", types.ErrInvalidParent)
}
