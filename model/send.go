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
	"github.com/rulego/routedsl/api/types"
)

// SendNode is implemented by variants that reference an endpoint.
// SendNode 引用端点的节点
type SendNode interface {
	Definition
	GetUri() string
	SetUri(uri string)
	GetEndpoint() types.Endpoint
	GetEndpointBuilder() types.EndpointBuilder
	// GetEndpointUri returns the uri of whichever endpoint source is set.
	GetEndpointUri() string
}

// endpointRef holds exactly one of a uri, a resolved endpoint or an endpoint
// builder. Each setter clears the other two.
type endpointRef struct {
	uri      string
	endpoint types.Endpoint
	builder  types.EndpointBuilder
}

func (e *endpointRef) GetUri() string {
	return e.uri
}

func (e *endpointRef) SetUri(uri string) {
	e.uri = uri
	e.endpoint = nil
	e.builder = nil
}

func (e *endpointRef) GetEndpoint() types.Endpoint {
	return e.endpoint
}

func (e *endpointRef) SetEndpoint(endpoint types.Endpoint) {
	e.uri = ""
	e.endpoint = endpoint
	e.builder = nil
}

func (e *endpointRef) GetEndpointBuilder() types.EndpointBuilder {
	return e.builder
}

func (e *endpointRef) SetEndpointBuilder(builder types.EndpointBuilder) {
	e.uri = ""
	e.endpoint = nil
	e.builder = builder
}

// GetEndpointUri returns the uri of whichever source is set, empty when none is.
func (e *endpointRef) GetEndpointUri() string {
	switch {
	case e.uri != "":
		return e.uri
	case e.endpoint != nil:
		return e.endpoint.EndpointUri()
	case e.builder != nil:
		return e.builder.Uri()
	default:
		return ""
	}
}

func (e *endpointRef) Label() string {
	return e.GetEndpointUri()
}
