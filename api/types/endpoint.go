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

package types

// Endpoint is an endpoint already resolved by the endpoint-resolution collaborator.
// Endpoint 已解析的端点
type Endpoint interface {
	// EndpointUri returns the uri the endpoint was resolved from.
	EndpointUri() string
}

// EndpointBuilder builds an endpoint uri lazily, for example a typed endpoint DSL.
// EndpointBuilder 端点构建器，延迟生成端点uri
type EndpointBuilder interface {
	// Uri returns the uri of the endpoint being built.
	Uri() string
}
