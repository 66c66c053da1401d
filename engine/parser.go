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
	"strings"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/utils/json"
	"gopkg.in/yaml.v3"
)

var (
	_ types.Parser = (*JsonParser)(nil)
	_ types.Parser = (*YamlParser)(nil)
)

// JsonParser Json
type JsonParser struct {
}

// DecodeRoutes 通过json解析路由DSL
func (p *JsonParser) DecodeRoutes(data []byte) (types.RoutesDsl, error) {
	var def types.RoutesDsl
	if len(strings.TrimSpace(string(data))) == 0 {
		return def, types.ErrDslEmpty
	}
	err := json.Unmarshal(data, &def)
	return def, err
}

func (p *JsonParser) EncodeRoutes(def types.RoutesDsl) ([]byte, error) {
	//格式化Json
	return json.MarshalIndent(def, "  ")
}

// YamlParser Yaml
type YamlParser struct {
}

// DecodeRoutes 通过yaml解析路由DSL
func (p *YamlParser) DecodeRoutes(data []byte) (types.RoutesDsl, error) {
	var def types.RoutesDsl
	if len(strings.TrimSpace(string(data))) == 0 {
		return def, types.ErrDslEmpty
	}
	err := yaml.Unmarshal(data, &def)
	return def, err
}

func (p *YamlParser) EncodeRoutes(def types.RoutesDsl) ([]byte, error) {
	return yaml.Marshal(def)
}
