/*
 * Copyright 2023 The RuleGo Authors.
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

// Package str provides string helpers used by the route context and the DSL
// converters.
// Key features:
// - ResolvePlaceholders: replaces {{name}} route template placeholders
// - ParsePlaceholders: lists the placeholders of a string
// - SplitAndTrim: splits comma separated pattern and parameter lists
// - ToString: converts decoded DSL values to strings
package str

import (
	"regexp"
	"strings"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/utils/cast"
)

// 正则表达式匹配 {{name}} 或 {{ name }}
var placeholderRegex = regexp.MustCompile(regexp.QuoteMeta(types.PlaceholderPrefix) + ` *([^{}]+?) *` + regexp.QuoteMeta(types.PlaceholderSuffix))

// ResolvePlaceholders 替换字符串中的{{name}}占位符
// Example: ResolvePlaceholders("timer:{{name}}",map[string]string{"name":"tick"}). return "timer:tick".
// 如果没匹配到变量，则保留原样
func ResolvePlaceholders(original string, dict map[string]string) string {
	if !strings.Contains(original, types.PlaceholderPrefix) {
		return original
	}
	return placeholderRegex.ReplaceAllStringFunc(original, func(s string) string {
		matches := placeholderRegex.FindStringSubmatch(s)
		if len(matches) < 2 {
			return s
		}
		if v, ok := dict[matches[1]]; ok {
			return v
		}
		return s
	})
}

// ParsePlaceholders 返回字符串中所有占位符的名称，按出现顺序，不重复
func ParsePlaceholders(original string) []string {
	var names []string
	for _, matches := range placeholderRegex.FindAllStringSubmatch(original, -1) {
		if len(matches) > 1 && !Contains(names, matches[1]) {
			names = append(names, matches[1])
		}
	}
	return names
}

// HasPlaceholder 是否包含占位符
func HasPlaceholder(s string) bool {
	return placeholderRegex.MatchString(s)
}

// SplitAndTrim 按sep分割字符串，去除空白并忽略空项
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

// ToString input的值转成字符串,忽略错误
func ToString(input interface{}) string {
	return cast.ToString(input)
}

// Contains 判断字符串切片是否包含指定字符串
func Contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
