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
// Package pattern matches names, such as route ids and endpoint uris, against
// user supplied patterns.
//
// Package pattern 名称匹配，用于路由ID、端点uri等与用户模式进行匹配。
//
// A pattern matches when, ignoring case, it is equal to the name, it ends with a
// wildcard and the name starts with the text before it, or it is a regular
// expression matching the whole name:
//
//	pattern.Match("fooBar", "foo*")        // true
//	pattern.Match("jms:queue:x", "JMS:*")  // true
//	pattern.Match("direct:a1", "direct:a\\d") // true
package pattern

import (
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// Wildcard is the trailing wildcard character.
const Wildcard = "*"

// MatchTimeout bounds the evaluation of a single regular expression.
var MatchTimeout = time.Second

// compiled caches regular expressions by pattern. A nil value marks a pattern that
// is not a valid expression.
var compiled sync.Map

// Match reports whether name matches pattern.
func Match(name, pattern string) bool {
	if name == "" || pattern == "" {
		return false
	}
	if strings.EqualFold(name, pattern) {
		return true
	}
	if MatchWildcard(name, pattern) {
		return true
	}
	return MatchRegex(name, pattern)
}

// MatchAny reports whether name matches at least one of patterns.
func MatchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if Match(name, p) {
			return true
		}
	}
	return false
}

// MatchWildcard reports whether pattern ends with a wildcard and name starts with
// the text before it, ignoring case.
func MatchWildcard(name, pattern string) bool {
	if !strings.HasSuffix(pattern, Wildcard) {
		return false
	}
	prefix := strings.TrimSuffix(pattern, Wildcard)
	return len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix)
}

// MatchRegex reports whether pattern, as a regular expression, matches the whole
// name ignoring case. Invalid expressions never match.
func MatchRegex(name, pattern string) bool {
	re := compile(pattern)
	if re == nil {
		return false
	}
	ok, err := re.MatchString(name)
	return err == nil && ok
}

func compile(pattern string) *regexp2.Regexp {
	if v, ok := compiled.Load(pattern); ok {
		re, _ := v.(*regexp2.Regexp)
		return re
	}
	re, err := regexp2.Compile("^(?:"+pattern+")$", regexp2.IgnoreCase)
	if err != nil {
		compiled.Store(pattern, (*regexp2.Regexp)(nil))
		return nil
	}
	re.MatchTimeout = MatchTimeout
	compiled.Store(pattern, re)
	return re
}
