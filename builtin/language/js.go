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
package language

import (
	"errors"

	"github.com/dop251/goja"
)

// JavaScript checks javascript expressions, for example `msg.items.length > 0`.
type JavaScript struct {
}

func (l *JavaScript) Name() string {
	return "js"
}

// Validate compiles text in strict mode.
func (l *JavaScript) Validate(text string, predicate bool) error {
	if text == "" {
		return errors.New("js script can not be empty")
	}
	_, err := goja.Compile("", text, true)
	return err
}
