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

	"github.com/expr-lang/expr"
)

// Expr is the expr-lang language, for example `msg.temperature > 50`.
type Expr struct {
}

func (l *Expr) Name() string {
	return "expr"
}

// Validate compiles text. Predicates must evaluate to a boolean.
func (l *Expr) Validate(text string, predicate bool) error {
	if text == "" {
		return errors.New("expr can not be empty")
	}
	options := []expr.Option{expr.AllowUndefinedVariables()}
	if predicate {
		options = append(options, expr.AsBool())
	}
	_, err := expr.Compile(text, options...)
	return err
}
