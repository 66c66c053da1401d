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

// Expression is an opaque expression handle supplied by an expression language.
// The definition model only reads its label.
// Expression 表达式句柄，模型只读取它的描述
type Expression interface {
	// Label returns a human readable description of the expression.
	Label() string
}

// Predicate is an expression evaluating to a boolean.
// Predicate 断言，求值结果为布尔值
type Predicate interface {
	Expression
	// Matches evaluates the predicate against the exchange. It is only ever invoked
	// by the runtime (or by catch matching on behalf of the runtime).
	Matches(exchange Exchange) bool
}

// Language validates expression text of one expression language. Implementations
// must not evaluate the expression, only check that it can be compiled.
// Language 表达式语言，只做语法校验，不做求值
type Language interface {
	// Name returns the language name, such as "expr" or "js".
	Name() string
	// Validate checks the expression text. predicate is true when the text is used
	// as a predicate.
	Validate(text string, predicate bool) error
}

// LanguageRegistry looks up expression languages by name.
type LanguageRegistry interface {
	Register(language Language) error
	Get(name string) (Language, bool)
	Names() []string
}
